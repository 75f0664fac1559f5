package controllers

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"

	"campus-events/models"
)

func TestWriteRegistrationsCSV(t *testing.T) {
	regs := []models.Registration{
		{
			Name:             "Asha Rao",
			CollegeID:        "S100",
			Branch:           "CSE",
			Year:             "3",
			Section:          "B",
			Email:            "asha@example.edu",
			Phone:            "9876543210",
			RegistrationDate: "2025-05-15T10:00:00Z",
		},
		{
			Name:             "Ravi Kumar",
			CollegeID:        "S200",
			Branch:           "ECE",
			Year:             "2",
			Section:          "A",
			Email:            "ravi@example.edu",
			Phone:            "9123456780",
			RegistrationDate: "2025-05-16T08:30:00Z",
		},
	}

	var buf bytes.Buffer
	if err := WriteRegistrationsCSV(&buf, regs); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("export is not parseable CSV: %v", err)
	}

	wantHeader := []string{"Name", "College ID", "Branch", "Year", "Section", "Email", "Phone", "Registration Date"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("unexpected header %v", rows[0])
	}

	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d rows", len(rows))
	}
	wantFirst := []string{"Asha Rao", "S100", "CSE", "3", "B", "asha@example.edu", "9876543210", "5/15/2025"}
	if !reflect.DeepEqual(rows[1], wantFirst) {
		t.Errorf("unexpected first row %v", rows[1])
	}
	if rows[2][0] != "Ravi Kumar" || rows[2][7] != "5/16/2025" {
		t.Errorf("unexpected second row %v", rows[2])
	}
}

func TestWriteRegistrationsCSVEscapesDelimiters(t *testing.T) {
	regs := []models.Registration{
		{
			Name:             "Rao, Asha",
			CollegeID:        "S100",
			Branch:           "CSE",
			Year:             "3",
			Section:          "B",
			Email:            "asha@example.edu",
			Phone:            "9876543210",
			RegistrationDate: "2025-05-15T10:00:00Z",
		},
	}

	var buf bytes.Buffer
	if err := WriteRegistrationsCSV(&buf, regs); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("export is not parseable CSV: %v", err)
	}
	if rows[1][0] != "Rao, Asha" {
		t.Errorf("comma in name must survive the round trip, got %q", rows[1][0])
	}
	if len(rows[1]) != 8 {
		t.Errorf("embedded comma split the row into %d fields", len(rows[1]))
	}
}
