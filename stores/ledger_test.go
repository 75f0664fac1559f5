package stores

import (
	"errors"
	"testing"

	"campus-events/models"
	"campus-events/storage"
)

func validRegistrationInput() models.RegistrationInput {
	return models.RegistrationInput{
		Name:    "Asha Rao",
		Year:    "3",
		Section: "B",
		Branch:  "CSE",
		Phone:   "9876543210",
		Email:   "asha@example.edu",
	}
}

func TestRegisterRequiresStudentSession(t *testing.T) {
	ledger := NewLedger(storage.NewMemKV())
	event := models.SeedEvents[0]

	tests := []struct {
		name string
		sess *models.Session
	}{
		{"no session", nil},
		{"faculty session", &models.Session{Role: models.RoleFaculty, CollegeID: "F100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ledger.Register(tt.sess, event, validRegistrationInput())
			var aerr *models.AuthorizationError
			if !errors.As(err, &aerr) {
				t.Fatalf("expected AuthorizationError, got %v", err)
			}
		})
	}
}

// Duplicate sign-ups are rejected here rather than allowed through: the same
// student registering twice for one event gets ErrAlreadyRegistered.
func TestRegisterDuplicateRejected(t *testing.T) {
	ledger := NewLedger(storage.NewMemKV())
	event := models.SeedEvents[0]
	sess := &models.Session{Role: models.RoleStudent, CollegeID: "S100"}

	if _, err := ledger.Register(sess, event, validRegistrationInput()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := ledger.Register(sess, event, validRegistrationInput()); !errors.Is(err, models.ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}

	// Same student, different event is fine.
	if _, err := ledger.Register(sess, models.SeedEvents[1], validRegistrationInput()); err != nil {
		t.Fatalf("registration for second event failed: %v", err)
	}
}

func TestRegisterSnapshotsEvent(t *testing.T) {
	ledger := NewLedger(storage.NewMemKV())
	event := models.SeedEvents[2]
	sess := &models.Session{Role: models.RoleStudent, CollegeID: "S100"}

	reg, err := ledger.Register(sess, event, validRegistrationInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if reg.EventID != event.ID {
		t.Errorf("expected eventId %d, got %d", event.ID, reg.EventID)
	}
	if reg.EventTitle != event.Title {
		t.Errorf("expected title snapshot %q, got %q", event.Title, reg.EventTitle)
	}
	if reg.Status != models.StatusRegistered {
		t.Errorf("expected status %q, got %q", models.StatusRegistered, reg.Status)
	}
	if reg.CollegeID != "S100" {
		t.Errorf("college id must come from the session, got %q", reg.CollegeID)
	}
	if reg.RegistrationDate == "" || reg.ID == 0 {
		t.Error("registration must carry a fresh id and timestamp")
	}
}

func TestRegisterValidatesForm(t *testing.T) {
	ledger := NewLedger(storage.NewMemKV())
	sess := &models.Session{Role: models.RoleStudent, CollegeID: "S100"}

	input := validRegistrationInput()
	input.Email = "not-an-email"

	_, err := ledger.Register(sess, models.SeedEvents[0], input)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestListPerEventAndPerAccount(t *testing.T) {
	ledger := NewLedger(storage.NewMemKV())
	s1 := &models.Session{Role: models.RoleStudent, CollegeID: "S100"}
	s2 := &models.Session{Role: models.RoleStudent, CollegeID: "S200"}

	mustRegister := func(sess *models.Session, event models.Event) {
		t.Helper()
		if _, err := ledger.Register(sess, event, validRegistrationInput()); err != nil {
			t.Fatalf("register failed: %v", err)
		}
	}
	mustRegister(s1, models.SeedEvents[0])
	mustRegister(s1, models.SeedEvents[1])
	mustRegister(s2, models.SeedEvents[0])

	forEvent, err := ledger.ListForEvent(models.SeedEvents[0].ID)
	if err != nil {
		t.Fatalf("list for event failed: %v", err)
	}
	if len(forEvent) != 2 {
		t.Errorf("expected 2 registrations for event 1, got %d", len(forEvent))
	}

	forAccount, err := ledger.ListForAccount("S100")
	if err != nil {
		t.Fatalf("list for account failed: %v", err)
	}
	if len(forAccount) != 2 {
		t.Errorf("expected 2 registrations for S100, got %d", len(forAccount))
	}

	if err := ledger.DeleteForEvent(models.SeedEvents[0].ID); err != nil {
		t.Fatalf("delete for event failed: %v", err)
	}
	forEvent, err = ledger.ListForEvent(models.SeedEvents[0].ID)
	if err != nil {
		t.Fatalf("list for event failed: %v", err)
	}
	if len(forEvent) != 0 {
		t.Errorf("expected no registrations after delete, got %d", len(forEvent))
	}
}
