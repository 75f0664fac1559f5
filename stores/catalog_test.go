package stores

import (
	"errors"
	"testing"
	"time"

	"campus-events/models"
	"campus-events/storage"
)

func newTestStores() (*Catalog, *Ledger, *Notifications) {
	kv := storage.NewMemKV()
	ledger := NewLedger(kv)
	notifications := NewNotifications(kv)
	catalog := NewCatalog(kv, ledger, notifications)
	return catalog, ledger, notifications
}

func validEventInput() models.EventInput {
	return models.EventInput{
		Title:       "Cloud Computing Bootcamp",
		Category:    "bootcamp",
		Date:        "2025-07-10",
		Time:        "11:00 AM",
		Venue:       "Block C Lab",
		Description: "Hands-on containers and deployment",
		OrganizedBy: "Cloud Club",
		Poster:      "data:image/png;base64,iVBORw0KGgo=",
	}
}

func TestFilterAndSearchAllEmptyQuery(t *testing.T) {
	// Feed the seeds in reverse to check the date-ascending ordering.
	reversed := []models.Event{models.SeedEvents[2], models.SeedEvents[1], models.SeedEvents[0]}

	got := FilterAndSearch(reversed, models.CategoryAll, "")

	if len(got) != 3 {
		t.Fatalf("expected all 3 events, got %d", len(got))
	}
	for i, wantID := range []int64{1, 2, 3} {
		if got[i].ID != wantID {
			t.Errorf("position %d: expected event %d, got %d", i, wantID, got[i].ID)
		}
	}
}

func TestFilterAndSearchCategoryAndQuery(t *testing.T) {
	tests := []struct {
		name     string
		category string
		query    string
		wantIDs  []int64
	}{
		{"seed workshop", "workshop", "web", []int64{1}},
		{"tokens across fields", models.CategoryAll, "coding auditorium", []int64{3}},
		{"category only", "seminar", "", []int64{2}},
		{"no match", models.CategoryAll, "zzz", nil},
		{"case insensitive", models.CategoryAll, "HACKATHON", []int64{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAndSearch(models.SeedEvents, tt.category, tt.query)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d events, got %d", len(tt.wantIDs), len(got))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("position %d: expected event %d, got %d", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestFilterAndSearchRelevanceOrdering(t *testing.T) {
	events := []models.Event{
		{ID: 10, Title: "General Quiz", Description: "A golang themed round", Category: "quiz", Date: "2025-05-01"},
		{ID: 11, Title: "Golang Meetup", Description: "For gophers", Category: "talkshow", Date: "2025-05-02"},
	}

	got := FilterAndSearch(events, models.CategoryAll, "golang")

	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].ID != 11 {
		t.Errorf("title match should rank before description match, got event %d first", got[0].ID)
	}
	if got[1].ID != 10 {
		t.Errorf("expected event 10 second, got %d", got[1].ID)
	}
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	catalog, _, notifications := newTestStores()
	fixed := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	catalog.now = func() time.Time { return fixed }

	first, err := catalog.Create(validEventInput(), "F100")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := catalog.Create(validEventInput(), "F100")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("two events created in the same millisecond share id %d", first.ID)
	}
	if models.IsSeedID(first.ID) || models.IsSeedID(second.ID) {
		t.Error("created event ids must not collide with seed ids")
	}

	all, err := catalog.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	seen := make(map[int64]bool)
	for _, e := range all {
		if seen[e.ID] {
			t.Errorf("duplicate id %d in catalog", e.ID)
		}
		seen[e.ID] = true
	}
	if !seen[first.ID] || !seen[second.ID] {
		t.Error("created events missing from List")
	}

	// Each create announces itself on the persisted log.
	unread, err := notifications.UnreadFor("S200")
	if err != nil {
		t.Fatalf("unread failed: %v", err)
	}
	if len(unread) != 2 {
		t.Errorf("expected 2 notifications, got %d", len(unread))
	}
}

func TestCreateValidation(t *testing.T) {
	catalog, _, _ := newTestStores()

	input := validEventInput()
	input.Title = ""
	input.Poster = ""

	_, err := catalog.Create(input, "F100")
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := map[string]bool{"Title": false, "Poster": false}
	for _, f := range verr.Fields {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for f, found := range want {
		if !found {
			t.Errorf("ValidationError should name field %s, got %v", f, verr.Fields)
		}
	}
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	catalog, _, _ := newTestStores()

	input := validEventInput()
	input.Category = "carnival"

	_, err := catalog.Create(input, "F100")
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDeleteCascadesAndChecksOwner(t *testing.T) {
	catalog, ledger, _ := newTestStores()

	event, err := catalog.Create(validEventInput(), "F100")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	sess := &models.Session{Role: models.RoleStudent, CollegeID: "S200"}
	if _, err := ledger.Register(sess, event, validRegistrationInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Not the creator.
	err = catalog.Delete(event.ID, "F999")
	var aerr *models.AuthorizationError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AuthorizationError for non-owner, got %v", err)
	}

	if err := catalog.Delete(event.ID, "F100"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}

	regs, err := ledger.ListForEvent(event.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(regs) != 0 {
		t.Errorf("expected cascade to remove registrations, %d left", len(regs))
	}

	if err := catalog.Delete(event.ID, "F100"); !errors.Is(err, models.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound on second delete, got %v", err)
	}
}

func TestDeleteSeedEventRefused(t *testing.T) {
	catalog, _, _ := newTestStores()

	err := catalog.Delete(1, "F100")
	var aerr *models.AuthorizationError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AuthorizationError for seed event, got %v", err)
	}
}

func TestUpcoming(t *testing.T) {
	catalog, _, _ := newTestStores()
	fixed := time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)
	catalog.now = func() time.Time { return fixed }

	dates := []string{"2025-06-25", "2025-07-01", "2025-07-15", "2025-07-03"}
	for _, d := range dates {
		input := validEventInput()
		input.Date = d
		if _, err := catalog.Create(input, "F100"); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	got, err := catalog.Upcoming(5)
	if err != nil {
		t.Fatalf("upcoming failed: %v", err)
	}
	wantDates := []string{"2025-07-01", "2025-07-03", "2025-07-15"}
	if len(got) != len(wantDates) {
		t.Fatalf("expected %d upcoming events, got %d", len(wantDates), len(got))
	}
	for i, d := range wantDates {
		if got[i].Date != d {
			t.Errorf("position %d: expected date %s, got %s", i, d, got[i].Date)
		}
	}
}
