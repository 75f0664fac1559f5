package stores

import (
	"time"

	"campus-events/models"
	"campus-events/storage"
)

// Ledger holds event sign-up records, queryable per event and per account.
type Ledger struct {
	kv  storage.KV
	now func() time.Time
}

func NewLedger(kv storage.KV) *Ledger {
	return &Ledger{kv: kv, now: time.Now}
}

func (l *Ledger) registrations() ([]models.Registration, error) {
	var regs []models.Registration
	if err := storage.LoadJSON(l.kv, storage.KeyRegistrations, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

// Register appends a sign-up record for the event. Only an active student
// session may register, and a student may hold at most one registration per
// event. The event title is snapshotted so the record survives later
// catalog changes.
func (l *Ledger) Register(sess *models.Session, event models.Event, input models.RegistrationInput) (models.Registration, error) {
	if sess == nil || sess.Role != models.RoleStudent {
		return models.Registration{}, &models.AuthorizationError{Reason: "only a logged-in student can register for events"}
	}
	if err := models.Validate(input); err != nil {
		return models.Registration{}, err
	}

	regs, err := l.registrations()
	if err != nil {
		return models.Registration{}, err
	}
	for _, r := range regs {
		if r.EventID == event.ID && r.CollegeID == sess.CollegeID {
			return models.Registration{}, models.ErrAlreadyRegistered
		}
	}

	ids := make([]int64, 0, len(regs))
	for _, r := range regs {
		ids = append(ids, r.ID)
	}

	now := l.now()
	reg := models.Registration{
		ID:               nextID(ids, now),
		EventID:          event.ID,
		EventTitle:       event.Title,
		RegistrationDate: now.UTC().Format(time.RFC3339),
		Status:           models.StatusRegistered,
		Name:             input.Name,
		Year:             input.Year,
		Section:          input.Section,
		Branch:           input.Branch,
		CollegeID:        sess.CollegeID,
		Phone:            input.Phone,
		Email:            input.Email,
		ClubName:         input.ClubName,
	}

	regs = append(regs, reg)
	if err := storage.SaveJSON(l.kv, storage.KeyRegistrations, regs); err != nil {
		return models.Registration{}, err
	}
	return reg, nil
}

func (l *Ledger) ListForEvent(eventID int64) ([]models.Registration, error) {
	regs, err := l.registrations()
	if err != nil {
		return nil, err
	}
	out := make([]models.Registration, 0, len(regs))
	for _, r := range regs {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (l *Ledger) ListForAccount(collegeID string) ([]models.Registration, error) {
	regs, err := l.registrations()
	if err != nil {
		return nil, err
	}
	out := make([]models.Registration, 0, len(regs))
	for _, r := range regs {
		if r.CollegeID == collegeID {
			out = append(out, r)
		}
	}
	return out, nil
}

// DeleteForEvent removes every registration for the event. Called as the
// cascade step of event deletion.
func (l *Ledger) DeleteForEvent(eventID int64) error {
	regs, err := l.registrations()
	if err != nil {
		return err
	}
	kept := make([]models.Registration, 0, len(regs))
	for _, r := range regs {
		if r.EventID != eventID {
			kept = append(kept, r)
		}
	}
	return storage.SaveJSON(l.kv, storage.KeyRegistrations, kept)
}
