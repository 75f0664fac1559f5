package stores

import (
	"encoding/json"
	"time"

	"campus-events/models"
	"campus-events/storage"
	"campus-events/utils"
)

// Identity holds registered accounts and the single active session marker.
type Identity struct {
	kv  storage.KV
	now func() time.Time
}

func NewIdentity(kv storage.KV) *Identity {
	return &Identity{kv: kv, now: time.Now}
}

func (s *Identity) users() ([]models.User, error) {
	var users []models.User
	if err := storage.LoadJSON(s.kv, storage.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Register creates an account. The college id must be unused, the
// role-specific required fields must be present, and the password is stored
// as a bcrypt hash, never in clear.
func (s *Identity) Register(input models.SignupInput) (models.User, error) {
	if err := models.Validate(input); err != nil {
		return models.User{}, err
	}

	users, err := s.users()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.CollegeID == input.CollegeID {
			return models.User{}, &models.DuplicateIDError{CollegeID: input.CollegeID}
		}
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	now := s.now()
	user := models.User{
		ID:          nextID(ids, now),
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		CollegeID:   input.CollegeID,
		Password:    hash,
		Role:        input.Role,
		Branch:      input.Branch,
		Year:        input.Year,
		Section:     input.Section,
		Department:  input.Department,
		Designation: input.Designation,
		CreatedAt:   now.UTC().Format(time.RFC3339),
	}

	users = append(users, user)
	if err := storage.SaveJSON(s.kv, storage.KeyUsers, users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login checks college id, password, and role together. Any mismatch yields
// the same ErrInvalidCredentials. Success writes the session marker.
func (s *Identity) Login(collegeID, password, role string) (models.Session, error) {
	users, err := s.users()
	if err != nil {
		return models.Session{}, err
	}

	for _, u := range users {
		if u.CollegeID == collegeID && u.Role == role && utils.ComparePasswords(u.Password, password) {
			sess := models.Session{Role: u.Role, CollegeID: u.CollegeID}
			if err := storage.SaveJSON(s.kv, storage.KeySession, sess); err != nil {
				return models.Session{}, err
			}
			return sess, nil
		}
	}
	return models.Session{}, models.ErrInvalidCredentials
}

// Logout clears the session marker. Safe to call with no active session.
func (s *Identity) Logout() error {
	return s.kv.Delete(storage.KeySession)
}

// CurrentSession reads the marker; nil means nobody is logged in.
func (s *Identity) CurrentSession() (*models.Session, error) {
	raw, ok, err := s.kv.Get(storage.KeySession)
	if err != nil || !ok {
		return nil, err
	}
	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Lookup fetches an account by college id.
func (s *Identity) Lookup(collegeID string) (models.User, bool, error) {
	users, err := s.users()
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if u.CollegeID == collegeID {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}
