package models

// StatusRegistered is the only status a registration ever carries.
const StatusRegistered = "Registered"

type Registration struct {
	ID               int64  `json:"id"`
	EventID          int64  `json:"eventId"`
	EventTitle       string `json:"eventTitle"`
	RegistrationDate string `json:"registrationDate"`
	Status           string `json:"status"`
	Name             string `json:"name"`
	Year             string `json:"year"`
	Section          string `json:"section"`
	Branch           string `json:"branch"`
	CollegeID        string `json:"collegeId"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	ClubName         string `json:"clubName,omitempty"`
}

// RegistrationInput is the sign-up form a student fills in for one event.
// The college id is taken from the active session, never from the form.
type RegistrationInput struct {
	Name     string `json:"name" validate:"required"`
	Year     string `json:"year" validate:"required"`
	Section  string `json:"section" validate:"required"`
	Branch   string `json:"branch" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	ClubName string `json:"clubName"`
}
