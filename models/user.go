package models

const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
)

type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CollegeID   string `json:"collegeId"`
	Password    string `json:"password,omitempty"`
	Role        string `json:"role"`
	Branch      string `json:"branch,omitempty"`
	Year        string `json:"year,omitempty"`
	Section     string `json:"section,omitempty"`
	Department  string `json:"department,omitempty"`
	Designation string `json:"designation,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// SignupInput is the sign-up form. Role decides which of the role-specific
// fields are required: students need branch/year/section, faculty need
// department/designation.
type SignupInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	CollegeID   string `json:"collegeId" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
	Role        string `json:"role" validate:"required,oneof=student faculty"`
	Branch      string `json:"branch" validate:"required_if=Role student"`
	Year        string `json:"year" validate:"required_if=Role student"`
	Section     string `json:"section" validate:"required_if=Role student"`
	Department  string `json:"department" validate:"required_if=Role faculty"`
	Designation string `json:"designation" validate:"required_if=Role faculty"`
}

// Session is the single "currently logged-in account" marker. Login replaces
// it, logout clears it.
type Session struct {
	Role      string `json:"role"`
	CollegeID string `json:"collegeId"`
}
