package models

import (
	"fmt"
	"time"
)

// CategoryAll is the filter sentinel, not a real category.
const CategoryAll = "all"

var Categories = []string{"seminar", "workshop", "hackathon", "quiz", "talkshow", "bootcamp"}

type Event struct {
	ID                   int64  `json:"id"`
	Title                string `json:"title"`
	Category             string `json:"category"`
	Date                 string `json:"date"`
	Time                 string `json:"time"`
	Venue                string `json:"venue"`
	Description          string `json:"description"`
	OrganizedBy          string `json:"organizedBy"`
	FacultyCoordinator   string `json:"facultyCoordinator,omitempty"`
	StudentCoordinator   string `json:"studentCoordinator,omitempty"`
	RegistrationDeadline string `json:"registrationDeadline,omitempty"`
	MaxParticipants      int    `json:"maxParticipants,omitempty"`
	Poster               string `json:"poster,omitempty"`
	Image                string `json:"image,omitempty"`
	CreatedBy            string `json:"createdBy,omitempty"`
	CreatedAt            string `json:"createdAt,omitempty"`
}

// EventInput carries the fields a faculty member submits when creating an
// event. Poster holds the already-encoded inline image payload.
type EventInput struct {
	Title                string `json:"title" validate:"required"`
	Category             string `json:"category" validate:"required,oneof=seminar workshop hackathon quiz talkshow bootcamp"`
	Date                 string `json:"date" validate:"required"`
	Time                 string `json:"time" validate:"required"`
	Venue                string `json:"venue" validate:"required"`
	Description          string `json:"description"`
	OrganizedBy          string `json:"organizedBy"`
	FacultyCoordinator   string `json:"facultyCoordinator"`
	StudentCoordinator   string `json:"studentCoordinator"`
	RegistrationDeadline string `json:"registrationDeadline"`
	MaxParticipants      int    `json:"maxParticipants" validate:"omitempty,gt=0"`
	Poster               string `json:"poster" validate:"required"`
}

// SeedEvents are fixed at process start and never persisted. Their ids are
// reserved: created events must not collide with them.
var SeedEvents = []Event{
	{
		ID:          1,
		Title:       "Web Development Workshop",
		Category:    "workshop",
		Date:        "2025-05-15",
		Description: "Learn modern web development techniques from industry experts",
		Image:       "https://images.unsplash.com/photo-1517694712202-14dd9538aa97",
		Time:        "10:00 AM",
		Venue:       "Computer Lab 1",
		OrganizedBy: "Computer Science Department",
	},
	{
		ID:          2,
		Title:       "AI & Machine Learning Seminar",
		Category:    "seminar",
		Date:        "2025-05-20",
		Description: "Explore the latest trends in AI and Machine Learning",
		Image:       "https://images.unsplash.com/photo-1591453089816-0fbb971b454c",
		Time:        "2:00 PM",
		Venue:       "Seminar Hall",
		OrganizedBy: "AI Research Club",
	},
	{
		ID:          3,
		Title:       "College Hackathon 2025",
		Category:    "hackathon",
		Date:        "2025-06-01",
		Description: "24-hour coding challenge with amazing prizes",
		Image:       "https://images.unsplash.com/photo-1504384308090-c894fdcc538d",
		Time:        "9:00 AM",
		Venue:       "Main Auditorium",
		OrganizedBy: "Coding Club",
	},
}

// IsSeedID reports whether id belongs to one of the seed events.
func IsSeedID(id int64) bool {
	for _, e := range SeedEvents {
		if e.ID == id {
			return true
		}
	}
	return false
}

// LocaleDate renders a stored calendar date or timestamp in the short
// M/D/YYYY form used by notification messages and the CSV export.
func LocaleDate(s string) string {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
	}
	return s
}
