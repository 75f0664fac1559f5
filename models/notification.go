package models

// NotificationTypeNewEvent marks notifications emitted by event creation.
const NotificationTypeNewEvent = "new_event"

// Notification is the persisted, never-deleted announcement log entry.
// ReadBy grows as accounts dismiss it.
type Notification struct {
	ID      int64    `json:"id"`
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Message string   `json:"message"`
	Date    string   `json:"date"`
	ReadBy  []string `json:"readBy"`
}

// EventNotice is the derived "recently added events" item shown in the
// navbar feed. It is computed from the catalog on every read and never
// persisted, unlike Notification.
type EventNotice struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Date    string `json:"date"`
}
