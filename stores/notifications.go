package stores

import (
	"fmt"
	"time"

	"campus-events/models"
	"campus-events/storage"
)

// Notifications is the persisted announcement log. Entries are appended when
// events are created and never deleted; each account dismisses entries for
// itself via the readBy set.
type Notifications struct {
	kv  storage.KV
	now func() time.Time
}

func NewNotifications(kv storage.KV) *Notifications {
	return &Notifications{kv: kv, now: time.Now}
}

func (n *Notifications) all() ([]models.Notification, error) {
	var list []models.Notification
	if err := storage.LoadJSON(n.kv, storage.KeyNotifications, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Announce appends a new-event notification for the given event.
func (n *Notifications) Announce(event models.Event) (models.Notification, error) {
	list, err := n.all()
	if err != nil {
		return models.Notification{}, err
	}

	ids := make([]int64, 0, len(list))
	for _, item := range list {
		ids = append(ids, item.ID)
	}

	now := n.now()
	notif := models.Notification{
		ID:      nextID(ids, now),
		Type:    models.NotificationTypeNewEvent,
		Title:   "New Event Added",
		Message: fmt.Sprintf("New event: %s on %s", event.Title, models.LocaleDate(event.Date)),
		Date:    now.UTC().Format(time.RFC3339),
		ReadBy:  []string{},
	}

	list = append(list, notif)
	if err := storage.SaveJSON(n.kv, storage.KeyNotifications, list); err != nil {
		return models.Notification{}, err
	}
	return notif, nil
}

// MarkRead adds the account to the notification's readBy set. Marking twice
// is a no-op.
func (n *Notifications) MarkRead(notificationID int64, accountID string) error {
	list, err := n.all()
	if err != nil {
		return err
	}

	for i, item := range list {
		if item.ID != notificationID {
			continue
		}
		for _, id := range item.ReadBy {
			if id == accountID {
				return nil
			}
		}
		list[i].ReadBy = append(list[i].ReadBy, accountID)
		return storage.SaveJSON(n.kv, storage.KeyNotifications, list)
	}
	return models.ErrNotificationNotFound
}

// UnreadFor returns the notifications the account has not dismissed yet.
func (n *Notifications) UnreadFor(accountID string) ([]models.Notification, error) {
	list, err := n.all()
	if err != nil {
		return nil, err
	}
	unread := make([]models.Notification, 0, len(list))
	for _, item := range list {
		read := false
		for _, id := range item.ReadBy {
			if id == accountID {
				read = true
				break
			}
		}
		if !read {
			unread = append(unread, item)
		}
	}
	return unread, nil
}

// DeriveRecent computes the "recently added events" feed from the created
// events: one notice per event dated on or after now minus withinDays. It is
// a pure derivation over the catalog, separate from the persisted log.
func DeriveRecent(created []models.Event, withinDays int, now time.Time) []models.EventNotice {
	cutoff := now.AddDate(0, 0, -withinDays)
	notices := make([]models.EventNotice, 0, len(created))
	for _, e := range created {
		if eventDate(e).Before(cutoff) {
			continue
		}
		notices = append(notices, models.EventNotice{
			ID:      e.ID,
			Title:   e.Title,
			Message: fmt.Sprintf("New event: %s on %s", e.Title, models.LocaleDate(e.Date)),
			Date:    e.Date,
		})
	}
	return notices
}
