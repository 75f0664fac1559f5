// Package stores implements the data-model core over the storage layer:
// event catalog, accounts and sessions, the registration ledger, and the
// notification log. Every operation is a full read of one collection, an
// in-memory transform, and a full write back.
package stores

import (
	"sort"
	"strings"
	"time"

	"campus-events/models"
	"campus-events/storage"
)

// Catalog holds the combined event list: the fixed seed events plus the
// faculty-created events persisted under the events key.
type Catalog struct {
	kv            storage.KV
	ledger        *Ledger
	notifications *Notifications
	now           func() time.Time
}

func NewCatalog(kv storage.KV, ledger *Ledger, notifications *Notifications) *Catalog {
	return &Catalog{kv: kv, ledger: ledger, notifications: notifications, now: time.Now}
}

// Created returns the persisted (faculty-created) events in creation order.
func (c *Catalog) Created() ([]models.Event, error) {
	var events []models.Event
	if err := storage.LoadJSON(c.kv, storage.KeyEvents, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// List returns seed events in declaration order followed by created events
// in creation order.
func (c *Catalog) List() ([]models.Event, error) {
	created, err := c.Created()
	if err != nil {
		return nil, err
	}
	all := make([]models.Event, 0, len(models.SeedEvents)+len(created))
	all = append(all, models.SeedEvents...)
	all = append(all, created...)
	return all, nil
}

// Get looks an event up across seed and created events.
func (c *Catalog) Get(id int64) (models.Event, bool, error) {
	all, err := c.List()
	if err != nil {
		return models.Event{}, false, err
	}
	for _, e := range all {
		if e.ID == id {
			return e, true, nil
		}
	}
	return models.Event{}, false, nil
}

// Create validates the input, assigns a fresh id, persists the event, and
// announces it on the notification log.
func (c *Catalog) Create(input models.EventInput, creator string) (models.Event, error) {
	if err := models.Validate(input); err != nil {
		return models.Event{}, err
	}

	created, err := c.Created()
	if err != nil {
		return models.Event{}, err
	}

	ids := make([]int64, 0, len(created)+len(models.SeedEvents))
	for _, e := range models.SeedEvents {
		ids = append(ids, e.ID)
	}
	for _, e := range created {
		ids = append(ids, e.ID)
	}

	now := c.now()
	event := models.Event{
		ID:                   nextID(ids, now),
		Title:                input.Title,
		Category:             input.Category,
		Date:                 input.Date,
		Time:                 input.Time,
		Venue:                input.Venue,
		Description:          input.Description,
		OrganizedBy:          input.OrganizedBy,
		FacultyCoordinator:   input.FacultyCoordinator,
		StudentCoordinator:   input.StudentCoordinator,
		RegistrationDeadline: input.RegistrationDeadline,
		MaxParticipants:      input.MaxParticipants,
		Poster:               input.Poster,
		CreatedBy:            creator,
		CreatedAt:            now.UTC().Format(time.RFC3339),
	}

	created = append(created, event)
	if err := storage.SaveJSON(c.kv, storage.KeyEvents, created); err != nil {
		return models.Event{}, err
	}
	if _, err := c.notifications.Announce(event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

// Delete removes a created event and cascades deletion of its registrations.
// Only the creating faculty account may delete it; seed events are immutable.
func (c *Catalog) Delete(eventID int64, requester string) error {
	if models.IsSeedID(eventID) {
		return &models.AuthorizationError{Reason: "seed events cannot be deleted"}
	}

	created, err := c.Created()
	if err != nil {
		return err
	}

	idx := -1
	for i, e := range created {
		if e.ID == eventID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.ErrEventNotFound
	}
	if created[idx].CreatedBy != requester {
		return &models.AuthorizationError{Reason: "only the creating faculty account can delete an event"}
	}

	created = append(created[:idx], created[idx+1:]...)
	if err := storage.SaveJSON(c.kv, storage.KeyEvents, created); err != nil {
		return err
	}
	return c.ledger.DeleteForEvent(eventID)
}

// Upcoming returns created events dated today or later, soonest first,
// capped at limit.
func (c *Catalog) Upcoming(limit int) ([]models.Event, error) {
	created, err := c.Created()
	if err != nil {
		return nil, err
	}

	today := c.now().UTC().Truncate(24 * time.Hour)
	upcoming := make([]models.Event, 0, len(created))
	for _, e := range created {
		if !eventDate(e).Before(today) {
			upcoming = append(upcoming, e)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return eventDate(upcoming[i]).Before(eventDate(upcoming[j]))
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming, nil
}

// FilterAndSearch keeps events matching the category (or the "all"
// sentinel) whose searchable fields contain every whitespace token of the
// query, case-insensitively. A non-empty query orders results by relevance:
// events with the raw query in the title first, then in the description,
// then the rest, ties keeping their prior order. An empty query orders by
// date ascending.
func FilterAndSearch(events []models.Event, category, query string) []models.Event {
	lowered := strings.ToLower(query)
	terms := strings.Fields(lowered)

	matched := make([]models.Event, 0, len(events))
	for _, e := range events {
		if category != models.CategoryAll && e.Category != category {
			continue
		}
		if !matchesTerms(e, terms) {
			continue
		}
		matched = append(matched, e)
	}

	if query != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			return relevance(matched[i], lowered) > relevance(matched[j], lowered)
		})
	} else {
		sort.SliceStable(matched, func(i, j int) bool {
			return eventDate(matched[i]).Before(eventDate(matched[j]))
		})
	}
	return matched
}

// matchesTerms requires every token to appear in at least one searchable
// field. No tokens matches everything.
func matchesTerms(e models.Event, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	fields := []string{
		strings.ToLower(e.Title),
		strings.ToLower(e.Description),
		strings.ToLower(e.OrganizedBy),
		strings.ToLower(e.Venue),
		strings.ToLower(e.Category),
	}
	for _, term := range terms {
		found := false
		for _, f := range fields {
			if strings.Contains(f, term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// relevance scores an event against the raw (untokenized) lower-cased query:
// 2 for a title hit, 1 for a description hit, 0 otherwise.
func relevance(e models.Event, lowered string) int {
	if strings.Contains(strings.ToLower(e.Title), lowered) {
		return 2
	}
	if strings.Contains(strings.ToLower(e.Description), lowered) {
		return 1
	}
	return 0
}

func eventDate(e models.Event) time.Time {
	t, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
