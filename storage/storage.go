// Package storage holds the key-value layer every store persists through.
// Each collection is a JSON-encoded array under a fixed string key; an
// absent key reads as an empty collection.
package storage

import "encoding/json"

// Collection keys. KeySession holds a single object, the rest hold arrays.
const (
	KeyUsers         = "users"
	KeySession       = "user"
	KeyEvents        = "events"
	KeyRegistrations = "registrations"
	KeyNotifications = "notifications"
)

// KV is the storage boundary the stores are built on. Implementations must
// make Get/Put/Delete individually atomic; there is no transaction spanning
// multiple keys or multiple calls.
type KV interface {
	// Get returns the raw value and whether the key was present.
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}

// LoadJSON reads a collection into dst. An absent key leaves dst untouched,
// so a nil slice stays the empty collection.
func LoadJSON(kv KV, key string, dst interface{}) error {
	raw, ok, err := kv.Get(key)
	if err != nil || !ok {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// SaveJSON replaces a collection wholesale.
func SaveJSON(kv KV, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Put(key, raw)
}
