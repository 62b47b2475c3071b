// Package store connects to the data store that persists school hours,
// schedules, badges and streaks.
package store

import (
	"encoding/json"
	"errors"

	"github.com/ayoisaiah/schoolday/internal/apperr"
)

var (
	errAlreadyRunning = &apperr.Error{
		Message: "is schoolday already running? Only one instance can use the data store at a time",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver: %s",
	}

	errDecodeValue = &apperr.Error{
		Message: "unable to decode stored value for %s",
	}

	errImport = &apperr.Error{
		Message: "import file must be a JSON object of keys to values",
	}

	// ErrAlreadyRunning is returned when the store is locked by another process.
	ErrAlreadyRunning error = errAlreadyRunning
)

// KV is a string-keyed store of string values. Implementations make no
// transactional guarantees across separate calls.
type KV interface {
	// Get returns the value stored at key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set stores value at key, replacing any previous value
	Set(key, value string) error
	// SetMany stores all the values in a single write
	SetMany(values map[string]string) error
	// Keys lists every stored key in ascending order
	Keys() ([]string, error)
	// Close releases the underlying resources
	Close() error
}

// Open returns the store for the named driver.
func Open(driver, boltPath, sqlitePath string) (KV, error) {
	switch driver {
	case DriverBolt, "":
		return NewClient(boltPath)
	case DriverSQLite:
		return NewSQLite(sqlitePath)
	default:
		return nil, errUnknownDriver.Fmt(driver)
	}
}

// GetJSON decodes the JSON value stored at key into v.
func GetJSON(kv KV, key string, v any) (bool, error) {
	s, ok, err := kv.Get(key)
	if err != nil || !ok {
		return false, err
	}

	if err := json.Unmarshal([]byte(s), v); err != nil {
		return false, errDecodeValue.Fmt(key).Wrap(err)
	}

	return true, nil
}

// SetJSON encodes v and stores it at key.
func SetJSON(kv KV, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return kv.Set(key, string(b))
}

// IsLocked reports whether err was caused by another process holding the
// store.
func IsLocked(err error) bool {
	return errors.Is(err, errAlreadyRunning)
}
