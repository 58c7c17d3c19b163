// Package storage persists named slots: small opaque values addressed by
// key, the way a browser's local storage does.
package storage

import (
	"errors"
	"fmt"

	"github.com/watchfire-io/cubetimer/internal/config"
	"github.com/watchfire-io/cubetimer/internal/models"
)

var (
	// ErrClosed is returned by operations on a closed backend.
	ErrClosed = errors.New("storage: closed")

	// ErrInvalidKey is returned for keys that are not simple names.
	ErrInvalidKey = errors.New("storage: invalid key")
)

// Slots is a key/value store for persisted slots.
type Slots interface {
	// Get returns the slot value and whether the slot exists.
	Get(key string) ([]byte, bool, error)
	// Set creates or overwrites the slot.
	Set(key string, value []byte) error
	// Remove deletes the slot. Removing a missing slot is not an error.
	Remove(key string) error
	Close() error
}

func validateKey(key string) error {
	if !models.ValidSlotName(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// Open opens the backend selected in the storage settings, rooted in the
// global cubetimer directory.
func Open(cfg models.StorageConfig) (Slots, error) {
	switch cfg.Backend {
	case models.StorageBackendFile, "":
		dir, err := config.GlobalDataDir()
		if err != nil {
			return nil, err
		}
		return NewFileSlots(dir), nil
	case models.StorageBackendSQLite:
		path, err := config.GlobalDatabaseFile()
		if err != nil {
			return nil, err
		}
		return OpenSQLiteSlots(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
