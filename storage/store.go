// Package storage provides durable, named storage for serialized
// backup blobs, with a filesystem backend (atomic publish) and a bbolt
// backend, plus the compression schemes applied to backup data.
package storage

import (
	"fmt"
	"strings"
)

// MaxNameLen bounds backup names so they stay usable as filenames.
const MaxNameLen = 128

// Store persists opaque backup blobs addressed by name.
type Store interface {
	// Put stores data under name, replacing any previous blob
	// atomically: a failed Put never corrupts a prior successful one.
	Put(name string, data []byte) error

	// Get retrieves the blob stored under name.
	Get(name string) ([]byte, error)

	// Has checks whether a blob exists under name.
	Has(name string) (bool, error)

	// Delete removes the blob stored under name.
	Delete(name string) error

	// List returns the names of all stored backups, sorted.
	List() ([]string, error)
}

// ValidateName checks that a backup name is non-empty, within length
// bounds, and cannot traverse outside the storage area.
func ValidateName(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidName, MaxNameLen)
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if name[0] == '.' {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
