package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.etcd.io/bbolt"
)

var bucketBackups = []byte("backups")

// BoltDBName is the database filename used by the bolt backend.
const BoltDBName = "backups.db"

// BoltPath returns the bolt database path within a storage area.
func BoltPath(baseDir string) string {
	return filepath.Join(baseDir, BoltDBName)
}

// BoltStore implements Store on a single bbolt database. Each Put runs
// in one write transaction, so replacement is atomic without any
// temp-file dance.
type BoltStore struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ Store = (*BoltStore)(nil)

// OpenBoltStore opens or creates the bbolt database at dbPath. The
// parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if dbPath == "" {
		return nil, ErrInvalidBaseDir
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: open bolt db: %w", ErrIOFailure, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketBackups)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: create bucket: %w", ErrIOFailure, err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// Put stores data under name within a single write transaction.
func (s *BoltStore) Put(name string, data []byte) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if len(data) == 0 {
		return ErrEmptyBackup
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBackups).Put([]byte(name), data)
	})
	if err != nil {
		return fmt.Errorf("%w: put backup: %w", ErrIOFailure, err)
	}
	return nil
}

// Get retrieves the blob stored under name.
func (s *BoltStore) Get(name string) ([]byte, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketBackups).Get([]byte(name))
		if v == nil {
			return fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		// Copy out: bolt memory is only valid inside the transaction.
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Has checks whether a blob exists under name.
func (s *BoltStore) Has(name string) (bool, error) {
	if err := ValidateName(name); err != nil {
		return false, err
	}

	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket(bucketBackups).Get([]byte(name)) != nil
		return nil
	})
	return found, err
}

// Delete removes the blob stored under name.
func (s *BoltStore) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketBackups)
		if b.Get([]byte(name)) == nil {
			return fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		if err := b.Delete([]byte(name)); err != nil {
			return fmt.Errorf("%w: delete backup: %w", ErrIOFailure, err)
		}
		return nil
	})
}

// List returns all stored backup names, sorted.
func (s *BoltStore) List() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBackups).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list backups: %w", ErrIOFailure, err)
	}
	sort.Strings(names)
	return names, nil
}
