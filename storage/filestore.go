package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// BackupExt is the filename extension of file-backend backups.
const BackupExt = ".bak"

// FileStore implements Store on the local filesystem. Backups live at
// {baseDir}/{name}.bak and are published with a write-to-temp-then-
// rename pattern, so a crash mid-write never leaves a half-written
// backup and never clobbers a previously successful one.
type FileStore struct {
	baseDir string
	mu      sync.RWMutex
}

// NewFileStore creates a file-based backup store rooted at baseDir,
// creating the directory if it does not exist.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		return nil, ErrInvalidBaseDir
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Path returns the filesystem path a backup name maps to.
func (fs *FileStore) Path(name string) string {
	return filepath.Join(fs.baseDir, name+BackupExt)
}

// Put stores data under name, atomically replacing any previous blob.
func (fs *FileStore) Put(name string, data []byte) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if len(data) == 0 {
		return ErrEmptyBackup
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	// Temp file in the same directory so the rename cannot cross
	// filesystems and stays atomic.
	tmp, err := os.CreateTemp(fs.baseDir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	if err := os.Rename(tmpPath, fs.Path(name)); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return nil
}

// Get retrieves the blob stored under name.
func (fs *FileStore) Get(name string) ([]byte, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	data, err := os.ReadFile(fs.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return data, nil
}

// Has checks whether a blob exists under name.
func (fs *FileStore) Has(name string) (bool, error) {
	if err := ValidateName(name); err != nil {
		return false, err
	}

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if _, err := os.Stat(fs.Path(name)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return true, nil
}

// Delete removes the blob stored under name.
func (fs *FileStore) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.Remove(fs.Path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return nil
}

// List returns all stored backup names, sorted.
func (fs *FileStore) List() ([]string, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	entries, err := os.ReadDir(fs.baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		base := entry.Name()
		if !strings.HasSuffix(base, BackupExt) {
			continue // skip temp files and strays
		}
		name := strings.TrimSuffix(base, BackupExt)
		if ValidateName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
