package storage

import "errors"

var (
	// ErrNotFound indicates no backup exists under the given name.
	ErrNotFound = errors.New("storage: backup not found")

	// ErrInvalidName indicates a backup name that is empty or would
	// escape the storage area.
	ErrInvalidName = errors.New("storage: invalid backup name")

	// ErrInvalidBaseDir indicates the base directory path is invalid.
	ErrInvalidBaseDir = errors.New("storage: invalid base directory")

	// ErrEmptyBackup indicates an attempt to store an empty blob.
	ErrEmptyBackup = errors.New("storage: backup data is empty")

	// ErrIOFailure indicates a durable-storage read/write error.
	ErrIOFailure = errors.New("storage: I/O failure")

	// ErrUnsupportedCompression indicates an unsupported compression scheme.
	ErrUnsupportedCompression = errors.New("storage: unsupported compression scheme")

	// ErrDecompressedTooLarge indicates decompressed data exceeds the safety limit.
	ErrDecompressedTooLarge = errors.New("storage: decompressed data exceeds maximum size")
)
