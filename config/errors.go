package config

import "errors"

var (
	// ErrEmptyDataDir indicates the data directory is not set.
	ErrEmptyDataDir = errors.New("config: data directory is empty")

	// ErrInvalidBackend indicates an unknown storage backend name.
	ErrInvalidBackend = errors.New("config: storage backend must be \"file\" or \"bolt\"")

	// ErrInvalidCompression indicates an unknown compression name.
	ErrInvalidCompression = errors.New("config: compression must be \"none\", \"gzip\" or \"lzw\"")

	// ErrInvalidLogLevel indicates an unaccepted log level string.
	ErrInvalidLogLevel = errors.New("config: invalid log level")
)
