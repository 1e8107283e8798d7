package config

import "strings"

// validLogLevels lists the accepted log level strings.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validCompression lists the accepted compression names.
var validCompression = map[string]bool{
	"none": true,
	"gzip": true,
	"lzw":  true,
}

// ValidateConfig checks that all configuration values are within
// acceptable ranges and returns the first error encountered, or nil.
func ValidateConfig(cfg Config) error {
	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	if cfg.Backend != BackendFile && cfg.Backend != BackendBolt {
		return ErrInvalidBackend
	}

	if !validCompression[cfg.Compression] {
		return ErrInvalidCompression
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return ErrInvalidLogLevel
	}

	return nil
}
