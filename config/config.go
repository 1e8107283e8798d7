// Package config holds the on-disk configuration for chainvault and
// its validation rules.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/DisDoh/chainvault-go/storage"
)

// Storage backend names.
const (
	BackendFile = "file"
	BackendBolt = "bolt"
)

// Config is the chainvault configuration, loaded from config.yaml in
// the data directory.
type Config struct {
	DataDir     string `yaml:"data_dir"`
	StorageDir  string `yaml:"storage_dir"` // backup storage area; defaults to {data_dir}/backups
	Backend     string `yaml:"backend"`     // "file" or "bolt"
	Compression string `yaml:"compression"` // "none", "gzip" or "lzw"
	LogLevel    string `yaml:"log_level"`   // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig(dataDir string) Config {
	return Config{
		DataDir:     dataDir,
		StorageDir:  filepath.Join(dataDir, "backups"),
		Backend:     BackendFile,
		Compression: "gzip",
		LogLevel:    "info",
	}
}

// ConfigPath returns the path of the config file within dataDir.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, "config.yaml")
}

// LoadConfig reads and validates the config file at path. Unset fields
// fall back to their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultConfig(filepath.Dir(path))
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.StorageDir == "" {
		cfg.StorageDir = filepath.Join(cfg.DataDir, "backups")
	}

	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// CompressionScheme maps the configured compression name to its
// storage scheme constant.
func (c Config) CompressionScheme() int32 {
	switch c.Compression {
	case "gzip":
		return storage.CompressGZIP
	case "lzw":
		return storage.CompressLZW
	default:
		return storage.CompressNone
	}
}
