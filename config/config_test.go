package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DisDoh/chainvault-go/storage"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/data")

	assert.Equal(t, "/data", cfg.DataDir)
	assert.Equal(t, filepath.Join("/data", "backups"), cfg.StorageDir)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.NoError(t, ValidateConfig(cfg))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := ConfigPath(dir)
	yaml := "backend: bolt\ncompression: lzw\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, BackendBolt, cfg.Backend)
	assert.Equal(t, "lzw", cfg.Compression)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, dir, cfg.DataDir, "data dir defaults to the config file's directory")
	assert.Equal(t, filepath.Join(dir, "backups"), cfg.StorageDir)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := ConfigPath(dir)
	require.NoError(t, os.WriteFile(path, []byte("backend: cloud\n"), 0600))

	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidBackend)
}

func TestValidateConfig(t *testing.T) {
	base := DefaultConfig("/data")

	cfg := base
	cfg.DataDir = ""
	assert.ErrorIs(t, ValidateConfig(cfg), ErrEmptyDataDir)

	cfg = base
	cfg.Compression = "zip"
	assert.ErrorIs(t, ValidateConfig(cfg), ErrInvalidCompression)

	cfg = base
	cfg.LogLevel = "loud"
	assert.ErrorIs(t, ValidateConfig(cfg), ErrInvalidLogLevel)
}

func TestCompressionScheme(t *testing.T) {
	cfg := DefaultConfig("/data")
	assert.Equal(t, storage.CompressGZIP, cfg.CompressionScheme())

	cfg.Compression = "none"
	assert.Equal(t, storage.CompressNone, cfg.CompressionScheme())

	cfg.Compression = "lzw"
	assert.Equal(t, storage.CompressLZW, cfg.CompressionScheme())
}
