package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = \"demo\"\nwidth = 640\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 640, cfg.Width)
	// keys the file does not set keep the defaults
	assert.Equal(t, DefaultConfig().Height, cfg.Height)
	assert.Equal(t, DefaultConfig().VSync, cfg.VSync)
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = \"not a number\""), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
