package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treefs/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.StartPath)
	assert.Equal(t, domain.SymlinkFollow, cfg.SymlinkPolicy)
}

func TestMergeConfig(t *testing.T) {
	path := "/srv/projects"
	policy := "skip"
	merged := mergeConfig(DefaultConfig(), fileConfig{
		StartPath:     &path,
		SymlinkPolicy: &policy,
	})
	assert.Equal(t, "/srv/projects", merged.StartPath)
	assert.Equal(t, domain.SymlinkSkip, merged.SymlinkPolicy)
}

func TestMergeConfigIgnoresInvalidPolicy(t *testing.T) {
	bogus := "mark"
	merged := mergeConfig(DefaultConfig(), fileConfig{SymlinkPolicy: &bogus})
	assert.Equal(t, domain.SymlinkFollow, merged.SymlinkPolicy)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("config dir override uses XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	saved := Config{StartPath: "/srv", SymlinkPolicy: domain.SymlinkSkip}
	require.NoError(t, SaveConfig(saved))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("config dir override uses XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), loaded)
}
