package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesBuiltins(t *testing.T) {
	cfg, err := NewLoader().LoadWithDefaults(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultMainClass, cfg.Defaults.MainClass)
	assert.NotEmpty(t, cfg.Versions.Minecraft)
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `defaults:
  mainClass: com.acme.mod.AcmeMod
versions:
  minecraft: 1.20.1
git:
  init: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewLoader().LoadWithDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, "com.acme.mod.AcmeMod", cfg.Defaults.MainClass)
	assert.Equal(t, "1.20.1", cfg.Versions.Minecraft)
	assert.False(t, cfg.GitInit())
	// Unset fields still get builtins.
	assert.NotEmpty(t, cfg.Versions.Loader)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  mainClass: com.acme.mod.FromFile\n"), 0o644))

	t.Setenv("MODSMITH_MAIN_CLASS", "com.acme.mod.FromEnv")

	cfg, err := NewLoader().LoadWithDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, "com.acme.mod.FromEnv", cfg.Defaults.MainClass)
}

func TestGetConfigFile_EnvPrecedence(t *testing.T) {
	t.Setenv("MODSMITH_CONFIG", "/custom/config.yaml")

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/custom/config.yaml", path)
}
