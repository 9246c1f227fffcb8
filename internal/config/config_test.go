package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDefaults_EmptyConfig(t *testing.T) {
	cfg := (&Config{}).WithDefaults()

	assert.Equal(t, DefaultMainClass, cfg.Defaults.MainClass)
	assert.NotEmpty(t, cfg.Versions.Minecraft)
	assert.NotEmpty(t, cfg.Versions.Loader)
	assert.NotEmpty(t, cfg.Versions.Loom)
	assert.True(t, cfg.GitInit())
}

func TestWithDefaults_PreservesSetValues(t *testing.T) {
	off := false
	cfg := (&Config{
		Defaults: Defaults{MainClass: "com.acme.mod.AcmeMod"},
		Versions: Versions{Minecraft: "1.20.1"},
		Git:      Git{Init: &off},
	}).WithDefaults()

	assert.Equal(t, "com.acme.mod.AcmeMod", cfg.Defaults.MainClass)
	assert.Equal(t, "1.20.1", cfg.Versions.Minecraft)
	assert.NotEmpty(t, cfg.Versions.Loader)
	assert.False(t, cfg.GitInit())
}

func TestGitInit_NilMeansTrue(t *testing.T) {
	assert.True(t, (&Config{}).GitInit())
}
