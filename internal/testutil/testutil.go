// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ReadFile reads a file under dir and fails the test on error.
func ReadFile(t *testing.T, dir string, parts ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{dir}, parts...)...)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// IsolateConfig points MODSMITH_CONFIG at a nonexistent file so tests never
// pick up defaults from the developer's machine.
func IsolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("MODSMITH_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))
}
