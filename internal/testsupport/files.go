// Package testsupport provides helpers shared by configuration tests:
// temp-file writers and a recording slog handler for warning assertions.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteConfig writes contents as a veil.toml inside a fresh temp directory
// and returns the file path.
func WriteConfig(t testing.TB, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "veil.toml")
	WriteFile(t, path, contents)
	return path
}

// WriteFile writes contents to path, creating parent directories as needed.
func WriteFile(t testing.TB, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
