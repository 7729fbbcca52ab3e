package config_test

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"veil/internal/config"
	"veil/internal/testsupport"
)

// isolateSearchPath points every config search location at empty temp dirs.
func isolateSearchPath(t *testing.T) (home string) {
	t.Helper()
	home = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(home, "xdg"))
	return home
}

func TestLoadWithoutAnyConfigFileIsNotAnError(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG search paths are exercised on linux only")
	}
	isolateSearchPath(t)

	opt := config.Default()
	loader := &config.Loader{}
	res, err := loader.Load("", &opt)
	if err != nil {
		t.Fatalf("absent default config must not error: %v", err)
	}
	if res.Loaded || res.Path != "" {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestLoadUnreadableExplicitPathIsFatal(t *testing.T) {
	opt := config.Default()
	loader := &config.Loader{}
	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.toml"), &opt)
	var unreadable *config.UnreadableExplicitError
	if !errors.As(err, &unreadable) {
		t.Fatalf("expected *config.UnreadableExplicitError, got %v", err)
	}
}

func TestLoadFindsConfigInXDGConfigHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG search paths are exercised on linux only")
	}
	home := isolateSearchPath(t)
	path := filepath.Join(home, ".config", "veil", "veil.toml")
	testsupport.WriteFile(t, path, "shadow-radius = 4\n")

	opt := config.Default()
	loader := &config.Loader{}
	res, err := loader.Load("", &opt)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if res.Path != path {
		t.Fatalf("resolved %q, want %q", res.Path, path)
	}
	if opt.ShadowRadius != 4 {
		t.Fatalf("option from discovered file not applied: %d", opt.ShadowRadius)
	}
}

func TestLoadPrefersBareNameOverSubdirectory(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG search paths are exercised on linux only")
	}
	home := isolateSearchPath(t)
	bare := filepath.Join(home, ".config", "veil.toml")
	testsupport.WriteFile(t, bare, "shadow-radius = 1\n")
	testsupport.WriteFile(t, filepath.Join(home, ".config", "veil", "veil.toml"), "shadow-radius = 2\n")

	opt := config.Default()
	loader := &config.Loader{}
	res, err := loader.Load("", &opt)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if res.Path != bare {
		t.Fatalf("resolved %q, want %q", res.Path, bare)
	}
	if opt.ShadowRadius != 1 {
		t.Fatalf("wrong candidate applied: %d", opt.ShadowRadius)
	}
}

func TestLoadFallsBackToSystemConfigDirs(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG search paths are exercised on linux only")
	}
	home := isolateSearchPath(t)
	system := filepath.Join(home, "xdg")
	path := filepath.Join(system, "veil", "veil.toml")
	testsupport.WriteFile(t, path, "shadow-radius = 9\n")

	opt := config.Default()
	loader := &config.Loader{}
	res, err := loader.Load("", &opt)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if res.Path != path {
		t.Fatalf("resolved %q, want %q", res.Path, path)
	}
}

func TestLoadFallsBackToLegacyDotfile(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG search paths are exercised on linux only")
	}
	home := isolateSearchPath(t)
	legacy := filepath.Join(home, ".veil.toml")
	testsupport.WriteFile(t, legacy, "fade-delta = 30\n")

	opt := config.Default()
	loader := &config.Loader{}
	res, err := loader.Load("", &opt)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if res.Path != legacy {
		t.Fatalf("resolved %q, want %q", res.Path, legacy)
	}
	if opt.FadeDelta != 30 {
		t.Fatalf("legacy config not applied: %d", opt.FadeDelta)
	}
}
