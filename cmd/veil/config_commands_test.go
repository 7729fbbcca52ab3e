package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"veil/internal/testsupport"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestConfigInitCreatesLoadableFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "veil.toml")

	out, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Fatalf("unexpected init output: %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	out, _, err = runCLI(t, "-c", target, "config", "check")
	if err != nil {
		t.Fatalf("config check after init: %v", err)
	}
	if !strings.Contains(out, "Configuration valid") {
		t.Fatalf("unexpected check output: %q", out)
	}
}

func TestConfigInitRefusesToOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "veil.toml")
	testsupport.WriteFile(t, target, "shadow = true\n")

	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected init to refuse an existing file")
	}
	if _, _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("init --overwrite: %v", err)
	}
}

func TestConfigCheckReportsSyntaxError(t *testing.T) {
	path := testsupport.WriteConfig(t, "shadow = \n")

	if _, _, err := runCLI(t, "-c", path, "config", "check"); err == nil {
		t.Fatal("expected check to fail on a syntax error")
	}
}

func TestConfigCheckRejectsMissingExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	if _, _, err := runCLI(t, "-c", path, "config", "check"); err == nil {
		t.Fatal("expected check to fail on a missing explicit path")
	}
}

func TestConfigShowFlagOverridesFile(t *testing.T) {
	path := testsupport.WriteConfig(t, "backend = \"xrender\"\n")

	out, _, err := runCLI(t, "-c", path, "--backend", "glx", "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "glx") {
		t.Fatalf("expected command-line backend in output: %q", out)
	}
	if strings.Contains(out, "xrender") {
		t.Fatalf("file backend should be overridden by the flag: %q", out)
	}
}

func TestConfigShowContinuesOnParseError(t *testing.T) {
	path := testsupport.WriteConfig(t, "shadow = \n")

	out, _, err := runCLI(t, "-c", path, "config", "show")
	if err != nil {
		t.Fatalf("config show on a broken file: %v", err)
	}
	if !strings.Contains(out, "could not be applied") {
		t.Fatalf("expected defaults notice in output: %q", out)
	}
}

func TestConfigShowRejectsInvalidFlagValue(t *testing.T) {
	path := testsupport.WriteConfig(t, "shadow = true\n")

	if _, _, err := runCLI(t, "-c", path, "--backend", "wayland", "config", "show"); err == nil {
		t.Fatal("expected an unrecognized backend flag value to fail")
	}
}
