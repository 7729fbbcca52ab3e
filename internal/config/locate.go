package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// XDG-relative candidates, tried in order under each search directory.
var xdgSuffixes = []string{
	"veil.toml",
	filepath.Join("veil", "veil.toml"),
}

const legacyConfigName = ".veil.toml"

// openConfigFile resolves and opens the configuration file.
//
// An explicit path must open or the load fails. Otherwise the XDG config
// search order is walked, then the legacy dotfile in the home directory.
// Finding nothing without an explicit path is not an error: the returned
// file is nil and the caller runs on defaults.
func openConfigFile(explicit string) (*os.File, string, error) {
	if explicit != "" {
		f, err := os.Open(explicit)
		if err != nil {
			return nil, "", &UnreadableExplicitError{Path: explicit, Err: err}
		}
		return f, explicit, nil
	}

	for _, dir := range configSearchDirs() {
		for _, suffix := range xdgSuffixes {
			path := filepath.Join(dir, suffix)
			if f, err := os.Open(path); err == nil {
				return f, path, nil
			}
		}
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		path := filepath.Join(home, legacyConfigName)
		if f, err := os.Open(path); err == nil {
			return f, path, nil
		}
	}

	return nil, "", nil
}

func configSearchDirs() []string {
	var dirs []string
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		dirs = append(dirs, dir)
	}
	system := os.Getenv("XDG_CONFIG_DIRS")
	if strings.TrimSpace(system) == "" {
		system = "/etc/xdg"
	}
	for _, dir := range strings.Split(system, ":") {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

// DefaultConfigPath returns where `veil config init` writes its sample.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "veil", "veil.toml"), nil
}

// ExpandPath resolves a leading tilde and makes the path absolute.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && pathValue[1] == '/' {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}
