package config

import "fmt"

// UnreadableExplicitError means a path given on the command line could not be
// opened. Unlike an absent default config, this is fatal: the user asked for
// a specific file.
type UnreadableExplicitError struct {
	Path string
	Err  error
}

func (e *UnreadableExplicitError) Error() string {
	return fmt.Sprintf("failed to read configuration file %q: %v", e.Path, e.Err)
}

func (e *UnreadableExplicitError) Unwrap() error { return e.Err }

// ParseError reports a syntax error in the document with its originating
// file and line. The caller decides whether to continue on defaults.
type ParseError struct {
	Path    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// EnumError reports an unrecognized value for a behavior-critical enum key
// (vsync, backend, glx-swap-method). Always fatal: compositing with an
// undefined backend is worse than refusing to start.
type EnumError struct {
	Key   string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("cannot parse %s value %q", e.Key, e.Value)
}

// RuleError reports a malformed opacity-rule or blur-kern entry. Always
// fatal; these rules silently misbehaving is considered too dangerous.
type RuleError struct {
	Key   string
	Entry string
	Err   error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("cannot parse %s entry %q: %v", e.Key, e.Entry, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }
