// Package main hosts the Veil CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the configuration subsystem: loading
// and validating configuration files, scaffolding a sample file, and showing
// the effective option set after defaults, file values, and command-line
// overrides are merged. Flag values the user set on the command line win over
// file values; the file only fills what the command line left alone.
//
// Keep this package lean: semantics belong in the internal packages, the
// commands here only wire flags, logging, and presentation around them.
package main
