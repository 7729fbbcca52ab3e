// Package logging assembles the structured slog loggers used across veil.
//
// It owns the console and JSON handlers, the shared level variable that the
// configuration loader may adjust when a config file sets log-level, and the
// level-name parsing both the loader and the CLI rely on. Prefer these
// constructors over hand-rolled slog setup so every component emits lines
// with the same shape.
package logging
