// Package config locates, parses, and applies veil's configuration file.
//
// A load never resets fields: the caller hands in an Options record already
// populated with built-in defaults and any command-line values, and only keys
// present in the document are written. Warnings (deprecated keys, dropped
// condition entries, bad log levels) go to the supplied logger. Genuinely
// dangerous input (unknown backends, malformed opacity rules or blur
// kernels) aborts the load with a typed error so the caller can refuse to
// composite with ambiguous settings.
package config
