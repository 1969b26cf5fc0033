// Package config collects the run parameters that were module-level
// constants in the original prototype into a single validated record.
//
// Config has no framework dependency of its own; cmd/bordaquery binds
// it to command-line flags and environment variables, but library
// callers can construct and validate a Config directly.
package config
