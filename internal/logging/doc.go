// Package logging constructs the slog loggers used across groove.
//
// Two output formats are supported: "console" for interactive use (colored
// when the terminal supports it) and "json" for machine consumption. Output
// fans out to stdout plus a log file under the configured log directory.
package logging
