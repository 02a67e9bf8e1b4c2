// Package config loads and validates the groove daemon configuration.
//
// Configuration lives in a TOML file (default ~/.config/groove/config.toml).
// Load falls back to repository defaults for any field the file omits, so a
// fresh install works with an empty file. Validate rejects values the daemon
// cannot operate with (missing directories, malformed bind addresses,
// nonsensical timeouts) before anything touches the database.
package config
