// Package main hosts the groove CLI entrypoint and command graph.
//
// The cobra-based command tree translates terminal invocations into HTTP
// calls against the daemon API: catalog management, order placement, daemon
// status, and configuration scaffolding. Configuration resolution and client
// construction are centralized in commandContext so subcommands can focus on
// flags and output.
package main
