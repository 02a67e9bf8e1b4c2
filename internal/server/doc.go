// Package server exposes the catalog and order services over HTTP.
//
// The server is the boundary layer: it decodes and validates request
// payloads, coerces flat listing parameters, invokes the services, and maps
// the typed domain failures onto HTTP status codes. It also holds the data
// directory lock so only one daemon serves a store at a time.
package server
