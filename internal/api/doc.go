// Package api defines the transport DTOs for the HTTP surface, the
// permissive coercion of flat listing parameters, and the explicit
// validation functions the boundary layer runs before the core services
// ever see a request.
package api
