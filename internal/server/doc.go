// Package server exposes the catalog store over HTTP with JSON request and response bodies.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] method patterns ("POST /songs") internally, so requests
// with the wrong method get a 405 from the mux itself.
//
// # Middleware
//
//   - [Recover] : converts handler panics into 500 responses
//   - [RequestLogger] : logs method, path, status and latency for each request
//   - [RateLimit] : token bucket shared by all clients, answers 429 when empty
//
// # Catalog Handler
//
// [CatalogHandler] implements the [Handler] interface. Each route decodes a request from package models,
// validates it, calls one store operation and encodes the returned entity. Store errors map to statuses:
//
//	ErrUserNotFound, ErrAlbumNotFound,
//	ErrSongNotFound, ErrPlaylistNotFound  404
//	ErrDuplicateTitle                     409
//	invalid or missing arguments          400
//
// # Server
//
// [Server] wires the router, middleware and handler to an [http.Server] and shuts it down gracefully when its
// context is cancelled.
package server
