// Package models defines the entity types exchanged with the tunedex catalog store.
//
// The package contains two categories of types:
//
// 1. Entities: value snapshots returned by [catalog.Store] operations
//   - [Artist] : Performer with an aggregate like count
//   - [Album] : Titled release owned by exactly one artist
//   - [Song] : Titled track with a length, owned by exactly one album
//   - [User] : Listener identified by mobile number
//   - [Playlist] : Derived song set with a creator and listeners
//
// 2. Requests: argument bundles used by the HTTP API and catalog scripts
//   - [UserRequest], [ArtistRequest], [AlbumRequest], [SongRequest]
//   - [PlaylistRequest], [MembershipRequest]
//
// Every request implements [Validator]. The store itself never validates arguments;
// callers are expected to call Validate before invoking an operation.
package models
