// Package catalog implements the in-memory music catalog store.
//
// A single [Store] owns every entity arena (artists, albums, songs, users, playlists) and every relationship
// between them. Entities live for the lifetime of the store; nothing is ever deleted. Operations only add
// entities, extend relationships, or bump like counts.
//
// # Operations
//
//   - [Store.CreateUser], [Store.CreateArtist] : always succeed
//   - [Store.CreateAlbum] : creates the owning artist on demand
//   - [Store.CreateSong] : attaches the song to exactly one album
//   - [Store.CreatePlaylistOnLength], [Store.CreatePlaylistOnName] : derive a fixed song set from the catalog
//   - [Store.FindPlaylist] : adds the user as a listener unless already a member
//   - [Store.LikeSong] : records a like once per user and propagates it to the owning artist
//   - [Store.MostPopularArtist], [Store.MostPopularSong] : strictly-greatest like count, first created wins ties
//
// # Lookups
//
// Artists are found by name, albums, songs and playlists by title, and users by mobile number. Album, song and
// playlist titles are unique within a store and creation fails with [ErrDuplicateTitle] on a collision. Artist
// names and mobile numbers are not unique; lookups resolve to the first entity registered with the key.
//
// # Errors
//
// Each operation fails with one of the sentinel errors in errors.go, wrapped with the offending key. A failed
// operation leaves the store unchanged.
//
// # Concurrency
//
// Every method takes the store's mutex for its whole duration, so callers never observe a partially linked
// entity. Returned values are copies.
package catalog
