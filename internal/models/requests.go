package models

import (
	"fmt"
	"strings"

	"github.com/desertthunder/tunedex/internal/shared"
)

// Validator checks caller-supplied arguments before they reach the store.
type Validator interface {
	Validate() error // Validate returns an error wrapping [shared.ErrMissingArgument] or [shared.ErrInvalidInput]
}

var (
	_ Validator = UserRequest{}
	_ Validator = ArtistRequest{}
	_ Validator = AlbumRequest{}
	_ Validator = SongRequest{}
	_ Validator = PlaylistRequest{}
	_ Validator = MembershipRequest{}
)

// UserRequest carries the arguments of CreateUser.
type UserRequest struct {
	Name   string `json:"name" toml:"name"`
	Mobile string `json:"mobile" toml:"mobile"`
}

func (r UserRequest) Validate() error {
	return required("name", r.Name, "mobile", r.Mobile)
}

// ArtistRequest carries the arguments of CreateArtist.
type ArtistRequest struct {
	Name string `json:"name" toml:"name"`
}

func (r ArtistRequest) Validate() error {
	return required("name", r.Name)
}

// AlbumRequest carries the arguments of CreateAlbum.
type AlbumRequest struct {
	Title  string `json:"title" toml:"title"`
	Artist string `json:"artist" toml:"artist"`
}

func (r AlbumRequest) Validate() error {
	return required("title", r.Title, "artist", r.Artist)
}

// SongRequest carries the arguments of CreateSong.
type SongRequest struct {
	Title  string `json:"title" toml:"title"`
	Album  string `json:"album" toml:"album"`
	Length int    `json:"length" toml:"length"`
}

func (r SongRequest) Validate() error {
	if err := required("title", r.Title, "album", r.Album); err != nil {
		return err
	}
	if r.Length < 0 {
		return fmt.Errorf("%w: length must not be negative", shared.ErrInvalidInput)
	}
	return nil
}

// PlaylistRequest carries the arguments of CreatePlaylistOnLength and CreatePlaylistOnName.
//
// A request with a non-empty Songs list builds the playlist from song titles, otherwise from Length.
type PlaylistRequest struct {
	Mobile string   `json:"mobile" toml:"mobile"`
	Title  string   `json:"title" toml:"title"`
	Length int      `json:"length,omitempty" toml:"length"`
	Songs  []string `json:"songs,omitempty" toml:"songs"`
}

func (r PlaylistRequest) Validate() error {
	if err := required("mobile", r.Mobile, "title", r.Title); err != nil {
		return err
	}
	if r.Length < 0 {
		return fmt.Errorf("%w: length must not be negative", shared.ErrInvalidInput)
	}
	return nil
}

// ByName reports whether the playlist should be built from song titles.
func (r PlaylistRequest) ByName() bool {
	return len(r.Songs) > 0
}

// MembershipRequest identifies a user and a titled target (playlist or song).
// It carries the arguments of FindPlaylist and LikeSong.
type MembershipRequest struct {
	Mobile string `json:"mobile" toml:"mobile"`
	Title  string `json:"title" toml:"title"`
}

func (r MembershipRequest) Validate() error {
	return required("mobile", r.Mobile, "title", r.Title)
}

// required expects name/value pairs and fails on the first blank value.
func required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return fmt.Errorf("%w: %s", shared.ErrMissingArgument, pairs[i])
		}
	}
	return nil
}
