package catalog

import "errors"

var (
	ErrUserNotFound     = errors.New("user does not exist")
	ErrArtistNotFound   = errors.New("artist does not exist")
	ErrAlbumNotFound    = errors.New("album does not exist")
	ErrSongNotFound     = errors.New("song does not exist")
	ErrPlaylistNotFound = errors.New("playlist does not exist")

	// ErrDuplicateTitle is returned when an album, song or playlist title is already taken.
	ErrDuplicateTitle = errors.New("title already exists")
)

// IsNotFound reports whether err is one of the lookup failures.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrArtistNotFound) ||
		errors.Is(err, ErrAlbumNotFound) ||
		errors.Is(err, ErrSongNotFound) ||
		errors.Is(err, ErrPlaylistNotFound)
}
