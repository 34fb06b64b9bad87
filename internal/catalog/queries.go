package catalog

import (
	"fmt"

	"github.com/desertthunder/tunedex/internal/models"
)

// Artist returns the first artist registered with the given name.
func (s *Store) Artist(name string) (models.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.artistsByName[name]
	if !ok {
		return models.Artist{}, fmt.Errorf("%w: %q", ErrArtistNotFound, name)
	}
	return a.snapshot(), nil
}

// Album returns the album with the given title.
func (s *Store) Album(title string) (models.Album, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	al, ok := s.albumsByTitle[title]
	if !ok {
		return models.Album{}, fmt.Errorf("%w: %q", ErrAlbumNotFound, title)
	}
	return al.snapshot(), nil
}

// Song returns the song with the given title.
func (s *Store) Song(title string) (models.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	so, ok := s.songsByTitle[title]
	if !ok {
		return models.Song{}, fmt.Errorf("%w: %q", ErrSongNotFound, title)
	}
	return so.snapshot(), nil
}

// User returns the first user registered with the given mobile number.
func (s *Store) User(mobile string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.usersByMobile[mobile]
	if !ok {
		return models.User{}, fmt.Errorf("%w: %q", ErrUserNotFound, mobile)
	}
	return u.snapshot(), nil
}

// Playlist returns the playlist with the given title without changing its listeners.
func (s *Store) Playlist(title string) (models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.playlistsByTitle[title]
	if !ok {
		return models.Playlist{}, fmt.Errorf("%w: %q", ErrPlaylistNotFound, title)
	}
	return p.snapshot(), nil
}

// ArtistAlbums returns the albums of the named artist in creation order.
func (s *Store) ArtistAlbums(name string) ([]models.Album, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.artistsByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrArtistNotFound, name)
	}

	albums := make([]models.Album, 0, len(a.albums))
	for _, al := range a.albums {
		albums = append(albums, al.snapshot())
	}
	return albums, nil
}

// AlbumSongs returns the songs of the titled album in creation order.
func (s *Store) AlbumSongs(title string) ([]models.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	al, ok := s.albumsByTitle[title]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAlbumNotFound, title)
	}
	return songSnapshots(al.songs), nil
}

// UserPlaylists returns the playlists the user created or listens to, in the order they joined.
func (s *Store) UserPlaylists(mobile string) ([]models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.usersByMobile[mobile]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, mobile)
	}

	playlists := make([]models.Playlist, 0, len(u.member))
	for _, p := range u.member {
		playlists = append(playlists, p.snapshot())
	}
	return playlists, nil
}

// CreatedPlaylists returns the playlists created by the user.
func (s *Store) CreatedPlaylists(mobile string) ([]models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.usersByMobile[mobile]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, mobile)
	}

	playlists := make([]models.Playlist, 0, len(u.created))
	for _, p := range u.created {
		playlists = append(playlists, p.snapshot())
	}
	return playlists, nil
}

// SongLikers returns the users who liked the song, in the order they liked it.
func (s *Store) SongLikers(title string) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	so, ok := s.songsByTitle[title]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSongNotFound, title)
	}
	return userSnapshots(so.likers), nil
}

// Snapshot copies the whole catalog in creation order.
func (s *Store) Snapshot() models.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := models.Catalog{
		Artists:   make([]models.Artist, 0, len(s.artists)),
		Albums:    make([]models.Album, 0, len(s.albums)),
		Songs:     songSnapshots(s.songs),
		Users:     userSnapshots(s.users),
		Playlists: make([]models.Playlist, 0, len(s.playlists)),
	}
	for _, a := range s.artists {
		c.Artists = append(c.Artists, a.snapshot())
	}
	for _, al := range s.albums {
		c.Albums = append(c.Albums, al.snapshot())
	}
	for _, p := range s.playlists {
		c.Playlists = append(c.Playlists, p.snapshot())
	}
	return c
}
