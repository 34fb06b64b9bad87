// package catalog holds the relationship graph between artists, albums, songs, users and playlists
package catalog

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tunedex/internal/models"
	"github.com/desertthunder/tunedex/internal/shared"
)

// Store is the in-memory catalog. The zero value is not usable; construct with [New].
type Store struct {
	mu     sync.Mutex
	logger *log.Logger

	// Arenas in creation order
	artists   []*artist
	albums    []*album
	songs     []*song
	users     []*user
	playlists []*playlist

	// Lookup indexes. Artist names and mobiles keep the first registration.
	artistsByName    map[string]*artist
	albumsByTitle    map[string]*album
	songsByTitle     map[string]*song
	usersByMobile    map[string]*user
	playlistsByTitle map[string]*playlist
}

// Option configures a [Store].
type Option func(*Store)

// WithLogger sets the logger used to report catalog mutations at debug level.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = shared.WithLogger(l, "component", "catalog")
		}
	}
}

// New creates an empty [Store].
func New(opts ...Option) *Store {
	s := &Store{
		logger:           log.New(io.Discard),
		artistsByName:    make(map[string]*artist),
		albumsByTitle:    make(map[string]*album),
		songsByTitle:     make(map[string]*song),
		usersByMobile:    make(map[string]*user),
		playlistsByTitle: make(map[string]*playlist),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateUser registers a new user. Mobile numbers are not required to be unique.
func (s *Store) CreateUser(name, mobile string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := &user{id: shared.GenerateID(), name: name, mobile: mobile}
	s.users = append(s.users, u)
	if _, ok := s.usersByMobile[mobile]; !ok {
		s.usersByMobile[mobile] = u
	}

	s.logger.Debug("created user", "id", u.id, "mobile", mobile)
	return u.snapshot()
}

// CreateArtist registers a new artist with no albums and no likes.
func (s *Store) CreateArtist(name string) models.Artist {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.addArtist(name)
	return a.snapshot()
}

// CreateAlbum registers an album under the artist with the given name, creating the artist if needed.
//
// Fails with [ErrDuplicateTitle] if the title is taken, in which case no artist is created either.
func (s *Store) CreateAlbum(title, artistName string) (models.Album, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.albumsByTitle[title]; ok {
		return models.Album{}, fmt.Errorf("%w: album %q", ErrDuplicateTitle, title)
	}

	a, ok := s.artistsByName[artistName]
	if !ok {
		a = s.addArtist(artistName)
	}

	al := &album{id: shared.GenerateID(), title: title, artist: a}
	a.albums = append(a.albums, al)
	s.albums = append(s.albums, al)
	s.albumsByTitle[title] = al

	s.logger.Debug("created album", "id", al.id, "title", title, "artist", artistName)
	return al.snapshot(), nil
}

// CreateSong registers a song and appends it to the album with the given title.
//
// Fails with [ErrAlbumNotFound] or [ErrDuplicateTitle].
func (s *Store) CreateSong(title, albumTitle string, length int) (models.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	al, ok := s.albumsByTitle[albumTitle]
	if !ok {
		return models.Song{}, fmt.Errorf("%w: %q", ErrAlbumNotFound, albumTitle)
	}
	if _, ok := s.songsByTitle[title]; ok {
		return models.Song{}, fmt.Errorf("%w: song %q", ErrDuplicateTitle, title)
	}

	so := &song{
		id:      shared.GenerateID(),
		title:   title,
		length:  length,
		album:   al,
		likedBy: make(map[*user]struct{}),
	}
	s.songs = append(s.songs, so)
	s.songsByTitle[title] = so
	al.songs = append(al.songs, so)

	s.logger.Debug("created song", "id", so.id, "title", title, "album", albumTitle, "length", length)
	return so.snapshot(), nil
}

// CreatePlaylistOnLength creates a playlist of every catalog song whose length equals length.
//
// Fails with [ErrUserNotFound] or [ErrDuplicateTitle].
func (s *Store) CreatePlaylistOnLength(mobile, title string, length int) (models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createPlaylist(mobile, title, func(so *song) bool {
		return so.length == length
	})
}

// CreatePlaylistOnName creates a playlist of every catalog song whose title is in songTitles.
//
// Songs keep catalog order, and repeated titles in songTitles do not repeat songs.
// Fails with [ErrUserNotFound] or [ErrDuplicateTitle].
func (s *Store) CreatePlaylistOnName(mobile, title string, songTitles []string) (models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[string]struct{}, len(songTitles))
	for _, t := range songTitles {
		wanted[t] = struct{}{}
	}

	return s.createPlaylist(mobile, title, func(so *song) bool {
		_, ok := wanted[so.title]
		return ok
	})
}

// FindPlaylist makes the user a listener of the playlist with the given title.
//
// The playlist is returned unchanged when the user created it or already listens to it.
// Fails with [ErrPlaylistNotFound] (checked first) or [ErrUserNotFound].
func (s *Store) FindPlaylist(mobile, playlistTitle string) (models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.playlistsByTitle[playlistTitle]
	if !ok {
		return models.Playlist{}, fmt.Errorf("%w: %q", ErrPlaylistNotFound, playlistTitle)
	}
	u, ok := s.usersByMobile[mobile]
	if !ok {
		return models.Playlist{}, fmt.Errorf("%w: %q", ErrUserNotFound, mobile)
	}

	if p.creator == u {
		return p.snapshot(), nil
	}
	if p.addListener(u) {
		u.member = append(u.member, p)
		s.logger.Debug("added listener", "playlist", playlistTitle, "mobile", mobile)
	}

	return p.snapshot(), nil
}

// LikeSong records a like from the user on the song and propagates it to the song's artist.
//
// Repeated likes from the same user are no-ops. Fails with [ErrUserNotFound] or [ErrSongNotFound].
func (s *Store) LikeSong(mobile, songTitle string) (models.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.usersByMobile[mobile]
	if !ok {
		return models.Song{}, fmt.Errorf("%w: %q", ErrUserNotFound, mobile)
	}
	so, ok := s.songsByTitle[songTitle]
	if !ok {
		return models.Song{}, fmt.Errorf("%w: %q", ErrSongNotFound, songTitle)
	}

	if !so.like(u) {
		return so.snapshot(), nil
	}

	if so.album != nil && so.album.artist != nil {
		so.album.artist.likes++
	} else {
		s.logger.Warn("liked song has no owning artist", "song", songTitle)
	}

	s.logger.Debug("liked song", "song", songTitle, "mobile", mobile, "likes", so.likes)
	return so.snapshot(), nil
}

// MostPopularArtist returns the name of the artist with the strictly greatest like count.
//
// Artists with zero likes are never reported, ok is false when no artist has a like.
// Ties go to the artist created first.
func (s *Store) MostPopularArtist() (name string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	best := 0
	for _, a := range s.artists {
		if a.likes > best {
			best, name, ok = a.likes, a.name, true
		}
	}
	return name, ok
}

// MostPopularSong returns the title of the song with the strictly greatest like count, by the same
// rules as [Store.MostPopularArtist].
func (s *Store) MostPopularSong() (title string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	best := 0
	for _, so := range s.songs {
		if so.likes > best {
			best, title, ok = so.likes, so.title, true
		}
	}
	return title, ok
}

// addArtist registers an artist. Callers hold s.mu.
func (s *Store) addArtist(name string) *artist {
	a := &artist{id: shared.GenerateID(), name: name}
	s.artists = append(s.artists, a)
	if _, ok := s.artistsByName[name]; !ok {
		s.artistsByName[name] = a
	}

	s.logger.Debug("created artist", "id", a.id, "name", name)
	return a
}

// createPlaylist builds a playlist from the songs matching include. Callers hold s.mu.
func (s *Store) createPlaylist(mobile, title string, include func(*song) bool) (models.Playlist, error) {
	u, ok := s.usersByMobile[mobile]
	if !ok {
		return models.Playlist{}, fmt.Errorf("%w: %q", ErrUserNotFound, mobile)
	}
	if _, ok := s.playlistsByTitle[title]; ok {
		return models.Playlist{}, fmt.Errorf("%w: playlist %q", ErrDuplicateTitle, title)
	}

	p := &playlist{
		id:          shared.GenerateID(),
		title:       title,
		creator:     u,
		listenerSet: make(map[*user]struct{}),
	}
	for _, so := range s.songs {
		if include(so) {
			p.songs = append(p.songs, so)
		}
	}
	p.addListener(u)

	s.playlists = append(s.playlists, p)
	s.playlistsByTitle[title] = p
	u.created = append(u.created, p)
	u.member = append(u.member, p)

	s.logger.Debug("created playlist", "id", p.id, "title", title, "creator", mobile, "songs", len(p.songs))
	return p.snapshot(), nil
}
