package catalog

import "github.com/desertthunder/tunedex/internal/models"

// Internal records. Back-references (album.artist, song.album) are set at creation.

type artist struct {
	id     string
	name   string
	likes  int
	albums []*album
}

type album struct {
	id     string
	title  string
	artist *artist
	songs  []*song
}

type song struct {
	id      string
	title   string
	length  int
	likes   int
	album   *album
	likedBy map[*user]struct{}
	likers  []*user
}

type user struct {
	id      string
	name    string
	mobile  string
	created []*playlist
	member  []*playlist
}

type playlist struct {
	id          string
	title       string
	creator     *user
	songs       []*song
	listeners   []*user
	listenerSet map[*user]struct{}
}

func (a *artist) snapshot() models.Artist {
	return models.Artist{ID: a.id, Name: a.name, Likes: a.likes}
}

func (a *album) snapshot() models.Album {
	return models.Album{ID: a.id, Title: a.title, ArtistID: a.artist.id}
}

func (s *song) snapshot() models.Song {
	return models.Song{ID: s.id, Title: s.title, Length: s.length, Likes: s.likes, AlbumID: s.album.id}
}

func (u *user) snapshot() models.User {
	return models.User{ID: u.id, Name: u.name, Mobile: u.mobile}
}

func (p *playlist) snapshot() models.Playlist {
	return models.Playlist{
		ID:        p.id,
		Title:     p.title,
		Creator:   p.creator.snapshot(),
		Songs:     songSnapshots(p.songs),
		Listeners: userSnapshots(p.listeners),
	}
}

// hasListener reports whether u is in the playlist's listener set.
func (p *playlist) hasListener(u *user) bool {
	_, ok := p.listenerSet[u]
	return ok
}

// addListener appends u to the listener set, returning false if u was already present.
func (p *playlist) addListener(u *user) bool {
	if p.hasListener(u) {
		return false
	}
	p.listenerSet[u] = struct{}{}
	p.listeners = append(p.listeners, u)
	return true
}

// like records u's like, returning false if u already liked the song.
func (s *song) like(u *user) bool {
	if _, ok := s.likedBy[u]; ok {
		return false
	}
	s.likedBy[u] = struct{}{}
	s.likers = append(s.likers, u)
	s.likes++
	return true
}

func songSnapshots(songs []*song) []models.Song {
	out := make([]models.Song, 0, len(songs))
	for _, s := range songs {
		out = append(out, s.snapshot())
	}
	return out
}

func userSnapshots(users []*user) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.snapshot())
	}
	return out
}
