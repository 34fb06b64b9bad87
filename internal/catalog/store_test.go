package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tunedex/internal/shared"
)

// setupCatalog builds artist A1 with album Alb1 holding S1 (100s) and S2 (200s), and a user with mobile 999.
func setupCatalog(t *testing.T) *Store {
	t.Helper()

	s := New()
	if _, err := s.CreateAlbum("Alb1", "A1"); err != nil {
		t.Fatalf("failed to create album: %v", err)
	}
	for _, song := range []struct {
		title  string
		length int
	}{{"S1", 100}, {"S2", 200}} {
		if _, err := s.CreateSong(song.title, "Alb1", song.length); err != nil {
			t.Fatalf("failed to create song %s: %v", song.title, err)
		}
	}
	s.CreateUser("Ada", "999")
	return s
}

func TestCreateUser(t *testing.T) {
	s := New()
	u := s.CreateUser("Ada", "999")

	if u.ID == "" {
		t.Error("user ID should be set after creation")
	}
	if u.Name != "Ada" || u.Mobile != "999" {
		t.Errorf("unexpected user %+v", u)
	}

	t.Run("duplicate mobile resolves to first user", func(t *testing.T) {
		second := s.CreateUser("Grace", "999")
		if second.ID == u.ID {
			t.Fatal("expected a distinct user for the duplicate mobile")
		}

		found, err := s.User("999")
		if err != nil {
			t.Fatalf("failed to find user: %v", err)
		}
		if found.ID != u.ID {
			t.Errorf("expected first user %s, got %s", u.ID, found.ID)
		}
		if got := len(s.Snapshot().Users); got != 2 {
			t.Errorf("expected 2 users, got %d", got)
		}
	})
}

func TestCreateArtist(t *testing.T) {
	s := New()
	a := s.CreateArtist("Nina")

	if a.ID == "" || a.Name != "Nina" || a.Likes != 0 {
		t.Errorf("unexpected artist %+v", a)
	}

	albums, err := s.ArtistAlbums("Nina")
	if err != nil {
		t.Fatalf("failed to list albums: %v", err)
	}
	if len(albums) != 0 {
		t.Errorf("expected no albums, got %d", len(albums))
	}
}

func TestCreateAlbum(t *testing.T) {
	t.Run("creates artist when absent", func(t *testing.T) {
		s := New()
		album, err := s.CreateAlbum("Alb1", "A1")
		if err != nil {
			t.Fatalf("failed to create album: %v", err)
		}

		artist, err := s.Artist("A1")
		if err != nil {
			t.Fatalf("expected artist to be created: %v", err)
		}
		if album.ArtistID != artist.ID {
			t.Errorf("expected album to belong to %s, got %s", artist.ID, album.ArtistID)
		}
	})

	t.Run("reuses existing artist", func(t *testing.T) {
		s := New()
		artist := s.CreateArtist("A1")

		for _, title := range []string{"Alb1", "Alb2", "Alb3"} {
			if _, err := s.CreateAlbum(title, "A1"); err != nil {
				t.Fatalf("failed to create album %s: %v", title, err)
			}
		}

		if got := len(s.Snapshot().Artists); got != 1 {
			t.Fatalf("expected 1 artist, got %d", got)
		}

		albums, err := s.ArtistAlbums("A1")
		if err != nil {
			t.Fatalf("failed to list albums: %v", err)
		}
		want := []string{"Alb1", "Alb2", "Alb3"}
		if len(albums) != len(want) {
			t.Fatalf("expected %d albums, got %d", len(want), len(albums))
		}
		for i, al := range albums {
			if al.Title != want[i] {
				t.Errorf("album %d: expected %s, got %s", i, want[i], al.Title)
			}
			if al.ArtistID != artist.ID {
				t.Errorf("album %s: expected artist %s, got %s", al.Title, artist.ID, al.ArtistID)
			}
		}
	})

	t.Run("artist lookup is case sensitive", func(t *testing.T) {
		s := New()
		s.CreateArtist("nina")
		if _, err := s.CreateAlbum("Alb1", "Nina"); err != nil {
			t.Fatalf("failed to create album: %v", err)
		}

		if got := len(s.Snapshot().Artists); got != 2 {
			t.Errorf("expected a second artist for a differently cased name, got %d artists", got)
		}
	})

	t.Run("duplicate title", func(t *testing.T) {
		s := New()
		if _, err := s.CreateAlbum("Alb1", "A1"); err != nil {
			t.Fatalf("failed to create album: %v", err)
		}

		_, err := s.CreateAlbum("Alb1", "A2")
		if !errors.Is(err, ErrDuplicateTitle) {
			t.Fatalf("expected ErrDuplicateTitle, got %v", err)
		}

		if _, err := s.Artist("A2"); !errors.Is(err, ErrArtistNotFound) {
			t.Errorf("rejected album should not create its artist, got %v", err)
		}
		if got := len(s.Snapshot().Albums); got != 1 {
			t.Errorf("expected 1 album, got %d", got)
		}
	})
}

func TestCreateSong(t *testing.T) {
	t.Run("appends to album", func(t *testing.T) {
		s := setupCatalog(t)

		songs, err := s.AlbumSongs("Alb1")
		if err != nil {
			t.Fatalf("failed to list songs: %v", err)
		}
		if len(songs) != 2 || songs[0].Title != "S1" || songs[1].Title != "S2" {
			t.Errorf("unexpected album songs %+v", songs)
		}

		album, _ := s.Album("Alb1")
		for _, so := range songs {
			if so.AlbumID != album.ID {
				t.Errorf("song %s: expected album %s, got %s", so.Title, album.ID, so.AlbumID)
			}
		}
	})

	t.Run("album not found", func(t *testing.T) {
		s := New()

		_, err := s.CreateSong("S1", "Missing", 100)
		if !errors.Is(err, ErrAlbumNotFound) {
			t.Fatalf("expected ErrAlbumNotFound, got %v", err)
		}
		if !strings.Contains(err.Error(), "Missing") {
			t.Errorf("expected error to name the album, got %q", err)
		}
		if _, err := s.Song("S1"); !errors.Is(err, ErrSongNotFound) {
			t.Errorf("song should not be registered, got %v", err)
		}
		if got := len(s.Snapshot().Songs); got != 0 {
			t.Errorf("expected no songs, got %d", got)
		}
	})

	t.Run("duplicate title", func(t *testing.T) {
		s := setupCatalog(t)
		if _, err := s.CreateAlbum("Alb2", "A1"); err != nil {
			t.Fatalf("failed to create album: %v", err)
		}

		_, err := s.CreateSong("S1", "Alb2", 300)
		if !errors.Is(err, ErrDuplicateTitle) {
			t.Fatalf("expected ErrDuplicateTitle, got %v", err)
		}

		songs, _ := s.AlbumSongs("Alb2")
		if len(songs) != 0 {
			t.Errorf("expected Alb2 to stay empty, got %d songs", len(songs))
		}
	})
}

func TestCreatePlaylistOnLength(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		s := setupCatalog(t)

		p, err := s.CreatePlaylistOnLength("999", "P1", 100)
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		if titles := p.SongTitles(); len(titles) != 1 || titles[0] != "S1" {
			t.Errorf("expected only S1, got %v", titles)
		}
		if p.Creator.Mobile != "999" {
			t.Errorf("expected creator 999, got %s", p.Creator.Mobile)
		}
		if len(p.Listeners) != 1 || p.Listeners[0].Mobile != "999" {
			t.Errorf("expected creator as sole listener, got %+v", p.Listeners)
		}

		member, err := s.UserPlaylists("999")
		if err != nil {
			t.Fatalf("failed to list user playlists: %v", err)
		}
		if len(member) != 1 || member[0].ID != p.ID {
			t.Errorf("expected playlist in member list, got %+v", member)
		}

		created, _ := s.CreatedPlaylists("999")
		if len(created) != 1 || created[0].ID != p.ID {
			t.Errorf("expected playlist in created list, got %+v", created)
		}
	})

	t.Run("matches in catalog order", func(t *testing.T) {
		s := setupCatalog(t)
		if _, err := s.CreateAlbum("Alb2", "B1"); err != nil {
			t.Fatalf("failed to create album: %v", err)
		}
		if _, err := s.CreateSong("S3", "Alb2", 100); err != nil {
			t.Fatalf("failed to create song: %v", err)
		}

		p, err := s.CreatePlaylistOnLength("999", "P1", 100)
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		if got := strings.Join(p.SongTitles(), ","); got != "S1,S3" {
			t.Errorf("expected S1,S3, got %s", got)
		}
	})

	t.Run("later songs are not included", func(t *testing.T) {
		s := setupCatalog(t)
		if _, err := s.CreatePlaylistOnLength("999", "P1", 100); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		if _, err := s.CreateSong("S9", "Alb1", 100); err != nil {
			t.Fatalf("failed to create song: %v", err)
		}

		p, err := s.Playlist("P1")
		if err != nil {
			t.Fatalf("failed to get playlist: %v", err)
		}
		if got := strings.Join(p.SongTitles(), ","); got != "S1" {
			t.Errorf("expected playlist to stay S1, got %s", got)
		}
	})

	t.Run("no matches yields empty playlist", func(t *testing.T) {
		s := setupCatalog(t)
		p, err := s.CreatePlaylistOnLength("999", "Empty", 42)
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		if len(p.Songs) != 0 {
			t.Errorf("expected no songs, got %d", len(p.Songs))
		}
	})

	t.Run("user not found", func(t *testing.T) {
		s := setupCatalog(t)
		_, err := s.CreatePlaylistOnLength("000", "P1", 100)
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
		if _, err := s.Playlist("P1"); !errors.Is(err, ErrPlaylistNotFound) {
			t.Errorf("playlist should not be registered, got %v", err)
		}
	})

	t.Run("duplicate title", func(t *testing.T) {
		s := setupCatalog(t)
		if _, err := s.CreatePlaylistOnLength("999", "P1", 100); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		_, err := s.CreatePlaylistOnLength("999", "P1", 200)
		if !errors.Is(err, ErrDuplicateTitle) {
			t.Fatalf("expected ErrDuplicateTitle, got %v", err)
		}

		created, _ := s.CreatedPlaylists("999")
		if len(created) != 1 {
			t.Errorf("expected 1 created playlist, got %d", len(created))
		}
	})

	t.Run("user may create several playlists", func(t *testing.T) {
		s := setupCatalog(t)
		for _, title := range []string{"P1", "P2"} {
			if _, err := s.CreatePlaylistOnLength("999", title, 100); err != nil {
				t.Fatalf("failed to create playlist %s: %v", title, err)
			}
		}

		created, _ := s.CreatedPlaylists("999")
		if len(created) != 2 {
			t.Errorf("expected 2 created playlists, got %d", len(created))
		}
	})
}

func TestCreatePlaylistOnName(t *testing.T) {
	t.Run("selects titles in catalog order", func(t *testing.T) {
		s := setupCatalog(t)
		p, err := s.CreatePlaylistOnName("999", "P1", []string{"S2", "S1", "S2", "Unknown"})
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		if got := strings.Join(p.SongTitles(), ","); got != "S1,S2" {
			t.Errorf("expected S1,S2, got %s", got)
		}
		if len(p.Listeners) != 1 || p.Listeners[0].Mobile != "999" {
			t.Errorf("expected creator as sole listener, got %+v", p.Listeners)
		}
	})

	t.Run("empty title list", func(t *testing.T) {
		s := setupCatalog(t)
		p, err := s.CreatePlaylistOnName("999", "P1", nil)
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		if len(p.Songs) != 0 {
			t.Errorf("expected no songs, got %d", len(p.Songs))
		}
	})

	t.Run("user not found", func(t *testing.T) {
		s := setupCatalog(t)
		if _, err := s.CreatePlaylistOnName("000", "P1", []string{"S1"}); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestFindPlaylist(t *testing.T) {
	setup := func(t *testing.T) *Store {
		s := setupCatalog(t)
		s.CreateUser("Grace", "111")
		if _, err := s.CreatePlaylistOnLength("999", "P1", 100); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		return s
	}

	t.Run("adds listener", func(t *testing.T) {
		s := setup(t)

		p, err := s.FindPlaylist("111", "P1")
		if err != nil {
			t.Fatalf("failed to find playlist: %v", err)
		}
		if len(p.Listeners) != 2 || !p.HasListener("111") || !p.HasListener("999") {
			t.Errorf("expected 999 and 111 as listeners, got %+v", p.Listeners)
		}

		member, _ := s.UserPlaylists("111")
		if len(member) != 1 || member[0].Title != "P1" {
			t.Errorf("expected P1 in member list, got %+v", member)
		}
	})

	t.Run("existing listener is a no-op", func(t *testing.T) {
		s := setup(t)
		for range 3 {
			if _, err := s.FindPlaylist("111", "P1"); err != nil {
				t.Fatalf("failed to find playlist: %v", err)
			}
		}

		p, _ := s.Playlist("P1")
		if len(p.Listeners) != 2 {
			t.Errorf("expected 2 listeners, got %d", len(p.Listeners))
		}
		member, _ := s.UserPlaylists("111")
		if len(member) != 1 {
			t.Errorf("expected 1 member playlist, got %d", len(member))
		}
	})

	t.Run("creator is a no-op", func(t *testing.T) {
		s := setup(t)
		p, err := s.FindPlaylist("999", "P1")
		if err != nil {
			t.Fatalf("failed to find playlist: %v", err)
		}
		if len(p.Listeners) != 1 {
			t.Errorf("expected creator to remain the sole listener, got %d", len(p.Listeners))
		}
		member, _ := s.UserPlaylists("999")
		if len(member) != 1 {
			t.Errorf("expected 1 member playlist, got %d", len(member))
		}
	})

	t.Run("creator of another playlist still joins", func(t *testing.T) {
		s := setup(t)
		if _, err := s.CreatePlaylistOnLength("111", "P2", 200); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		p, err := s.FindPlaylist("111", "P1")
		if err != nil {
			t.Fatalf("failed to find playlist: %v", err)
		}
		if !p.HasListener("111") {
			t.Error("expected creator of P2 to be added as a listener of P1")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		s := setup(t)
		_, err := s.FindPlaylist("000", "P1")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("unknown playlist", func(t *testing.T) {
		s := setup(t)
		for _, mobile := range []string{"999", "000"} {
			_, err := s.FindPlaylist(mobile, "Nope")
			if !errors.Is(err, ErrPlaylistNotFound) {
				t.Errorf("mobile %s: expected ErrPlaylistNotFound, got %v", mobile, err)
			}
		}
	})
}

func TestLikeSong(t *testing.T) {
	t.Run("repeat like counts once", func(t *testing.T) {
		s := setupCatalog(t)

		for range 2 {
			if _, err := s.LikeSong("999", "S1"); err != nil {
				t.Fatalf("failed to like song: %v", err)
			}
		}

		song, _ := s.Song("S1")
		if song.Likes != 1 {
			t.Errorf("expected S1 likes 1, got %d", song.Likes)
		}
		artist, _ := s.Artist("A1")
		if artist.Likes != 1 {
			t.Errorf("expected A1 likes 1, got %d", artist.Likes)
		}

		likers, _ := s.SongLikers("S1")
		if len(likers) != 1 || likers[0].Mobile != "999" {
			t.Errorf("expected 999 as sole liker, got %+v", likers)
		}
	})

	t.Run("returns updated song", func(t *testing.T) {
		s := setupCatalog(t)
		song, err := s.LikeSong("999", "S2")
		if err != nil {
			t.Fatalf("failed to like song: %v", err)
		}
		if song.Title != "S2" || song.Likes != 1 {
			t.Errorf("unexpected song %+v", song)
		}
	})

	t.Run("distinct users and songs of one artist", func(t *testing.T) {
		s := setupCatalog(t)
		s.CreateUser("Grace", "111")

		if _, err := s.LikeSong("999", "S1"); err != nil {
			t.Fatalf("failed to like song: %v", err)
		}
		if _, err := s.LikeSong("111", "S2"); err != nil {
			t.Fatalf("failed to like song: %v", err)
		}

		artist, _ := s.Artist("A1")
		if artist.Likes != 2 {
			t.Errorf("expected A1 likes 2, got %d", artist.Likes)
		}
	})

	t.Run("one user liking several songs", func(t *testing.T) {
		s := setupCatalog(t)
		for _, title := range []string{"S1", "S2"} {
			if _, err := s.LikeSong("999", title); err != nil {
				t.Fatalf("failed to like %s: %v", title, err)
			}
		}

		artist, _ := s.Artist("A1")
		if artist.Likes != 2 {
			t.Errorf("expected A1 likes 2, got %d", artist.Likes)
		}
	})

	t.Run("only the owning artist is credited", func(t *testing.T) {
		s := setupCatalog(t)
		if _, err := s.CreateAlbum("Other", "B1"); err != nil {
			t.Fatalf("failed to create album: %v", err)
		}
		if _, err := s.LikeSong("999", "S1"); err != nil {
			t.Fatalf("failed to like song: %v", err)
		}

		other, _ := s.Artist("B1")
		if other.Likes != 0 {
			t.Errorf("expected B1 likes 0, got %d", other.Likes)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		s := setupCatalog(t)
		_, err := s.LikeSong("000", "S1")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
		song, _ := s.Song("S1")
		if song.Likes != 0 {
			t.Errorf("expected no likes, got %d", song.Likes)
		}
	})

	t.Run("unknown song", func(t *testing.T) {
		s := setupCatalog(t)
		_, err := s.LikeSong("999", "Nope")
		if !errors.Is(err, ErrSongNotFound) {
			t.Fatalf("expected ErrSongNotFound, got %v", err)
		}
	})

	t.Run("user checked before song", func(t *testing.T) {
		s := setupCatalog(t)
		_, err := s.LikeSong("000", "Nope")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestMostPopular(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		s := New()
		if name, ok := s.MostPopularArtist(); ok {
			t.Errorf("expected no artist, got %q", name)
		}
		if title, ok := s.MostPopularSong(); ok {
			t.Errorf("expected no song, got %q", title)
		}
	})

	t.Run("all zero likes", func(t *testing.T) {
		s := setupCatalog(t)
		if name, ok := s.MostPopularArtist(); ok {
			t.Errorf("expected no artist, got %q", name)
		}
		if title, ok := s.MostPopularSong(); ok {
			t.Errorf("expected no song, got %q", title)
		}
	})

	t.Run("single maximum", func(t *testing.T) {
		s := setupCatalog(t)
		if _, err := s.CreateAlbum("Alb2", "B1"); err != nil {
			t.Fatalf("failed to create album: %v", err)
		}
		if _, err := s.CreateSong("S3", "Alb2", 300); err != nil {
			t.Fatalf("failed to create song: %v", err)
		}
		s.CreateUser("Grace", "111")

		likes := []struct{ mobile, song string }{
			{"999", "S1"},
			{"999", "S3"},
			{"111", "S3"},
		}
		for _, l := range likes {
			if _, err := s.LikeSong(l.mobile, l.song); err != nil {
				t.Fatalf("failed to like %s: %v", l.song, err)
			}
		}

		if title, ok := s.MostPopularSong(); !ok || title != "S3" {
			t.Errorf("expected S3, got %q (ok=%v)", title, ok)
		}
		if name, ok := s.MostPopularArtist(); !ok || name != "B1" {
			t.Errorf("expected B1, got %q (ok=%v)", name, ok)
		}
	})

	t.Run("ties go to first created", func(t *testing.T) {
		s := setupCatalog(t)
		if _, err := s.CreateAlbum("Alb2", "B1"); err != nil {
			t.Fatalf("failed to create album: %v", err)
		}
		if _, err := s.CreateSong("S3", "Alb2", 300); err != nil {
			t.Fatalf("failed to create song: %v", err)
		}

		// Like the later song first so insertion order of likes differs from creation order.
		for _, title := range []string{"S3", "S2"} {
			if _, err := s.LikeSong("999", title); err != nil {
				t.Fatalf("failed to like %s: %v", title, err)
			}
		}

		if title, ok := s.MostPopularSong(); !ok || title != "S2" {
			t.Errorf("expected S2, got %q (ok=%v)", title, ok)
		}
		if name, ok := s.MostPopularArtist(); !ok || name != "A1" {
			t.Errorf("expected A1, got %q (ok=%v)", name, ok)
		}
	})
}

func TestSnapshotIsolation(t *testing.T) {
	s := setupCatalog(t)
	p, err := s.CreatePlaylistOnLength("999", "P1", 100)
	if err != nil {
		t.Fatalf("failed to create playlist: %v", err)
	}

	p.Listeners = append(p.Listeners, p.Creator)
	p.Songs[0].Likes = 50

	again, _ := s.Playlist("P1")
	if len(again.Listeners) != 1 {
		t.Errorf("mutating a returned playlist changed the store: %d listeners", len(again.Listeners))
	}
	if again.Songs[0].Likes != 0 {
		t.Errorf("mutating a returned song changed the store: %d likes", again.Songs[0].Likes)
	}

	c := s.Snapshot()
	if len(c.Artists) != 1 || len(c.Albums) != 1 || len(c.Songs) != 2 || len(c.Users) != 1 || len(c.Playlists) != 1 {
		t.Errorf("unexpected snapshot sizes %+v", c)
	}
	if c.SongArtist(c.Songs[0]) != "A1" {
		t.Errorf("expected S1 to resolve to A1, got %q", c.SongArtist(c.Songs[0]))
	}
}

func TestQueriesNotFound(t *testing.T) {
	s := New()

	tc := []struct {
		name string
		call func() error
		want error
	}{
		{"Artist", func() error { _, err := s.Artist("x"); return err }, ErrArtistNotFound},
		{"Album", func() error { _, err := s.Album("x"); return err }, ErrAlbumNotFound},
		{"Song", func() error { _, err := s.Song("x"); return err }, ErrSongNotFound},
		{"User", func() error { _, err := s.User("x"); return err }, ErrUserNotFound},
		{"Playlist", func() error { _, err := s.Playlist("x"); return err }, ErrPlaylistNotFound},
		{"ArtistAlbums", func() error { _, err := s.ArtistAlbums("x"); return err }, ErrArtistNotFound},
		{"AlbumSongs", func() error { _, err := s.AlbumSongs("x"); return err }, ErrAlbumNotFound},
		{"UserPlaylists", func() error { _, err := s.UserPlaylists("x"); return err }, ErrUserNotFound},
		{"CreatedPlaylists", func() error { _, err := s.CreatedPlaylists("x"); return err }, ErrUserNotFound},
		{"SongLikers", func() error { _, err := s.SongLikers("x"); return err }, ErrSongNotFound},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if !IsNotFound(err) {
				t.Errorf("IsNotFound(%v) = false", err)
			}
		})
	}

	if IsNotFound(ErrDuplicateTitle) {
		t.Error("ErrDuplicateTitle is not a lookup failure")
	}
}

func TestConcurrentLikes(t *testing.T) {
	s := setupCatalog(t)

	const users = 50
	for i := range users {
		s.CreateUser(fmt.Sprintf("user-%d", i), fmt.Sprintf("m-%d", i))
	}

	var wg sync.WaitGroup
	for i := range users {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Every user likes both songs twice.
			for range 2 {
				for _, title := range []string{"S1", "S2"} {
					if _, err := s.LikeSong(fmt.Sprintf("m-%d", i), title); err != nil {
						t.Errorf("failed to like %s: %v", title, err)
					}
				}
			}
		}(i)
	}
	wg.Wait()

	for _, title := range []string{"S1", "S2"} {
		song, _ := s.Song(title)
		if song.Likes != users {
			t.Errorf("expected %s likes %d, got %d", title, users, song.Likes)
		}
	}
	artist, _ := s.Artist("A1")
	if artist.Likes != 2*users {
		t.Errorf("expected A1 likes %d, got %d", 2*users, artist.Likes)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := shared.NewLogger(&buf)
	shared.SetLogLevel(logger, log.DebugLevel)

	s := New(WithLogger(logger))
	s.CreateArtist("Nina")

	out := buf.String()
	if !strings.Contains(out, "created artist") || !strings.Contains(out, "component=catalog") {
		t.Errorf("expected debug log for artist creation, got %q", out)
	}
}
