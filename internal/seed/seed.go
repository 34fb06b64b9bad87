// package seed applies declarative catalog scripts to a store
package seed

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/tunedex/internal/catalog"
	"github.com/desertthunder/tunedex/internal/models"
	"github.com/desertthunder/tunedex/internal/shared"
)

// Script is a parsed catalog script.
type Script struct {
	Users     []models.UserRequest     `toml:"users"`
	Artists   []models.ArtistRequest   `toml:"artists"`
	Albums    []models.AlbumRequest    `toml:"albums"`
	Songs     []models.SongRequest     `toml:"songs"`
	Playlists []models.PlaylistRequest `toml:"playlists"`
	Listeners []Listener               `toml:"listeners"`
	Likes     []Like                   `toml:"likes"`
}

// Listener joins a user to a playlist via [catalog.Store.FindPlaylist].
type Listener struct {
	Mobile   string `toml:"mobile"`
	Playlist string `toml:"playlist"`
}

// Like records a like via [catalog.Store.LikeSong].
type Like struct {
	Mobile string `toml:"mobile"`
	Song   string `toml:"song"`
}

// Report counts the entries applied from each section.
type Report struct {
	Users     int
	Artists   int
	Albums    int
	Songs     int
	Playlists int
	Listeners int
	Likes     int
}

// Total returns the number of applied entries.
func (r Report) Total() int {
	return r.Users + r.Artists + r.Albums + r.Songs + r.Playlists + r.Listeners + r.Likes
}

// Load reads and parses the catalog script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog script: %w", err)
	}
	return Parse(data)
}

// Parse decodes a catalog script, rejecting keys it does not know.
func Parse(data []byte) (*Script, error) {
	var script Script
	md, err := toml.Decode(string(data), &script)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrInvalidScript, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w: unknown keys %s", shared.ErrInvalidScript, strings.Join(keys, ", "))
	}

	return &script, nil
}

// Apply runs every entry of the script against store in section order.
//
// The returned report counts what was applied before any error.
func (s *Script) Apply(store *catalog.Store, logger *log.Logger) (Report, error) {
	var report Report
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	logger = shared.WithLogger(logger, "component", "seed")

	for i, u := range s.Users {
		if err := u.Validate(); err != nil {
			return report, entryError("users", i, err)
		}
		store.CreateUser(u.Name, u.Mobile)
		report.Users++
	}

	for i, a := range s.Artists {
		if err := a.Validate(); err != nil {
			return report, entryError("artists", i, err)
		}
		store.CreateArtist(a.Name)
		report.Artists++
	}

	for i, a := range s.Albums {
		if err := a.Validate(); err != nil {
			return report, entryError("albums", i, err)
		}
		if _, err := store.CreateAlbum(a.Title, a.Artist); err != nil {
			return report, entryError("albums", i, err)
		}
		report.Albums++
	}

	for i, so := range s.Songs {
		if err := so.Validate(); err != nil {
			return report, entryError("songs", i, err)
		}
		if _, err := store.CreateSong(so.Title, so.Album, so.Length); err != nil {
			return report, entryError("songs", i, err)
		}
		report.Songs++
	}

	for i, p := range s.Playlists {
		if err := p.Validate(); err != nil {
			return report, entryError("playlists", i, err)
		}

		var err error
		if p.ByName() {
			_, err = store.CreatePlaylistOnName(p.Mobile, p.Title, p.Songs)
		} else {
			_, err = store.CreatePlaylistOnLength(p.Mobile, p.Title, p.Length)
		}
		if err != nil {
			return report, entryError("playlists", i, err)
		}
		report.Playlists++
	}

	for i, l := range s.Listeners {
		req := models.MembershipRequest{Mobile: l.Mobile, Title: l.Playlist}
		if err := req.Validate(); err != nil {
			return report, entryError("listeners", i, err)
		}
		if _, err := store.FindPlaylist(req.Mobile, req.Title); err != nil {
			return report, entryError("listeners", i, err)
		}
		report.Listeners++
	}

	for i, l := range s.Likes {
		req := models.MembershipRequest{Mobile: l.Mobile, Title: l.Song}
		if err := req.Validate(); err != nil {
			return report, entryError("likes", i, err)
		}
		if _, err := store.LikeSong(req.Mobile, req.Title); err != nil {
			return report, entryError("likes", i, err)
		}
		report.Likes++
	}

	logger.Info("applied catalog script",
		"users", report.Users,
		"albums", report.Albums,
		"songs", report.Songs,
		"playlists", report.Playlists,
		"likes", report.Likes,
	)
	return report, nil
}

// LoadInto loads the script at path and applies it to store.
func LoadInto(path string, store *catalog.Store, logger *log.Logger) (Report, error) {
	script, err := Load(path)
	if err != nil {
		return Report{}, err
	}
	return script.Apply(store, logger)
}

func entryError(section string, index int, err error) error {
	return fmt.Errorf("%s[%d]: %w", section, index, err)
}
