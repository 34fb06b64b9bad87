package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/tunedex/internal/models"
	"github.com/desertthunder/tunedex/internal/shared"
)

var (
	_ list.Item = artistItem{}
	_ list.Item = songItem{}
	_ list.Item = playlistItem{}
)

// artistItem wraps [models.Artist] to implement [list.Item].
type artistItem struct {
	artist models.Artist
	albums int
}

func (i artistItem) FilterValue() string { return i.artist.Name }
func (i artistItem) Title() string       { return i.artist.Name }
func (i artistItem) Description() string {
	return fmt.Sprintf("%s • %s", shared.Pluralize(i.artist.Likes, "like"), shared.Pluralize(i.albums, "album"))
}

// songItem wraps [models.Song] with its resolved artist and album names.
type songItem struct {
	song   models.Song
	artist string
	album  string
}

func (i songItem) FilterValue() string { return i.song.Title }
func (i songItem) Title() string       { return i.song.Title }
func (i songItem) Description() string {
	parts := []string{}
	if i.artist != "" {
		parts = append(parts, i.artist)
	}
	if i.album != "" {
		parts = append(parts, i.album)
	}
	parts = append(parts, shared.FormatDuration(i.song.Length), shared.Pluralize(i.song.Likes, "like"))
	return strings.Join(parts, " • ")
}

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Title }
func (i playlistItem) Title() string       { return i.playlist.Title }
func (i playlistItem) Description() string {
	return fmt.Sprintf("by %s • %s • %s",
		i.playlist.Creator.Name,
		shared.Pluralize(len(i.playlist.Songs), "song"),
		shared.Pluralize(len(i.playlist.Listeners), "listener"),
	)
}

func newSongItem(c models.Catalog, s models.Song) songItem {
	return songItem{song: s, artist: c.SongArtist(s), album: c.AlbumTitle(s.AlbumID)}
}
