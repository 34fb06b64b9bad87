// package formatter renders catalog snapshots and playlists as plain text, Markdown, CSV and JSON
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/tunedex/internal/models"
	"github.com/desertthunder/tunedex/internal/shared"
)

// Format names an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatText, FormatMarkdown, FormatCSV, FormatJSON}

// ParseFormat resolves a user-supplied format name. "md" is accepted for Markdown.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, name)
}

// Render renders the whole catalog in the given format.
func Render(c models.Catalog, f Format) ([]byte, error) {
	switch f {
	case FormatText:
		return CatalogToText(c)
	case FormatMarkdown:
		return CatalogToMarkdown(c)
	case FormatCSV:
		return CatalogToCSV(c)
	case FormatJSON:
		return shared.MarshalJSON(c, true)
	}
	return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, f)
}

// RenderPlaylist renders a single playlist in the given format. c resolves artist and album names.
func RenderPlaylist(c models.Catalog, p models.Playlist, f Format) ([]byte, error) {
	switch f {
	case FormatText:
		return PlaylistToText(c, p)
	case FormatMarkdown:
		return PlaylistToMarkdown(c, p)
	case FormatCSV:
		return PlaylistToCSV(c, p)
	case FormatJSON:
		return shared.MarshalJSON(p, true)
	}
	return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, f)
}

// CatalogToCSV converts the catalog's songs to CSV with columns: ID, Title, Artist, Album, Length, Likes
func CatalogToCSV(c models.Catalog) ([]byte, error) {
	return songsToCSV(c, c.Songs)
}

// PlaylistToCSV converts a playlist's songs to CSV with the same columns as [CatalogToCSV].
//
// c is used to resolve artist and album names.
func PlaylistToCSV(c models.Catalog, p models.Playlist) ([]byte, error) {
	return songsToCSV(c, p.Songs)
}

func songsToCSV(c models.Catalog, songs []models.Song) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Album", "Length", "Likes"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, song := range songs {
		record := []string{
			song.ID,
			song.Title,
			c.SongArtist(song),
			c.AlbumTitle(song.AlbumID),
			strconv.Itoa(song.Length),
			strconv.Itoa(song.Likes),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// CatalogToMarkdown renders artists with their albums and songs, then playlists.
func CatalogToMarkdown(c models.Catalog) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Catalog\n\n")
	buf.WriteString(fmt.Sprintf("**Artists**: %d\n", len(c.Artists)))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n", len(c.Songs)))
	buf.WriteString(fmt.Sprintf("**Users**: %d\n\n", len(c.Users)))

	buf.WriteString("## Artists\n\n")
	for _, artist := range c.Artists {
		buf.WriteString(fmt.Sprintf("### %s (%s)\n\n", artist.Name, shared.Pluralize(artist.Likes, "like")))
		for _, album := range c.Albums {
			if album.ArtistID != artist.ID {
				continue
			}
			buf.WriteString(fmt.Sprintf("- **%s**\n", album.Title))
			for _, song := range c.Songs {
				if song.AlbumID == album.ID {
					buf.WriteString(fmt.Sprintf("  - %s [%s] (%s)\n", song.Title, shared.FormatDuration(song.Length), shared.Pluralize(song.Likes, "like")))
				}
			}
		}
		buf.WriteString("\n")
	}

	if len(c.Playlists) > 0 {
		buf.WriteString("## Playlists\n\n")
		for _, p := range c.Playlists {
			md, err := PlaylistToMarkdown(c, p)
			if err != nil {
				return nil, err
			}
			buf.Write(bytes.Replace(md, []byte("# "), []byte("### "), 1))
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}

// PlaylistToMarkdown renders a playlist with its creator, listeners and numbered songs.
func PlaylistToMarkdown(c models.Catalog, p models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", p.Title))
	buf.WriteString(fmt.Sprintf("**Creator**: %s (%s)\n", p.Creator.Name, p.Creator.Mobile))
	buf.WriteString(fmt.Sprintf("**Listeners**: %d\n", len(p.Listeners)))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(p.Songs)))

	for i, song := range p.Songs {
		albumPart := ""
		if album := c.AlbumTitle(song.AlbumID); album != "" {
			albumPart = fmt.Sprintf(" (%s)", album)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s [%s]\n", i+1, c.SongArtist(song), song.Title, albumPart, shared.FormatDuration(song.Length)))
	}

	return buf.Bytes(), nil
}

// CatalogToText renders a compact plain-text summary of the catalog.
func CatalogToText(c models.Catalog) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Artists: %d\n", len(c.Artists)))
	for _, artist := range c.Artists {
		buf.WriteString(fmt.Sprintf("  %s (%s)\n", artist.Name, shared.Pluralize(artist.Likes, "like")))
	}

	buf.WriteString(fmt.Sprintf("Songs: %d\n", len(c.Songs)))
	for _, song := range c.Songs {
		buf.WriteString(fmt.Sprintf("  %s - %s [%s] (%s)\n", c.SongArtist(song), song.Title, shared.FormatDuration(song.Length), shared.Pluralize(song.Likes, "like")))
	}

	buf.WriteString(fmt.Sprintf("Playlists: %d\n", len(c.Playlists)))
	for _, p := range c.Playlists {
		buf.WriteString(fmt.Sprintf("  %s by %s (%s, %s)\n", p.Title, p.Creator.Name, shared.Pluralize(len(p.Songs), "song"), shared.Pluralize(len(p.Listeners), "listener")))
	}

	return buf.Bytes(), nil
}

// PlaylistToText converts a playlist to plain text format
func PlaylistToText(c models.Catalog, p models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", p.Title))
	buf.WriteString(fmt.Sprintf("Creator: %s\n", p.Creator.Name))
	buf.WriteString(fmt.Sprintf("Songs: %d\n\n", len(p.Songs)))

	for i, song := range p.Songs {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, c.SongArtist(song), song.Title))
	}

	return buf.Bytes(), nil
}

// WriteExport renders the catalog in the given format and writes it to path.
func WriteExport(c models.Catalog, f Format, path string) error {
	data, err := Render(c, f)
	if err != nil {
		return fmt.Errorf("failed to render catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	return nil
}
