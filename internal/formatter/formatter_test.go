package formatter

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/tunedex/internal/catalog"
	"github.com/desertthunder/tunedex/internal/models"
	"github.com/desertthunder/tunedex/internal/shared"
	th "github.com/desertthunder/tunedex/internal/testing"
)

func sampleCatalog(t *testing.T) models.Catalog {
	t.Helper()

	s := catalog.New()
	if _, err := s.CreateAlbum("Blue", "Joni"); err != nil {
		t.Fatalf("failed to create album: %v", err)
	}
	if _, err := s.CreateSong("River", "Blue", 240); err != nil {
		t.Fatalf("failed to create song: %v", err)
	}
	if _, err := s.CreateSong("Carey, Again", "Blue", 180); err != nil {
		t.Fatalf("failed to create song: %v", err)
	}
	s.CreateUser("Ada", "999")
	if _, err := s.CreatePlaylistOnName("999", "Winter", []string{"River"}); err != nil {
		t.Fatalf("failed to create playlist: %v", err)
	}
	if _, err := s.LikeSong("999", "River"); err != nil {
		t.Fatalf("failed to like song: %v", err)
	}
	return s.Snapshot()
}

func TestParseFormat(t *testing.T) {
	tc := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatText},
		{input: "TEXT", want: FormatText},
		{input: "md", want: FormatMarkdown},
		{input: "markdown", want: FormatMarkdown},
		{input: "csv", want: FormatCSV},
		{input: " json ", want: FormatJSON},
		{input: "yaml", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, shared.ErrInvalidFlag) {
					t.Errorf("expected ErrInvalidFlag, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExporters(t *testing.T) {
	c := sampleCatalog(t)

	t.Run("CatalogToCSV", func(t *testing.T) {
		data, err := CatalogToCSV(c)
		if err != nil {
			t.Fatalf("CatalogToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "ID,Title,Artist,Album,Length,Likes") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "River,Joni,Blue,240,1") {
			t.Errorf("CSV missing River row, got: %s", output)
		}
		if !strings.Contains(output, `"Carey, Again",Joni,Blue,180,0`) {
			t.Errorf("CSV should quote titles with commas, got: %s", output)
		}
		if lines := strings.Split(strings.TrimSpace(output), "\n"); len(lines) != 3 {
			t.Errorf("expected 3 lines, got %d", len(lines))
		}
	})

	t.Run("PlaylistToCSV", func(t *testing.T) {
		data, err := PlaylistToCSV(c, c.Playlists[0])
		if err != nil {
			t.Fatalf("PlaylistToCSV failed: %v", err)
		}
		if lines := strings.Split(strings.TrimSpace(string(data)), "\n"); len(lines) != 2 {
			t.Errorf("expected header and one row, got %d lines", len(lines))
		}
	})

	t.Run("CatalogToMarkdown", func(t *testing.T) {
		data, err := CatalogToMarkdown(c)
		if err != nil {
			t.Fatalf("CatalogToMarkdown failed: %v", err)
		}

		output := string(data)
		for _, want := range []string{
			"# Catalog",
			"### Joni (1 like)",
			"- **Blue**",
			"  - River [4:00] (1 like)",
			"## Playlists",
			"### Winter",
			"1. Joni - River (Blue) [4:00]",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q, got:\n%s", want, output)
			}
		}
	})

	t.Run("PlaylistToMarkdown", func(t *testing.T) {
		data, err := PlaylistToMarkdown(c, c.Playlists[0])
		if err != nil {
			t.Fatalf("PlaylistToMarkdown failed: %v", err)
		}

		output := string(data)
		if !strings.HasPrefix(output, "# Winter\n") {
			t.Errorf("expected title heading, got:\n%s", output)
		}
		if !strings.Contains(output, "**Creator**: Ada (999)") {
			t.Errorf("expected creator line, got:\n%s", output)
		}
	})

	t.Run("CatalogToText", func(t *testing.T) {
		data, err := CatalogToText(c)
		if err != nil {
			t.Fatalf("CatalogToText failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "Artists: 1\n  Joni (1 like)") {
			t.Errorf("text missing artist section, got:\n%s", output)
		}
		if !strings.Contains(output, "  Winter by Ada (1 song, 1 listener)") {
			t.Errorf("text missing playlist line, got:\n%s", output)
		}
	})

	t.Run("PlaylistToText", func(t *testing.T) {
		data, err := PlaylistToText(c, c.Playlists[0])
		if err != nil {
			t.Fatalf("PlaylistToText failed: %v", err)
		}
		if !strings.Contains(string(data), "1. Joni - River") {
			t.Errorf("text missing song line, got:\n%s", data)
		}
	})
}

func TestRender(t *testing.T) {
	c := sampleCatalog(t)

	t.Run("json round trips", func(t *testing.T) {
		data, err := Render(c, FormatJSON)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}

		var decoded models.Catalog
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(decoded.Songs) != 2 || decoded.Playlists[0].Title != "Winter" {
			t.Errorf("unexpected decoded catalog %+v", decoded)
		}
	})

	t.Run("every format renders", func(t *testing.T) {
		for _, f := range Formats {
			data, err := Render(c, f)
			if err != nil {
				t.Errorf("Render(%s) failed: %v", f, err)
			}
			if len(data) == 0 {
				t.Errorf("Render(%s) returned no output", f)
			}
		}
	})

	t.Run("playlist in every format", func(t *testing.T) {
		for _, f := range Formats {
			data, err := RenderPlaylist(c, c.Playlists[0], f)
			if err != nil {
				t.Fatalf("RenderPlaylist(%s) failed: %v", f, err)
			}
			if !strings.Contains(string(data), "River") {
				t.Errorf("RenderPlaylist(%s) missing song: %s", f, data)
			}
		}
		if _, err := RenderPlaylist(c, c.Playlists[0], Format("xml")); !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := Render(c, Format("xml")); !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		data, err := Render(models.Catalog{}, FormatMarkdown)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if strings.Contains(string(data), "## Playlists") {
			t.Error("empty catalog should not render a playlist section")
		}
	})
}

func TestWriteExport(t *testing.T) {
	c := sampleCatalog(t)
	path := filepath.Join(t.TempDir(), "catalog.md")

	if err := WriteExport(c, FormatMarkdown, path); err != nil {
		t.Fatalf("WriteExport failed: %v", err)
	}

	th.AssertFileExists(t, path)
	if content := th.MustReadFile(t, path); !strings.Contains(content, "# Catalog") {
		t.Errorf("unexpected export content:\n%s", content)
	}

	if err := WriteExport(c, FormatCSV, filepath.Join(t.TempDir(), "missing", "out.csv")); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}
