package shared

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	tu "github.com/desertthunder/tunedex/internal/testing"
)

func TestFormatDuration(t *testing.T) {
	tc := []struct {
		name    string
		seconds int
		want    string
	}{
		{name: "zero", seconds: 0, want: "0:00"},
		{name: "under a minute", seconds: 7, want: "0:07"},
		{name: "minutes", seconds: 200, want: "3:20"},
		{name: "over an hour", seconds: 3725, want: "62:05"},
		{name: "negative clamps", seconds: -4, want: "0:00"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDuration(tt.seconds)
			if got != tt.want {
				t.Errorf("FormatDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPluralize(t *testing.T) {
	if got := Pluralize(1, "song"); got != "1 song" {
		t.Errorf("Pluralize(1) = %q", got)
	}
	if got := Pluralize(0, "song"); got != "0 songs" {
		t.Errorf("Pluralize(0) = %q", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	tc := []struct {
		name    string
		input   string
		want    log.Level
		wantErr bool
	}{
		{name: "empty defaults to info", input: "", want: log.InfoLevel},
		{name: "debug", input: "debug", want: log.DebugLevel},
		{name: "mixed case", input: " WARN ", want: log.WarnLevel},
		{name: "unknown", input: "chatty", want: log.InfoLevel, wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLogLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	t.Run("WithLogger adds fields", func(t *testing.T) {
		var buf bytes.Buffer
		logger := WithLogger(NewLogger(&buf), "component", "catalog")
		logger.Info("created artist")

		out := buf.String()
		if !strings.Contains(out, "component=catalog") {
			t.Errorf("expected component field in output, got %q", out)
		}
	})

	t.Run("SetLogLevel filters", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		SetLogLevel(logger, log.WarnLevel)
		logger.Info("hidden")

		if buf.Len() != 0 {
			t.Errorf("expected no output below warn level, got %q", buf.String())
		}
	})

	t.Run("NewFileLogger creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "tunedex.log")
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("failed to create file logger: %v", err)
		}
		logger.Error("written to file")

		tu.AssertFileExists(t, path)
		if content := tu.MustReadFile(t, path); !strings.Contains(content, "written to file") {
			t.Errorf("expected log line in file, got %q", content)
		}
	})
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == "" || a == b {
		t.Errorf("expected distinct non-empty IDs, got %q and %q", a, b)
	}
}
