// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MustWriteFile writes content to name inside dir and returns the full path.
func MustWriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
	return path
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// CatalogScript is a small catalog script shared by package tests.
//
// Artist A1 owns Alb1 (S1 100s, S2 200s), artist B1 owns Alb2 (S3 100s). User 999 creates P1 from
// length 100 and user 111 joins it. Both users like S3 and 999 likes S1 twice.
const CatalogScript = `
[[users]]
name = "Ada"
mobile = "999"

[[users]]
name = "Grace"
mobile = "111"

[[artists]]
name = "Solo"

[[albums]]
title = "Alb1"
artist = "A1"

[[albums]]
title = "Alb2"
artist = "B1"

[[songs]]
title = "S1"
album = "Alb1"
length = 100

[[songs]]
title = "S2"
album = "Alb1"
length = 200

[[songs]]
title = "S3"
album = "Alb2"
length = 100

[[playlists]]
mobile = "999"
title = "P1"
length = 100

[[playlists]]
mobile = "111"
title = "Mix"
songs = ["S2", "S1"]

[[listeners]]
mobile = "111"
playlist = "P1"

[[likes]]
mobile = "999"
song = "S1"

[[likes]]
mobile = "999"
song = "S1"

[[likes]]
mobile = "999"
song = "S3"

[[likes]]
mobile = "111"
song = "S3"
`
