// Package input opens the byte source for a dump: a file on disk, or
// stdin when no path (or "-") is given.
package input

import (
	"fmt"
	"io"
	"os"
)

// Source is an opened input stream plus the name shown to the user.
type Source struct {
	Name   string
	reader io.Reader
	closer io.Closer
}

// Open returns a source for path. An empty path or "-" selects stdin.
func Open(path string) (*Source, error) {
	if path == "" || path == "-" {
		return &Source{Name: "-", reader: os.Stdin}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Source{Name: path, reader: f, closer: f}, nil
}

// Reader returns the stream, capped at limit bytes when limit >= 0.
func (s *Source) Reader(limit int64) io.Reader {
	if limit < 0 {
		return s.reader
	}
	return io.LimitReader(s.reader, limit)
}

// Close releases the underlying file, if any.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
