// SPDX-License-Identifier: MIT

// Package source resolves on-disk source files for the lexical front end.
//
// Read failures wrap ErrUnavailable & are never conflated with lexical scan
// errors.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// Source defines an opaque handle to a text origin, backed by a file path.
type Source struct {
	path string
}

// ErrUnavailable tags failures to reach a Source's backing file.
var ErrUnavailable = errors.New("source unavailable")

// New creates a Source for a file path.
func New(path string) *Source { return &Source{path: path} }

// Path obtains the Source's backing file path.
func (s *Source) Path() string { return s.path }

// File opens the backing file for reading; the caller owns the handle.
func (s *Source) File() (*os.File, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return file, nil
}

// BufReader opens the backing file for buffered reading.
//
// The returned closer releases the underlying file once the caller is done
// streaming.
func (s *Source) BufReader() (*bufio.Reader, func() error, error) {
	file, err := s.File()
	if err != nil {
		return nil, nil, err
	}

	return bufio.NewReader(file), file.Close, nil
}

// ReadToString materializes the backing file's entire contents.
func (s *Source) ReadToString() (string, error) {
	contents, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return string(contents), nil
}
