// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collectors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-conflayer/parsers"
	"github.com/MKhiriev/go-conflayer/value"
)

// File collects a Value snapshot by reading a file and parsing it into T
// with the given format parser. The file is opened lazily, at collect time,
// so a path that does not exist yet when the builder is assembled is only an
// error if it is still missing when the build runs — and even then a
// recoverable, per-layer one.
type File[T any] struct {
	path   string
	parser parsers.Parser
}

// FromFile returns a collector that reads path with parser p at collect
// time.
func FromFile[T any](p parsers.Parser, path string) *File[T] {
	return &File[T]{path: path, parser: p}
}

// Collect reads the file, parses it into a fresh T and snapshots it.
func (f *File[T]) Collect() (value.Value, error) {
	bs, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return parseAndEncode[T](f.parser, bs)
}

// Reader collects a Value snapshot by draining an io.Reader and parsing the
// bytes into T.
type Reader[T any] struct {
	r      io.Reader
	parser parsers.Parser
}

// FromReader returns a collector that drains r with parser p. The reader is
// consumed on the first Collect call.
func FromReader[T any](p parsers.Parser, r io.Reader) *Reader[T] {
	return &Reader[T]{r: r, parser: p}
}

// Collect drains the reader, parses the bytes into a fresh T and snapshots
// it.
func (c *Reader[T]) Collect() (value.Value, error) {
	bs, err := io.ReadAll(c.r)
	if err != nil {
		return nil, fmt.Errorf("error reading config source: %w", err)
	}
	return parseAndEncode[T](c.parser, bs)
}

// FromString returns a collector that parses an inline literal with parser
// p. Handy for hard-coded fallback layers and tests.
func FromString[T any](p parsers.Parser, s string) *Reader[T] {
	return FromReader[T](p, strings.NewReader(s))
}

func parseAndEncode[T any](p parsers.Parser, bs []byte) (value.Value, error) {
	var t T
	if err := p.Parse(bs, &t); err != nil {
		return nil, err
	}
	return value.Encode(t)
}
