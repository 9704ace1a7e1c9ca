// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package conflayer

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-conflayer/value"
)

// Collector is a source adapter: it produces one complete Value snapshot
// per build attempt, or a failure. Implementations must be deterministic for
// a fixed environment/filesystem state and free of side effects visible to
// other collectors. The collectors package provides the standard set.
type Collector interface {
	Collect() (value.Value, error)
}

// Builder holds an ordered sequence of collectors and an optional default
// instance, and produces a T by layering the collected snapshots. The zero
// Builder from [New] is ready to use; all With/Collect methods return the
// receiver for chaining.
//
// A Builder is not safe for concurrent use. Collection is sequential and
// the layer order is load-bearing: later collectors take precedence.
type Builder[T any] struct {
	collectors []Collector
	defaultVal *T
	observer   func(field string)
	logger     zerolog.Logger
}

// New returns an empty Builder for target type T with a no-op logger.
func New[T any]() *Builder[T] {
	return &Builder[T]{logger: zerolog.Nop()}
}

// Collect appends c to the layer order. Later collectors override earlier
// ones for fields they actually set.
func (b *Builder[T]) Collect(c Collector) *Builder[T] {
	b.collectors = append(b.collectors, c)
	return b
}

// WithDefault sets the default instance whose snapshot anchors presence
// detection. Without it the zero value of T is used.
func (b *Builder[T]) WithDefault(v T) *Builder[T] {
	b.defaultVal = &v
	return b
}

// WithLogger sets the logger used to report recovered per-layer failures.
func (b *Builder[T]) WithLogger(l zerolog.Logger) *Builder[T] {
	b.logger = l
	return b
}

// WithUnknownFieldObserver registers fn to be called during each decode
// attempt, once per field present in the accumulated value but absent from
// T's schema. Diagnostics only; it never affects the build result.
func (b *Builder[T]) WithUnknownFieldObserver(fn func(field string)) *Builder[T] {
	b.observer = fn
	return b
}

// Build runs the layering loop: for each collector in order, collect a raw
// snapshot, normalize it against the default snapshot, fold it into the
// accumulated value with the three-way merge, and attempt to decode the
// accumulated value into T.
//
// Collection and decode failures are recovered per layer: the loop logs
// them and moves on, and a decode that fails at one layer can still be fixed
// by a later one. The result is the last successfully decoded T. If no layer
// ever decoded, Build returns an error wrapping [ErrNoValidValue] together
// with every recovered per-layer error.
//
// An internal consistency failure in the merge (a collected key the default
// snapshot lacks, see [value.ErrDefaultMissingKey]) aborts the build
// immediately: no precedence decision is possible without a default
// reference.
func (b *Builder[T]) Build() (T, error) {
	var zero T

	seed := zero
	if b.defaultVal != nil {
		seed = *b.defaultVal
	}
	def, err := value.Encode(seed)
	if err != nil {
		return zero, fmt.Errorf("error encoding default instance: %w", err)
	}

	var decodeOpts []value.DecodeOption
	if b.observer != nil {
		decodeOpts = append(decodeOpts, value.WithUnknownFieldObserver(b.observer))
	}

	accumulated := def
	var result *T
	var layerErrs []error

	for i, c := range b.collectors {
		raw, err := c.Collect()
		if err != nil {
			b.logger.Warn().Int("layer", i).Err(err).Msg("collect failed, layer skipped")
			layerErrs = append(layerErrs, fmt.Errorf("layer %d: %w", i, err))
			continue
		}

		normalized := value.MergeWithDefault(def, raw)
		accumulated, err = value.Merge3(def, accumulated, normalized)
		if err != nil {
			return zero, fmt.Errorf("error merging layer %d: %w", i, err)
		}

		var t T
		if err := value.Decode(accumulated, &t, decodeOpts...); err != nil {
			b.logger.Warn().Int("layer", i).Err(err).Msg("accumulated value not yet decodable")
			layerErrs = append(layerErrs, fmt.Errorf("layer %d: %w", i, err))
			continue
		}
		result = &t
	}

	if result == nil {
		return zero, errors.Join(append([]error{ErrNoValidValue}, layerErrs...)...)
	}
	return *result, nil
}
