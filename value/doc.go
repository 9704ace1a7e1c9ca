// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package value defines the generic, self-describing representation used to
// merge configuration data from heterogeneous sources.
//
// A [Value] is a closed tagged union with one variant per shape a
// serializable Go type can take: scalars, optionals, sequences, tuples, maps
// and named struct-like records, plus the enum-variant shapes produced by
// custom [Marshaler] implementations.
//
// The package provides three merge operations over Values:
//   - [Merge] — plain right-biased two-way merge;
//   - [MergeWithDefault] — normalizes a raw source snapshot against a
//     default snapshot so it shares the default's nesting shape;
//   - [Merge3] — the default-aware three-way merge that implements the
//     layering precedence policy.
//
// The conversion boundary between typed Go values and Values is implemented
// once, with reflection, by [Encode] and [Decode].
package value
