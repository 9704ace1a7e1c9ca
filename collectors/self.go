// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collectors

import (
	"github.com/MKhiriev/go-conflayer/value"
)

// Self collects a Value snapshot of a programmatic T instance. It is the
// way to feed hand-constructed defaults or overrides into the layer order.
type Self[T any] struct {
	v T
}

// FromSelf returns a collector that snapshots v on every Collect call.
func FromSelf[T any](v T) *Self[T] {
	return &Self[T]{v: v}
}

// Collect encodes the held instance.
func (s *Self[T]) Collect() (value.Value, error) {
	return value.Encode(s.v)
}
