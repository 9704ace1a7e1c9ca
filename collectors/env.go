// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collectors

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-conflayer/value"
)

// Env collects a Value snapshot from the process environment by parsing it
// into T with the caarlos0/env library (struct fields are mapped via their
// `env` and `envPrefix` tags) and encoding the result.
type Env[T any] struct {
	opts env.Options
}

// FromEnv returns a collector that scans environment variables into T.
// At most one env.Options may be given (e.g. to set a variable prefix);
// it is passed through to env.ParseWithOptions.
func FromEnv[T any](opts ...env.Options) *Env[T] {
	e := &Env[T]{}
	if len(opts) > 0 {
		e.opts = opts[0]
	}
	return e
}

// Collect parses the current environment into a fresh T and snapshots it.
func (e *Env[T]) Collect() (value.Value, error) {
	var t T
	if err := env.ParseWithOptions(&t, e.opts); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return value.Encode(t)
}
