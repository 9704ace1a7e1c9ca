// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collectors

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-conflayer/value"
)

// Flags collects a Value snapshot from command-line flags. The caller binds
// flags to the fields of an instance (fs.StringVar(&cfg.Addr, ...)); the
// collector parses the arguments at collect time and snapshots the instance.
type Flags[T any] struct {
	fs   *pflag.FlagSet
	v    *T
	args []string
}

// FromFlags returns a collector over fs and the bound instance v. When args
// is nil the process arguments are parsed; pass explicit args for tests.
// An already-parsed FlagSet is snapshotted without re-parsing.
func FromFlags[T any](fs *pflag.FlagSet, v *T, args []string) *Flags[T] {
	return &Flags[T]{fs: fs, v: v, args: args}
}

// Collect parses the flag set if needed and snapshots the bound instance.
func (f *Flags[T]) Collect() (value.Value, error) {
	if !f.fs.Parsed() {
		args := f.args
		if args == nil {
			args = os.Args[1:]
		}
		if err := f.fs.Parse(args); err != nil {
			return nil, fmt.Errorf("error parsing flags: %w", err)
		}
	}
	return value.Encode(*f.v)
}
