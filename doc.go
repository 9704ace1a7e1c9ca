// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package conflayer assembles a single typed configuration value by layering
// snapshots from multiple ordered sources and merging them with a
// default-aware structural merge.
//
// Sources are collected strictly in the order they were added, and that
// order is the precedence policy: a later layer overrides an earlier one,
// but only for fields it actually set. "Actually set" is approximated by
// comparing each field against the default snapshot, so a later layer that
// leaves a field at its zero value never clobbers an earlier layer's
// explicit setting.
//
// A minimal build:
//
//	type Config struct {
//		Addr    string `env:"ADDR" toml:"addr"`
//		Verbose bool   `env:"VERBOSE" toml:"verbose"`
//	}
//
//	cfg, err := conflayer.New[Config]().
//		Collect(collectors.FromEnv[Config]()).
//		Collect(collectors.FromFile[Config](parsers.TOML{}, "config.toml")).
//		Build()
//
// Per-layer failures (an unreadable file, an intermediate state that does
// not yet decode into Config) are recovered: the build succeeds as long as
// at least one accumulation step produces a decodable value. Only total
// failure is surfaced, as [ErrNoValidValue].
package conflayer
