// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package collectors provides the source adapters a
// [github.com/MKhiriev/go-conflayer.Builder] layers together.
//
// Every collector produces one complete Value snapshot per Collect call and
// is deterministic for a fixed environment/filesystem state:
//
//   - [FromEnv] — scan environment variables into T (caarlos0/env tags);
//   - [FromFlags] — snapshot a T bound to a pflag.FlagSet;
//   - [FromFile] — read a file at collect time and parse it into T;
//   - [FromReader] — drain an io.Reader and parse it into T;
//   - [FromString] — parse an inline literal into T;
//   - [FromSelf] — snapshot a programmatic T instance.
//
// The bytes-based collectors are typed through T on purpose: parsing into
// the target struct first and snapshotting the struct afterwards means all
// layers emit identical field names, whatever naming the source format uses.
package collectors
