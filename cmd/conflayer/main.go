// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Conflayer is a small CLI for inspecting layered configuration merges.
//
// Usage:
//
//	conflayer merge base.toml override.yaml local.json   # later files win
//	conflayer merge -o yaml base.toml override.toml
package main

import (
	"os"

	"github.com/MKhiriev/go-conflayer/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
