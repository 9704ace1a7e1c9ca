// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package parsers provides format parsers for the bytes-based collectors.
//
// A [Parser] turns raw bytes into a typed target; collectors then snapshot
// that target into a generic Value so every layer shares one field-naming
// scheme regardless of the on-disk format.
package parsers

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Parser parses raw bytes into the target shape. Implementations must fail
// on malformed input or invalid text encoding and must not partially
// populate target on failure beyond what the underlying codec guarantees.
type Parser interface {
	Parse(bs []byte, target any) error
}

// TOML parses TOML documents.
type TOML struct{}

func (TOML) Parse(bs []byte, target any) error {
	if err := toml.Unmarshal(bs, target); err != nil {
		return fmt.Errorf("error parsing toml: %w", err)
	}
	return nil
}

// YAML parses YAML documents.
type YAML struct{}

func (YAML) Parse(bs []byte, target any) error {
	if err := yaml.Unmarshal(bs, target); err != nil {
		return fmt.Errorf("error parsing yaml: %w", err)
	}
	return nil
}

// JSON parses JSON documents.
type JSON struct{}

func (JSON) Parse(bs []byte, target any) error {
	if err := json.Unmarshal(bs, target); err != nil {
		return fmt.Errorf("error parsing json: %w", err)
	}
	return nil
}
