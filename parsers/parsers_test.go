// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parserTestConfig struct {
	Addr string `toml:"addr" yaml:"addr" json:"addr"`
	Port int    `toml:"port" yaml:"port" json:"port"`
}

// TestParsers_ValidInput verifies that each format parser populates the
// target shape from well-formed input.
func TestParsers_ValidInput(t *testing.T) {
	tests := []struct {
		name   string
		parser Parser
		input  string
	}{
		{"toml", TOML{}, "addr = \":8080\"\nport = 42\n"},
		{"yaml", YAML{}, "addr: \":8080\"\nport: 42\n"},
		{"json", JSON{}, `{"addr": ":8080", "port": 42}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg parserTestConfig
			require.NoError(t, tt.parser.Parse([]byte(tt.input), &cfg))
			assert.Equal(t, ":8080", cfg.Addr)
			assert.Equal(t, 42, cfg.Port)
		})
	}
}

// TestParsers_MalformedInput verifies that malformed documents fail instead
// of silently producing a partial result.
func TestParsers_MalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		parser Parser
		input  string
	}{
		{"toml", TOML{}, "addr = \n"},
		{"yaml", YAML{}, "addr: [unclosed\n"},
		{"json", JSON{}, `{"addr": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg parserTestConfig
			assert.Error(t, tt.parser.Parse([]byte(tt.input), &cfg))
		})
	}
}

// TestParsers_TypeMismatch verifies that a value of the wrong type for the
// target field is rejected by the codec.
func TestParsers_TypeMismatch(t *testing.T) {
	var cfg parserTestConfig
	assert.Error(t, JSON{}.Parse([]byte(`{"port": "not a number"}`), &cfg))
	assert.Error(t, TOML{}.Parse([]byte("port = \"not a number\"\n"), &cfg))
}
