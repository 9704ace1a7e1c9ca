// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-conflayer/parsers"
	"github.com/MKhiriev/go-conflayer/value"
)

var mergeOutput string

var mergeCmd = &cobra.Command{
	Use:   "merge <file>...",
	Short: "Merge config files in layer order and print the result",
	Long: `Merge parses each file (format chosen by extension: .toml, .yaml/.yml,
.json), layers them left to right with the right-biased structural merge, and
prints the merged document. The last file named has the highest precedence.

Without a schema there is no default reference, so merge uses the plain
two-way merge rather than the default-aware three-way merge the library
applies to typed builds.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "json", "output format: json or yaml")
}

func runMerge(cmd *cobra.Command, args []string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var merged value.Value = value.Unit{}
	loaded := 0
	for _, path := range args {
		layer, err := loadLayer(path)
		if err != nil {
			log.Warn().Str("file", path).Err(err).Msg("layer skipped")
			continue
		}
		merged = value.Merge(merged, layer)
		loaded++
	}
	if loaded == 0 {
		return fmt.Errorf("no layer could be loaded")
	}

	var out map[string]any
	if err := value.Decode(merged, &out); err != nil {
		return fmt.Errorf("error rendering merged value: %w", err)
	}

	switch mergeOutput {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		return yaml.NewEncoder(os.Stdout).Encode(out)
	default:
		return fmt.Errorf("unknown output format %q", mergeOutput)
	}
}

func loadLayer(path string) (value.Value, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	var doc map[string]any
	if err := parser.Parse(bs, &doc); err != nil {
		return nil, err
	}
	return value.Encode(doc)
}

func parserFor(path string) (parsers.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return parsers.TOML{}, nil
	case ".yaml", ".yml":
		return parsers.YAML{}, nil
	case ".json":
		return parsers.JSON{}, nil
	default:
		return nil, fmt.Errorf("no parser for file extension %q", filepath.Ext(path))
	}
}
