// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the conflayer command line tool, a small
// inspection aid for layered configuration files.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "conflayer",
	Short: "Inspect layered configuration merges",
	Long:  "conflayer merges configuration files layer by layer and prints the result, for debugging precedence issues.",
}

// Run executes the root command and returns a process exit code.
func Run() int {
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print conflayer version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "conflayer version %s\n", version)
	},
}
