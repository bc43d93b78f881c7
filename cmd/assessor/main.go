// Package main provides the entry point for the candidate assessment CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "assessor",
	Short:   "Candidate assessment engine",
	Long:    "Assessor scores job candidates against a posting by combining rule-based Personal Data Sheet scoring with embedding-based semantic relevance, and produces a categorical hiring recommendation.",
	Version: version,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
