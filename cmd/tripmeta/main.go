// Package main provides the tripmeta CLI for enriching travel entities
// (activities, dining, accommodation) with place, research, and formatted
// metadata.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tripmeta",
	Short: "Travel entity metadata enrichment",
	Long:  "tripmeta enriches activities, restaurants, and accommodations with place lookup data, web research, and a strictly formatted metadata record.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
