package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ameya/tripmeta/internal/pipeline"
)

var enrichCommand = &cobra.Command{
	Use:   "enrich <category>",
	Short: "Enrich a single entity and print its metadata record as JSON",
	Long: `Runs the full enrichment chain for one entity: place lookup, web research,
and formatting. Category is one of: activity, dining, accommodation.

Configuration is read from the environment (and .env); a JSON config file
can be supplied with --config, and flags override both.`,
	Args: cobra.ExactArgs(1),
	RunE: runEnrichCmd,
}

var (
	enrichConfigPath  string
	enrichName        string
	enrichCity        string
	enrichDatabaseURL string
	enrichVerbose     bool
)

func init() {
	enrichCommand.Flags().StringVar(&enrichConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	enrichCommand.Flags().StringVarP(&enrichName, "name", "n", "", "Entity name (required)")
	enrichCommand.Flags().StringVarP(&enrichCity, "city", "c", "", "City for the lookup")
	enrichCommand.Flags().StringVar(&enrichDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	enrichCommand.Flags().BoolVarP(&enrichVerbose, "verbose", "v", false, "Print per-stage progress")
	_ = enrichCommand.MarkFlagRequired("name")

	rootCmd.AddCommand(enrichCommand)
}

func runEnrichCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	category, err := parseCategory(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, enrichConfigPath, enrichDatabaseURL)
	if err != nil {
		return err
	}

	p, cleanup := buildPipeline(ctx, cfg)
	defer cleanup()

	if enrichVerbose {
		p.SetProgress(func(event pipeline.ProgressEvent) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Step, event.Message)
		})
	}

	record, err := p.Enrich(ctx, category, enrichName, enrichCity)
	if err != nil {
		var notFound *pipeline.NotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("no metadata found for %q in %q", notFound.Name, notFound.City)
		}
		return err
	}

	if err := pipeline.Validate(category, record); err != nil {
		return fmt.Errorf("enriched record failed validation: %w", err)
	}

	output, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
