package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ameya/tripmeta/internal/config"
	"github.com/ameya/tripmeta/internal/pipeline"
	"github.com/ameya/tripmeta/internal/schema"
	"github.com/ameya/tripmeta/internal/store"
)

// loadConfig builds the effective configuration: environment first, then an
// optional JSON config file, then explicit flag overrides. Flags win only
// when set, config-file values win over the environment.
func loadConfig(cmd *cobra.Command, configPath, databaseURL string) (*config.Config, error) {
	cfg := config.FromEnv()

	if configPath != "" {
		fileCfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		mergeConfig(cfg, fileCfg)
	}

	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = databaseURL
	}

	cfg.MergeWithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeConfig copies non-empty file values over the environment baseline.
func mergeConfig(dst, src *config.Config) {
	if src.PlacesAPIKey != "" {
		dst.PlacesAPIKey = src.PlacesAPIKey
	}
	if src.PlacesEndpoint != "" {
		dst.PlacesEndpoint = src.PlacesEndpoint
	}
	if src.ResearchAPIKey != "" {
		dst.ResearchAPIKey = src.ResearchAPIKey
	}
	if src.ResearchEndpoint != "" {
		dst.ResearchEndpoint = src.ResearchEndpoint
	}
	if src.ResearchModel != "" {
		dst.ResearchModel = src.ResearchModel
	}
	if src.AzureEndpoint != "" {
		dst.AzureEndpoint = src.AzureEndpoint
	}
	if src.AzureAPIKey != "" {
		dst.AzureAPIKey = src.AzureAPIKey
	}
	if src.AzureDeployment != "" {
		dst.AzureDeployment = src.AzureDeployment
	}
	if src.AzureAPIVersion != "" {
		dst.AzureAPIVersion = src.AzureAPIVersion
	}
	if src.DatabaseURL != "" {
		dst.DatabaseURL = src.DatabaseURL
	}
}

// buildPipeline wires a pipeline from config, attaching persistence when a
// database URL is configured. Connection failure degrades to a warning.
func buildPipeline(ctx context.Context, cfg *config.Config) (*pipeline.Pipeline, func()) {
	p := pipeline.New(cfg)
	cleanup := func() {}

	if cfg.DatabaseURL != "" {
		st, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to connect to database: %v\n", err)
			fmt.Fprintf(os.Stderr, "Continuing without persistence...\n")
		} else {
			p.SetStore(st)
			cleanup = st.Close
		}
	}
	return p, cleanup
}

// parseCategory validates the category positional argument.
func parseCategory(arg string) (schema.Category, error) {
	cat := schema.Category(arg)
	if !cat.Valid() {
		return "", fmt.Errorf("unknown category %q (expected one of: activity, dining, accommodation)", arg)
	}
	return cat, nil
}
