package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ameya/tripmeta/internal/export"
)

var batchCommand = &cobra.Command{
	Use:   "batch <category>",
	Short: "Enrich a CSV of entities and write a flattened results CSV",
	Long: `Reads a CSV with the category's name column ("activity name",
"restaurant name", or "accommodation name") and a "city" column, enriches
each row in order, and writes one flattened output row per input row.
Failed rows are written empty, carrying only the input name and city.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatchCmd,
}

var (
	batchConfigPath  string
	batchInput       string
	batchOutput      string
	batchDatabaseURL string
)

func init() {
	batchCommand.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	batchCommand.Flags().StringVarP(&batchInput, "input", "i", "", "Path to input CSV (required)")
	batchCommand.Flags().StringVarP(&batchOutput, "output", "o", "", "Path to output CSV (required)")
	batchCommand.Flags().StringVar(&batchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	_ = batchCommand.MarkFlagRequired("input")
	_ = batchCommand.MarkFlagRequired("output")

	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	category, err := parseCategory(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, batchConfigPath, batchDatabaseURL)
	if err != nil {
		return err
	}

	in, err := os.Open(batchInput)
	if err != nil {
		return fmt.Errorf("failed to open input CSV: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(batchOutput)
	if err != nil {
		return fmt.Errorf("failed to create output CSV: %w", err)
	}
	defer func() { _ = out.Close() }()

	p, cleanup := buildPipeline(ctx, cfg)
	defer cleanup()

	progress := func(result export.RowResult) {
		status := "ok"
		if result.Err != nil {
			status = fmt.Sprintf("failed: %v", result.Err)
		}
		fmt.Fprintf(os.Stderr, "Completed %d/%d: %s, %s (%s)\n",
			result.Row, result.Total, result.Name, result.City, status)
	}

	if err := export.Run(ctx, p, category, in, out, progress); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Results written to %s\n", batchOutput)
	return nil
}
