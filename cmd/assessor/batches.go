package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-assessor/internal/db"
	"github.com/jonathan/candidate-assessor/internal/observability"
)

var batchesCmd = &cobra.Command{
	Use:   "batches",
	Short: "List stored assessment batches",
	Long:  "List assessment batches persisted to PostgreSQL, newest first, optionally filtered by position title or status.",
	RunE:  runBatches,
}

var (
	batchesDatabaseURL string
	batchesPosition    string
	batchesStatus      string
	batchesLimit       int
	batchesJSON        bool
)

func init() {
	batchesCmd.Flags().StringVar(&batchesDatabaseURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	batchesCmd.Flags().StringVarP(&batchesPosition, "position", "p", "", "Filter by position title (substring match)")
	batchesCmd.Flags().StringVar(&batchesStatus, "status", "", "Filter by batch status: running, completed, or failed")
	batchesCmd.Flags().IntVar(&batchesLimit, "limit", 0, "Maximum batches to list (default 50)")
	batchesCmd.Flags().BoolVar(&batchesJSON, "json", false, "Print JSON instead of the formatted summary")

	rootCmd.AddCommand(batchesCmd)
}

func runBatches(_ *cobra.Command, _ []string) error {
	databaseURL := batchesDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("--db-url or DATABASE_URL is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	batches, err := database.ListBatches(ctx, db.BatchFilters{
		PositionTitle: batchesPosition,
		Status:        batchesStatus,
		Limit:         batchesLimit,
	})
	if err != nil {
		return err
	}

	if batchesJSON {
		return writeResultJSON(batches, "")
	}

	observability.NewPrinter(os.Stdout).PrintBatches(batches)
	return nil
}
