package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-assessor/internal/assessment"
	"github.com/jonathan/candidate-assessor/internal/config"
	"github.com/jonathan/candidate-assessor/internal/db"
	"github.com/jonathan/candidate-assessor/internal/observability"
	"github.com/jonathan/candidate-assessor/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Assess a directory of candidates against one job posting",
	Long:  "Assess every candidate record JSON file in a directory against the same job posting, print a ranking, and optionally persist the results.",
	RunE:  runBatch,
}

var (
	batchDir         string
	batchJobFile     string
	batchConfigFile  string
	batchOutputFile  string
	batchAPIKey      string
	batchCachePath   string
	batchRedisURL    string
	batchDatabaseURL string
	batchFormat      string
	batchStrict      bool
	batchVerbose     bool
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory of candidate record JSON files (required)")
	batchCmd.Flags().StringVarP(&batchJobFile, "job", "j", "", "Path to job posting JSON file (required)")
	batchCmd.Flags().StringVar(&batchConfigFile, "config", "", "Path to JSON config file with default flag values")
	batchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout ranking)")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	batchCmd.Flags().StringVar(&batchCachePath, "cache", "", "Embedding cache file path")
	batchCmd.Flags().StringVar(&batchRedisURL, "redis-url", "", "Redis URL for a shared embedding cache")
	batchCmd.Flags().StringVar(&batchDatabaseURL, "db-url", "", "PostgreSQL URL for persisting results (overrides DATABASE_URL env var)")
	batchCmd.Flags().StringVar(&batchFormat, "format", "text", "Output format: text or json")
	batchCmd.Flags().BoolVar(&batchStrict, "strict", false, "Apply compliance penalties to scores")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed debug information")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Number of candidates scored in parallel")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig(batchConfigFile, config.Config{
		Batch:        batchDir,
		Job:          batchJobFile,
		APIKey:       batchAPIKey,
		CachePath:    batchCachePath,
		RedisURL:     batchRedisURL,
		DatabaseURL:  batchDatabaseURL,
		OutputFormat: batchFormat,
		Strict:       batchStrict,
		Verbose:      batchVerbose,
		Concurrency:  batchConcurrency,
	})
	if err != nil {
		return err
	}
	if cfg.Batch == "" || cfg.Job == "" {
		return fmt.Errorf("both --dir and --job are required")
	}

	logger := newLogger(cfg.Verbose)
	ctx := context.Background()

	job, err := loadJob(cfg.Job)
	if err != nil {
		return err
	}
	job.Strict = job.Strict || cfg.Strict

	candidates, err := loadCandidateDir(cfg.Batch, logger)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no candidate JSON files found in %s", cfg.Batch)
	}

	scorer, closeScorer, err := buildScorer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeScorer()

	engine := assessment.NewEngine(scorer, assessment.WithLogger(logger))
	results := engine.AssessBatch(ctx, candidates, job, cfg.Concurrency)

	if err := persistResults(ctx, cfg, job, results, logger); err != nil {
		return err
	}

	if cfg.OutputFormat == "json" || batchOutputFile != "" {
		if err := writeResultJSON(results, batchOutputFile); err != nil {
			return err
		}
		if batchOutputFile != "" {
			fmt.Fprintf(os.Stdout, "Output: %s\n", batchOutputFile)
		}
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintRanking(results)
	return nil
}

// loadCandidateDir loads every .json file in the directory, sorted by name
// so batch ordering is stable. Records that fail to load become error
// results downstream rather than aborting the run.
func loadCandidateDir(dir string, logger zerolog.Logger) ([]*types.CandidateRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var candidates []*types.CandidateRecord
	for _, name := range names {
		path := filepath.Join(dir, name)
		candidate, err := loadCandidate(path, logger)
		if err != nil {
			logger.Warn().Err(err).Str("file", name).Msg("skipping unreadable candidate record")
			continue
		}
		if candidate.ID == "" {
			candidate.ID = strings.TrimSuffix(name, ".json")
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// persistResults writes the batch to PostgreSQL when a database URL is
// configured. Persistence failures fail the run; the assessment already
// printed is still valid.
func persistResults(ctx context.Context, cfg *config.Config, job *types.JobPosting, results []*types.AssessmentResult, logger zerolog.Logger) error {
	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	batchID, err := database.CreateBatch(ctx, job.PositionTitle, job.Department, job.Strict)
	if err != nil {
		return err
	}

	status := db.StatusCompleted
	for _, result := range results {
		if err := database.SaveResult(ctx, batchID, result); err != nil {
			logger.Error().Err(err).Str("candidate", result.CandidateID).Msg("failed to persist result")
			status = db.StatusFailed
		}
	}
	if err := database.CompleteBatch(ctx, batchID, status); err != nil {
		return err
	}

	logger.Info().Str("batch_id", batchID.String()).Int("results", len(results)).Msg("persisted assessment batch")
	return nil
}
