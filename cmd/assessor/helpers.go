package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/jonathan/candidate-assessor/internal/config"
	"github.com/jonathan/candidate-assessor/internal/embedding"
	"github.com/jonathan/candidate-assessor/internal/pds"
	"github.com/jonathan/candidate-assessor/internal/schemas"
	"github.com/jonathan/candidate-assessor/internal/semantic"
	"github.com/jonathan/candidate-assessor/internal/types"
)

// newLogger builds the CLI logger. Verbose mode lowers the level to debug.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// loadJob reads and validates a job posting JSON file.
func loadJob(path string) (*types.JobPosting, error) {
	if err := schemas.ValidateJobFile(path); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, fmt.Errorf("job posting does not validate: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Warning: could not validate job posting against schema: %v\n", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var job types.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	if job.PositionTitle == "" {
		return nil, fmt.Errorf("job posting has no position_title")
	}
	return &job, nil
}

// loadCandidate reads a candidate record file and normalizes its field
// names. Normalization never fails; diagnostics describe anything skipped.
func loadCandidate(path string, logger zerolog.Logger) (*types.CandidateRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate file: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse candidate JSON: %w", err)
	}

	candidate, diags := pds.Normalize(raw)
	for _, d := range diags {
		logger.Debug().Str("file", path).Msg(d)
	}
	return candidate, nil
}

// buildScorer assembles the semantic scorer from the effective config:
// Gemini embedder when an API key is present, Redis or file cache when
// configured. The returned closer flushes the cache and releases clients.
func buildScorer(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*semantic.Scorer, func(), error) {
	var closers []func()

	var embedder embedding.Embedder
	modelID := cfg.EmbeddingModel
	if modelID == "" {
		modelID = embedding.DefaultModel
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" {
		gem, err := embedding.NewGeminiEmbedder(ctx, apiKey, embedding.GeminiConfig{Model: modelID})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create embedder: %w", err)
		}
		embedder = gem
		closers = append(closers, func() { _ = gem.Close() })
	} else {
		logger.Warn().Msg("no API key configured, using deterministic fallback vectors")
	}

	var store embedding.Store
	switch {
	case cfg.RedisURL != "":
		rs, err := embedding.OpenRedisStoreURL(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		store = rs
		closers = append(closers, func() { _ = rs.Close() })
	case cfg.CachePath != "":
		fs, err := embedding.OpenFileStore(cfg.CachePath)
		if err != nil {
			return nil, nil, err
		}
		store = fs
	default:
		store = embedding.NullStore{}
	}

	opts := []semantic.Option{
		semantic.WithStore(store),
		semantic.WithLogger(logger),
	}
	if embedder != nil {
		opts = append(opts, semantic.WithModelID(modelID))
	}
	scorer := semantic.NewScorer(embedder, opts...)

	closeAll := func() {
		if err := scorer.Flush(); err != nil {
			logger.Warn().Err(err).Msg("failed to flush embedding cache")
		}
		for _, c := range closers {
			c()
		}
	}
	return scorer, closeAll, nil
}

// effectiveConfig merges an optional config file under the given flags.
func effectiveConfig(configPath string, flags config.Config) (*config.Config, error) {
	if configPath == "" {
		if err := flags.Validate(); err != nil {
			return nil, err
		}
		return &flags, nil
	}

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	merged := flags.MergeWithDefaults(*fileCfg)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// writeResultJSON writes results as indented JSON to stdout or a file.
func writeResultJSON(v any, outPath string) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if outPath == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
