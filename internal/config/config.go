// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Candidate string `json:"candidate,omitempty"` // Path to a candidate record JSON file
	Batch     string `json:"batch,omitempty"`     // Path to a directory of candidate record files
	Job       string `json:"job,omitempty"`       // Path to job posting JSON file

	// Embedding provider: Gemini API key, model identifier, and the
	// optional file- or Redis-backed vector cache.
	APIKey         string `json:"api_key,omitempty"`
	EmbeddingModel string `json:"embedding_model,omitempty"`
	CachePath      string `json:"cache_path,omitempty"`
	RedisURL       string `json:"redis_url,omitempty" validate:"omitempty,uri"`

	// Persistence
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Behavior
	Strict       bool   `json:"strict,omitempty"`  // Apply compliance penalties to scores
	Verbose      bool   `json:"verbose,omitempty"` // Print detailed debug information
	Concurrency  int    `json:"concurrency,omitempty" validate:"gte=0"`
	OutputFormat string `json:"output_format,omitempty" validate:"omitempty,oneof=text json"`

	// Manual interview (max 10) and aptitude (max 5) points recorded
	// alongside the automated assessment.
	Interview float64 `json:"interview,omitempty" validate:"gte=0,lte=10"`
	Aptitude  float64 `json:"aptitude,omitempty" validate:"gte=0,lte=5"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Candidate != "" && c.Batch != "" {
		return fmt.Errorf("config error: 'candidate' and 'batch' are mutually exclusive")
	}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: field %q failed %q validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	if c.Candidate != "" {
		if _, err := os.Stat(c.Candidate); os.IsNotExist(err) {
			return fmt.Errorf("config error: candidate file not found: %s", c.Candidate)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Candidate == "" {
		result.Candidate = defaults.Candidate
	}
	if result.Batch == "" {
		result.Batch = defaults.Batch
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.CachePath == "" {
		result.CachePath = defaults.CachePath
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.OutputFormat == "" {
		result.OutputFormat = defaults.OutputFormat
	}

	// Int fields: use default if zero
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Float fields: use default if zero
	if result.Interview == 0 {
		result.Interview = defaults.Interview
	}
	if result.Aptitude == 0 {
		result.Aptitude = defaults.Aptitude
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
