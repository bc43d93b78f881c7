package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-assessor/internal/assessment"
	"github.com/jonathan/candidate-assessor/internal/config"
	"github.com/jonathan/candidate-assessor/internal/observability"
	"github.com/jonathan/candidate-assessor/internal/types"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Assess one candidate against a job posting",
	Long:  "Assess a single candidate record against a job posting and print the scored result with a recommendation.",
	RunE:  runAssess,
}

var (
	assessCandidateFile string
	assessJobFile       string
	assessConfigFile    string
	assessOutputFile    string
	assessAPIKey        string
	assessCachePath     string
	assessRedisURL      string
	assessFormat        string
	assessStrict        bool
	assessVerbose       bool
	assessInterview     float64
	assessAptitude      float64
)

func init() {
	assessCmd.Flags().StringVarP(&assessCandidateFile, "candidate", "c", "", "Path to candidate record JSON file (required)")
	assessCmd.Flags().StringVarP(&assessJobFile, "job", "j", "", "Path to job posting JSON file (required)")
	assessCmd.Flags().StringVar(&assessConfigFile, "config", "", "Path to JSON config file with default flag values")
	assessCmd.Flags().StringVarP(&assessOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	assessCmd.Flags().StringVar(&assessAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	assessCmd.Flags().StringVar(&assessCachePath, "cache", "", "Embedding cache file path")
	assessCmd.Flags().StringVar(&assessRedisURL, "redis-url", "", "Redis URL for a shared embedding cache")
	assessCmd.Flags().StringVar(&assessFormat, "format", "text", "Output format: text or json")
	assessCmd.Flags().BoolVar(&assessStrict, "strict", false, "Apply compliance penalties to scores")
	assessCmd.Flags().BoolVarP(&assessVerbose, "verbose", "v", false, "Print detailed debug information")
	assessCmd.Flags().Float64Var(&assessInterview, "interview", 0, "Manual interview score (0-10)")
	assessCmd.Flags().Float64Var(&assessAptitude, "aptitude", 0, "Manual aptitude score (0-5)")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(_ *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig(assessConfigFile, config.Config{
		Candidate:    assessCandidateFile,
		Job:          assessJobFile,
		APIKey:       assessAPIKey,
		CachePath:    assessCachePath,
		RedisURL:     assessRedisURL,
		OutputFormat: assessFormat,
		Strict:       assessStrict,
		Verbose:      assessVerbose,
		Interview:    assessInterview,
		Aptitude:     assessAptitude,
	})
	if err != nil {
		return err
	}
	if cfg.Candidate == "" || cfg.Job == "" {
		return fmt.Errorf("both --candidate and --job are required")
	}

	logger := newLogger(cfg.Verbose)
	ctx := context.Background()

	job, err := loadJob(cfg.Job)
	if err != nil {
		return err
	}
	job.Strict = job.Strict || cfg.Strict

	candidate, err := loadCandidate(cfg.Candidate, logger)
	if err != nil {
		return err
	}

	scorer, closeScorer, err := buildScorer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeScorer()

	engine := assessment.NewEngine(scorer, assessment.WithLogger(logger))

	var manual *types.ManualScores
	if cfg.Interview > 0 || cfg.Aptitude > 0 {
		manual = &types.ManualScores{Interview: cfg.Interview, Aptitude: cfg.Aptitude}
	}

	result := engine.Assess(ctx, candidate, job, manual)

	if cfg.OutputFormat == "json" || assessOutputFile != "" {
		if err := writeResultJSON(result, assessOutputFile); err != nil {
			return err
		}
		if assessOutputFile != "" {
			fmt.Fprintf(os.Stdout, "Output: %s\n", assessOutputFile)
		}
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintRequirements(job, result.Requirements)
		printer.PrintCompliance(result.Compliance)
	}
	printer.PrintAssessment(result)

	return nil
}
