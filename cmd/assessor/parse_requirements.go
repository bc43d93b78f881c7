package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-assessor/internal/observability"
	"github.com/jonathan/candidate-assessor/internal/requirements"
)

var parseReqCmd = &cobra.Command{
	Use:   "parse-requirements",
	Short: "Parse a job posting's free-text requirements into structured criteria",
	Long:  "Parse a job posting JSON file and print the structured requirements the assessment engine would score against, without assessing anyone.",
	RunE:  runParseRequirements,
}

var (
	parseReqJobFile    string
	parseReqOutputFile string
	parseReqJSON       bool
)

func init() {
	parseReqCmd.Flags().StringVarP(&parseReqJobFile, "job", "j", "", "Path to job posting JSON file (required)")
	parseReqCmd.Flags().StringVarP(&parseReqOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseReqCmd.Flags().BoolVar(&parseReqJSON, "json", false, "Print JSON instead of the formatted summary")

	rootCmd.AddCommand(parseReqCmd)
}

func runParseRequirements(_ *cobra.Command, _ []string) error {
	if parseReqJobFile == "" {
		return fmt.Errorf("--job is required")
	}

	job, err := loadJob(parseReqJobFile)
	if err != nil {
		return err
	}

	req := requirements.NewParser(requirements.Options{}).Parse(job)

	if parseReqJSON || parseReqOutputFile != "" {
		return writeResultJSON(req, parseReqOutputFile)
	}

	observability.NewPrinter(os.Stdout).PrintRequirements(job, req)
	return nil
}
