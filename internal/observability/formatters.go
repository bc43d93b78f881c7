// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/candidate-assessor/internal/db"
	"github.com/jonathan/candidate-assessor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirements outputs a human-readable summary of the parsed job
// requirements.
func (p *Printer) PrintRequirements(job *types.JobPosting, req *types.ParsedRequirements) {
	if req == nil {
		return
	}

	var sb strings.Builder

	if job != nil {
		sb.WriteString(fmt.Sprintf("Position:   %s\n", job.PositionTitle))
		if job.Department != "" {
			sb.WriteString(fmt.Sprintf("Department: %s\n", job.Department))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Min. education:  %s\n", req.MinimumEducation))
	sb.WriteString(fmt.Sprintf("Experience:      %d years\n", req.RequiredExperienceYears))
	if req.SubjectArea != "" {
		sb.WriteString(fmt.Sprintf("Subject area:    %s\n", req.SubjectArea))
	}
	sb.WriteString(fmt.Sprintf("Position level:  %s\n", req.PositionLevel))
	if req.Strict {
		sb.WriteString("Mode:            strict\n")
	}
	if req.SpecialCategory != types.SpecialNone {
		sb.WriteString(fmt.Sprintf("Special rule:    %s", req.SpecialCategory))
		if req.RequiresMasters {
			sb.WriteString(" (master's degree required)")
		}
		sb.WriteString("\n")
	}

	if len(req.RequiredCertifications) > 0 {
		sb.WriteString("\nRequired Eligibility:\n")
		count := min(len(req.RequiredCertifications), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", req.RequiredCertifications[i]))
		}
		if len(req.RequiredCertifications) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(req.RequiredCertifications)-maxItemsToShow))
		}
	}

	p.printBox("PARSED REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAssessment outputs one candidate's full assessment.
func (p *Printer) PrintAssessment(result *types.AssessmentResult) {
	if result == nil {
		return
	}
	if result.Error != "" {
		p.printBox("ASSESSMENT FAILED", fmt.Sprintf("Candidate: %s\n%s", result.CandidateID, result.Error))
		return
	}

	var sb strings.Builder
	if result.CandidateID != "" {
		sb.WriteString(fmt.Sprintf("Candidate: %s\n\n", result.CandidateID))
	}

	// Category scores in a stable order
	names := make([]string, 0, len(result.CategoryScores))
	for name := range result.CategoryScores {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cs := result.CategoryScores[name]
		sb.WriteString(fmt.Sprintf("%-16s %5.1f / %.0f\n", name, cs.Score, cs.MaxPossible))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Automated:  %.1f / 85\n", result.AutomatedScore))
	if result.CombinedScore > 0 {
		sb.WriteString(fmt.Sprintf("Combined:   %.1f / 100\n", result.CombinedScore))
	}
	sb.WriteString(fmt.Sprintf("Percentage: %.1f%%\n", result.PercentageScore))
	sb.WriteString(fmt.Sprintf("Recommendation: %s\n", result.Recommendation))
	if result.ManualReview {
		sb.WriteString("⚠ flagged for manual review\n")
	}

	if result.Semantic != nil {
		sb.WriteString("\nSemantic:\n")
		sb.WriteString(fmt.Sprintf("  overall    %.3f\n", result.Semantic.Overall))
		sb.WriteString(fmt.Sprintf("  education  %.3f\n", result.Semantic.EducationRelevance))
		sb.WriteString(fmt.Sprintf("  experience %.3f\n", result.Semantic.ExperienceRelevance))
		if !result.Semantic.ProviderUsed {
			sb.WriteString("  (deterministic fallback vectors)\n")
		}
	}

	if result.Penalties != nil && result.Penalties.MastersOverrideApplied {
		sb.WriteString(fmt.Sprintf("\nMaster's override: education %.1f → 0\n",
			result.Penalties.EducationScoreBefore))
	}

	p.printBox("ASSESSMENT RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCompliance outputs the compliance report for a candidate.
func (p *Printer) PrintCompliance(report *types.ComplianceReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if report.EducationChecked {
		sb.WriteString(complianceLine("Education", report.EducationCompliant, report.EducationDetail))
	}
	if report.ExperienceChecked {
		sb.WriteString(complianceLine("Experience", report.ExperienceCompliant, report.ExperienceDetail))
	}
	if !report.EducationChecked && !report.ExperienceChecked {
		sb.WriteString("No checkable requirements stated.\n")
	}
	sb.WriteString(fmt.Sprintf("\nCompliance score: %.2f", report.Score))

	p.printBox("COMPLIANCE", sb.String())
}

func complianceLine(dimension string, compliant bool, detail string) string {
	mark := "✓"
	if !compliant {
		mark = "✗"
	}
	line := fmt.Sprintf("%s %s", mark, dimension)
	if detail != "" {
		if len(detail) > 40 {
			detail = detail[:37] + "..."
		}
		line += ": " + detail
	}
	return line + "\n"
}

// PrintRanking outputs a batch of results ordered by percentage, best first.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRanking(results []*types.AssessmentResult) {
	if len(results) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO CANDIDATES ASSESSED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	ranked := make([]*types.AssessmentResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PercentageScore > ranked[j].PercentageScore
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Assessed %d candidates:\n\n", len(ranked)))

	for i, r := range ranked {
		id := r.CandidateID
		if id == "" {
			id = "(unnamed)"
		}
		if r.Error != "" {
			sb.WriteString(fmt.Sprintf("#%d  %s  FAILED\n", i+1, id))
			continue
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, id))
		sb.WriteString(fmt.Sprintf("    %.1f%%  %s", r.PercentageScore, r.Recommendation))
		if r.ManualReview {
			sb.WriteString("  ⚠ review")
		}
		sb.WriteString("\n")
		if i < len(ranked)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CANDIDATE RANKING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatches outputs stored assessment batches, newest first as listed.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBatches(batches []db.Batch) {
	if len(batches) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO STORED BATCHES")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, b := range batches {
		sb.WriteString(fmt.Sprintf("%s\n", b.ID))
		sb.WriteString(fmt.Sprintf("    %s", b.PositionTitle))
		if b.Department != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", b.Department))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    %s  created %s", b.Status, b.CreatedAt.Format("2006-01-02 15:04")))
		if b.Strict {
			sb.WriteString("  strict")
		}
		sb.WriteString("\n")
		if i < len(batches)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("ASSESSMENT BATCHES (%d)", len(batches)), strings.TrimSuffix(sb.String(), "\n"))
}
