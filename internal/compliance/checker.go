// Package compliance determines whether a candidate meets a job's parsed
// minimum education and experience requirements.
package compliance

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/candidate-assessor/internal/scoring"
	"github.com/jonathan/candidate-assessor/internal/types"
)

// subjectSimilarityThreshold is the semantic score at which a candidate's
// field of study counts as matching a required subject area even without
// substring containment.
const subjectSimilarityThreshold = 0.7

// TextScorer scores two strings for semantic similarity in [0,1]. The
// semantic scorer satisfies this; tests supply stubs.
type TextScorer interface {
	TextSimilarity(ctx context.Context, a, b string) float64
}

// Checker evaluates requirement compliance. The text scorer is optional:
// without one, the subject-field test falls back to substring containment
// alone.
type Checker struct {
	scorer TextScorer
}

// NewChecker creates a Checker. scorer may be nil.
func NewChecker(scorer TextScorer) *Checker {
	return &Checker{scorer: scorer}
}

// Check evaluates education and experience compliance. A dimension with
// no stated requirement is compliant by definition; absence of a
// requirement is never non-compliance.
func (c *Checker) Check(ctx context.Context, candidate *types.CandidateRecord, req *types.ParsedRequirements) *types.ComplianceReport {
	report := &types.ComplianceReport{
		EducationCompliant:  true,
		ExperienceCompliant: true,
		Score:               1.0,
	}
	if req == nil {
		return report
	}

	report.CandidateYears = scoring.TotalExperienceYears(candidate)
	level := scoring.HighestEducationLevel(candidate)
	report.CandidateLevel = level.String()

	checked := 0
	satisfied := 0

	if req.MinimumEducation > types.LevelNone {
		report.EducationChecked = true
		checked++
		report.EducationCompliant = c.educationCompliant(ctx, candidate, level, req, report)
		if report.EducationCompliant {
			satisfied++
		}
	}

	if req.RequiredExperienceYears > 0 {
		report.ExperienceChecked = true
		checked++
		report.ExperienceCompliant = report.CandidateYears >= float64(req.RequiredExperienceYears)
		if report.ExperienceCompliant {
			satisfied++
			report.ExperienceDetail = fmt.Sprintf("%.1f years meets required %d", report.CandidateYears, req.RequiredExperienceYears)
		} else {
			report.ExperienceDetail = fmt.Sprintf("%.1f years below required %d", report.CandidateYears, req.RequiredExperienceYears)
		}
	}

	if checked > 0 {
		report.Score = float64(satisfied) / float64(checked)
	}
	return report
}

// educationCompliant requires the candidate's level to meet the minimum
// and, when a subject area is required, the field of study to contain the
// subject or score at least 0.7 semantic similarity against it.
func (c *Checker) educationCompliant(ctx context.Context, candidate *types.CandidateRecord, level types.EducationLevel, req *types.ParsedRequirements, report *types.ComplianceReport) bool {
	if level < req.MinimumEducation {
		report.EducationDetail = fmt.Sprintf("%s below required %s", level, req.MinimumEducation)
		return false
	}

	if req.SubjectArea == "" {
		report.EducationDetail = fmt.Sprintf("%s meets required %s", level, req.MinimumEducation)
		return true
	}

	subject := strings.ToLower(req.SubjectArea)
	for _, entry := range candidate.Education {
		field := strings.ToLower(strings.Join([]string{entry.Degree, entry.Course}, " "))
		if strings.Contains(field, subject) {
			report.EducationDetail = fmt.Sprintf("field matches required subject %q", req.SubjectArea)
			return true
		}
		if c.scorer != nil && strings.TrimSpace(field) != "" {
			if sim := c.scorer.TextSimilarity(ctx, field, subject); sim >= subjectSimilarityThreshold {
				report.EducationDetail = fmt.Sprintf("field semantically matches subject %q (%.2f)", req.SubjectArea, sim)
				return true
			}
		}
	}

	report.EducationDetail = fmt.Sprintf("no field of study matches required subject %q", req.SubjectArea)
	return false
}
