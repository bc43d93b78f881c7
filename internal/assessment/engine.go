// Package assessment blends rule-based and semantic scores into a final
// ranked assessment with a categorical recommendation.
package assessment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jonathan/candidate-assessor/internal/compliance"
	"github.com/jonathan/candidate-assessor/internal/requirements"
	"github.com/jonathan/candidate-assessor/internal/scoring"
	"github.com/jonathan/candidate-assessor/internal/semantic"
	"github.com/jonathan/candidate-assessor/internal/types"
)

// AutomatedMax is the automated portion of the total score; the remaining
// 15 points are reserved for manually entered interview/aptitude scores.
const AutomatedMax = 85.0

// Strict-mode penalty factors applied to semantic scores.
const (
	eduStrictRelevanceFactor = 0.2
	eduRelevanceFactor       = 0.5
	eduStrictOverallFactor   = 0.4
	eduOverallFactor         = 0.7
	expRelevanceFactor       = 0.6
	expOverallFactor         = 0.8
	eduNonCompliantTotalMult = 0.3
	expNonCompliantTotalMult = 0.7
)

// Recommendation thresholds on the percentage score.
const (
	highlyRecommendedCutoff = 90.0
	recommendedCutoff       = 75.0
	conditionalCutoff       = 60.0
	manualReviewLowCutoff   = 70.0
	manualReviewHighCutoff  = 95.0
)

// Engine is the explicitly constructed assessment service. It owns no
// global state; every dependency is injected by the caller.
type Engine struct {
	parser  *requirements.Parser
	scorer  *semantic.Scorer
	checker *compliance.Checker
	logger  zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithParser overrides the requirements parser, e.g. with tuned keyword
// tables.
func WithParser(parser *requirements.Parser) Option {
	return func(e *Engine) { e.parser = parser }
}

// NewEngine creates an assessment engine around a semantic scorer.
func NewEngine(scorer *semantic.Scorer, opts ...Option) *Engine {
	e := &Engine{
		parser:  requirements.NewParser(requirements.Options{}),
		scorer:  scorer,
		checker: compliance.NewChecker(scorer),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Assess scores one candidate against one job posting. It never panics or
// returns an error to the caller: unexpected internal failures degrade to
// the error result.
func (e *Engine) Assess(ctx context.Context, candidate *types.CandidateRecord, job *types.JobPosting, manual *types.ManualScores) (result *types.AssessmentResult) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Interface("panic", r).Msg("assessment failed unexpectedly")
			id := ""
			if candidate != nil {
				id = candidate.ID
			}
			result = types.ErrorResult(id, fmt.Sprintf("internal error: %v", r))
		}
	}()

	jobVec := e.scorer.EncodeJob(ctx, job)
	return e.assess(ctx, candidate, job, jobVec, manual)
}

// assess runs the full pipeline against an already-encoded job, shared by
// Assess and AssessBatch.
func (e *Engine) assess(ctx context.Context, candidate *types.CandidateRecord, job *types.JobPosting, jobVec *semantic.JobVector, manual *types.ManualScores) *types.AssessmentResult {
	req := e.parser.Parse(job)

	result := &types.AssessmentResult{
		PositionTitle: job.PositionTitle,
		Requirements:  req,
		CategoryScores: map[string]types.CategoryScore{
			types.CategoryEducation:       scoring.ScoreEducation(candidate),
			types.CategoryExperience:      scoring.ScoreExperience(candidate, req),
			types.CategoryTraining:        scoring.ScoreTraining(candidate),
			types.CategoryEligibility:     scoring.ScoreEligibility(candidate),
			types.CategoryAccomplishments: scoring.ScoreAccomplishments(candidate),
		},
		Penalties: &types.PenaltyRecord{},
	}
	if candidate != nil {
		result.CandidateID = candidate.ID
	}

	result.Compliance = e.checker.Check(ctx, candidate, req)
	result.Compliance.StrictEducationRule = req.EducationStrict

	result.Semantic = e.scorer.Score(ctx, candidate, jobVec)
	if req.Strict {
		applySemanticPenalties(result.Semantic, result.Compliance, req, result.Penalties)
	}

	e.applyMastersOverride(candidate, req, result)

	total := 0.0
	for _, cs := range result.CategoryScores {
		total += cs.Score
	}

	if req.Strict {
		switch {
		case result.Compliance.EducationChecked && !result.Compliance.EducationCompliant:
			result.Penalties.TotalScoreFactor = eduNonCompliantTotalMult
			total *= eduNonCompliantTotalMult
			result.Diagnostics = append(result.Diagnostics, "education non-compliance: 70% total penalty applied")
		case result.Compliance.ExperienceChecked && !result.Compliance.ExperienceCompliant:
			result.Penalties.TotalScoreFactor = expNonCompliantTotalMult
			total *= expNonCompliantTotalMult
			result.Diagnostics = append(result.Diagnostics, "experience non-compliance: 30% total penalty applied")
		}
	}

	result.AutomatedScore = total
	result.PercentageScore = total / AutomatedMax * 100
	result.Recommendation = recommend(result.PercentageScore)
	result.ManualReview = result.PercentageScore < manualReviewLowCutoff || result.PercentageScore > manualReviewHighCutoff

	if manual != nil {
		result.CombinedScore = result.AutomatedScore + manual.Total()
		result.Diagnostics = append(result.Diagnostics,
			fmt.Sprintf("manual interview/aptitude score recorded: %.1f of 15", manual.Total()))
	}

	e.logger.Debug().
		Str("candidate", result.CandidateID).
		Str("position", job.PositionTitle).
		Float64("automated_score", result.AutomatedScore).
		Float64("percentage", result.PercentageScore).
		Str("recommendation", string(result.Recommendation)).
		Msg("assessment complete")

	return result
}

// applySemanticPenalties adjusts semantic scores for non-compliance in
// strict mode. Originals stay on the score set for transparency.
func applySemanticPenalties(set *types.SemanticScoreSet, report *types.ComplianceReport, req *types.ParsedRequirements, record *types.PenaltyRecord) {
	if report.EducationChecked && !report.EducationCompliant {
		eduFactor, overallFactor := eduRelevanceFactor, eduOverallFactor
		if req.EducationStrict {
			eduFactor, overallFactor = eduStrictRelevanceFactor, eduStrictOverallFactor
		}
		set.EducationRelevance *= eduFactor
		set.Overall *= overallFactor
		record.EducationRelevanceFactor = eduFactor
		record.OverallRelevanceFactor = overallFactor
	}
	if report.ExperienceChecked && !report.ExperienceCompliant {
		set.ExperienceRelevance *= expRelevanceFactor
		set.Overall *= expOverallFactor
		record.ExperienceRelevanceFactor = expRelevanceFactor
		if record.OverallRelevanceFactor == 0 {
			record.OverallRelevanceFactor = expOverallFactor
		} else {
			record.OverallRelevanceFactor *= expOverallFactor
		}
	}
}

// applyMastersOverride zeroes the education category for the two special
// role categories that require a Master's degree when the candidate's
// highest degree falls short. The original score is recorded.
func (e *Engine) applyMastersOverride(candidate *types.CandidateRecord, req *types.ParsedRequirements, result *types.AssessmentResult) {
	if req.SpecialCategory == types.SpecialNone || !req.RequiresMasters {
		return
	}
	if candidate != nil && scoring.HighestEducationLevel(candidate) >= types.LevelMaster {
		return
	}

	edu := result.CategoryScores[types.CategoryEducation]
	result.Penalties.MastersOverrideApplied = true
	result.Penalties.EducationScoreBefore = edu.Score
	result.Penalties.EducationScoreAfter = 0

	edu.Score = 0
	edu.Details = append(edu.Details, fmt.Sprintf("master's degree required for %s: education score overridden to 0", req.SpecialCategory))
	result.CategoryScores[types.CategoryEducation] = edu

	e.logger.Info().
		Str("category", string(req.SpecialCategory)).
		Float64("original_score", result.Penalties.EducationScoreBefore).
		Msg("applied master's degree override")
}

// recommend maps a percentage to its recommendation band.
func recommend(pct float64) types.Recommendation {
	switch {
	case pct >= highlyRecommendedCutoff:
		return types.HighlyRecommended
	case pct >= recommendedCutoff:
		return types.Recommended
	case pct >= conditionalCutoff:
		return types.Conditional
	default:
		return types.NotRecommended
	}
}
