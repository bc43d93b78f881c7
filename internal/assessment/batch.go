package assessment

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/candidate-assessor/internal/semantic"
	"github.com/jonathan/candidate-assessor/internal/types"
)

// DefaultConcurrency bounds the number of candidates assessed in parallel
// when the caller does not specify a limit.
const DefaultConcurrency = 4

// AssessBatch scores every candidate against the same job posting. The job
// text is embedded once and shared across all workers. Results are returned
// in input order; a candidate whose assessment fails internally yields an
// error result rather than aborting the batch.
func (e *Engine) AssessBatch(ctx context.Context, candidates []*types.CandidateRecord, job *types.JobPosting, concurrency int) []*types.AssessmentResult {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	jobVec := e.scorer.EncodeJob(ctx, job)

	results := make([]*types.AssessmentResult, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			results[i] = e.assessSafely(gctx, candidate, job, jobVec)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return results
}

// assessSafely wraps the shared pipeline with the same recover guard the
// single-candidate path uses, so one bad record cannot sink the batch.
func (e *Engine) assessSafely(ctx context.Context, candidate *types.CandidateRecord, job *types.JobPosting, jobVec *semantic.JobVector) (result *types.AssessmentResult) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Interface("panic", r).Msg("batch assessment failed unexpectedly")
			id := ""
			if candidate != nil {
				id = candidate.ID
			}
			result = types.ErrorResult(id, "internal error during batch assessment")
		}
	}()
	return e.assess(ctx, candidate, job, jobVec, nil)
}
