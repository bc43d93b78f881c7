// Package semantic builds bounded text blocks for candidates and job
// postings and scores their embedding similarity.
package semantic

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jonathan/candidate-assessor/internal/embedding"
	"github.com/jonathan/candidate-assessor/internal/types"
)

// Entry caps bound embedding input size per category.
const (
	maxEducationEntries   = 4
	maxExperienceEntries  = 4
	maxTrainingEntries    = 4
	maxEligibilityEntries = 2
)

const blockDelimiter = " | "

// Scorer computes similarity scores between candidate profiles and job
// postings. It consults the vector store before calling the provider and
// substitutes deterministic hash vectors when the provider is down, so
// scoring never blocks on provider availability.
type Scorer struct {
	embedder embedding.Embedder
	store    embedding.Store
	model    string
	logger   zerolog.Logger
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithStore sets the vector cache store.
func WithStore(store embedding.Store) Option {
	return func(s *Scorer) { s.store = store }
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scorer) { s.logger = logger }
}

// WithModelID overrides the model identifier used in cache keys.
func WithModelID(model string) Option {
	return func(s *Scorer) { s.model = model }
}

// NewScorer creates a Scorer. A nil embedder is permitted: every encode
// then uses the deterministic fallback.
func NewScorer(embedder embedding.Embedder, opts ...Option) *Scorer {
	s := &Scorer{
		embedder: embedder,
		store:    embedding.NullStore{},
		model:    "fallback",
		logger:   zerolog.Nop(),
	}
	if embedder != nil {
		s.model = embedding.DefaultModel
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// JobVector is a job posting's encoded text block, computed once per job
// and reused across a batch of candidates.
type JobVector struct {
	Text   string
	Vector []float64
}

// EncodeJob builds and encodes the job text block.
func (s *Scorer) EncodeJob(ctx context.Context, job *types.JobPosting) *JobVector {
	text := JobText(job)
	return &JobVector{Text: text, Vector: s.encode(ctx, text, "job")}
}

// Score computes the overall and per-category similarities between the
// candidate and an already-encoded job.
func (s *Scorer) Score(ctx context.Context, candidate *types.CandidateRecord, job *JobVector) *types.SemanticScoreSet {
	profile := ProfileText(candidate)

	set := &types.SemanticScoreSet{
		Overall: embedding.Similarity(s.encode(ctx, profile, "profile"), job.Vector),
	}
	if edu := educationText(candidate); edu != "" {
		set.EducationRelevance = embedding.Similarity(s.encode(ctx, edu, "education"), job.Vector)
	}
	if exp := experienceText(candidate); exp != "" {
		set.ExperienceRelevance = embedding.Similarity(s.encode(ctx, exp, "experience"), job.Vector)
	}
	if tr := trainingText(candidate); tr != "" {
		set.TrainingRelevance = embedding.Similarity(s.encode(ctx, tr, "training"), job.Vector)
	}

	// Checked after the encodes: a provider that fails mid-scoring marks
	// itself unavailable, and the result must not claim its vectors.
	set.ProviderUsed = s.providerUsable()

	set.OriginalOverall = set.Overall
	set.OriginalEducationRelevance = set.EducationRelevance
	set.OriginalExperienceRelevance = set.ExperienceRelevance
	return set
}

// TextSimilarity scores two arbitrary strings, used by the compliance
// checker's subject-field test.
func (s *Scorer) TextSimilarity(ctx context.Context, a, b string) float64 {
	return embedding.Similarity(s.encode(ctx, a, "text"), s.encode(ctx, b, "text"))
}

// Flush persists the vector store.
func (s *Scorer) Flush() error {
	return s.store.Flush()
}

// encode returns a vector for the text: cache first, then provider, then
// the deterministic hash fallback. It never fails.
func (s *Scorer) encode(ctx context.Context, text, contextLabel string) []float64 {
	key := embedding.CacheKey(text, contextLabel, s.model)
	if vec, ok := s.store.Get(key); ok {
		return vec
	}

	if s.providerUsable() {
		vec, err := s.embedder.Embed(ctx, text)
		if err == nil {
			s.store.Put(key, vec)
			return vec
		}
		s.logger.Warn().Err(err).Str("context", contextLabel).
			Msg("embedding provider failed, using deterministic fallback")
	}

	dims := embedding.DefaultDimensions
	if s.embedder != nil {
		dims = s.embedder.Dimensions()
	}
	return embedding.HashVector(text, dims)
}

func (s *Scorer) providerUsable() bool {
	return s.embedder != nil && s.embedder.Available()
}

// JobText builds the job posting's single text block.
func JobText(job *types.JobPosting) string {
	parts := []string{
		job.PositionTitle,
		job.Department,
		job.Description,
		job.EducationRequirements,
		job.ExperienceRequirements,
		job.TrainingRequirements,
		job.EligibilityRequirements,
		job.SpecialRequirements,
	}
	return joinNonEmpty(parts)
}

// ProfileText concatenates the candidate's category summaries into one
// bounded block.
func ProfileText(candidate *types.CandidateRecord) string {
	parts := []string{
		educationText(candidate),
		experienceText(candidate),
		trainingText(candidate),
		eligibilityText(candidate),
	}
	text := joinNonEmpty(parts)
	if text == "" {
		return "no candidate data"
	}
	return text
}

func educationText(candidate *types.CandidateRecord) string {
	var parts []string
	for i, e := range candidate.Education {
		if i >= maxEducationEntries {
			break
		}
		parts = append(parts, joinNonEmpty([]string{e.Degree, e.Course, e.Institution, e.Honors}))
	}
	return joinNonEmpty(parts)
}

func experienceText(candidate *types.CandidateRecord) string {
	var parts []string
	for i, e := range candidate.Experience {
		if i >= maxExperienceEntries {
			break
		}
		parts = append(parts, joinNonEmpty([]string{e.Position, e.Company}))
	}
	return joinNonEmpty(parts)
}

func trainingText(candidate *types.CandidateRecord) string {
	var parts []string
	for i, t := range candidate.Training {
		if i >= maxTrainingEntries {
			break
		}
		parts = append(parts, joinNonEmpty([]string{t.Title, t.Conductor}))
	}
	return joinNonEmpty(parts)
}

func eligibilityText(candidate *types.CandidateRecord) string {
	var parts []string
	for i, e := range candidate.Eligibility {
		if i >= maxEligibilityEntries {
			break
		}
		if e.Name != "" {
			parts = append(parts, e.Name)
		}
	}
	return joinNonEmpty(parts)
}

func joinNonEmpty(parts []string) string {
	var kept []string
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, blockDelimiter)
}

// String implements fmt.Stringer for debug logging.
func (j *JobVector) String() string {
	return fmt.Sprintf("JobVector(%d dims, %q)", len(j.Vector), truncate(j.Text, 60))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
