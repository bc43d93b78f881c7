package types

// CategoryScore is the outcome of one rule-based scoring category.
// Invariant: 0 <= Score <= MaxPossible.
type CategoryScore struct {
	Score       float64  `json:"score"`
	MaxPossible float64  `json:"max_possible"`
	Details     []string `json:"details,omitempty"`
}

// Clamp forces the score into [0, MaxPossible] and returns the receiver
// for chaining during construction.
func (c CategoryScore) Clamp() CategoryScore {
	if c.Score < 0 {
		c.Score = 0
	}
	if c.Score > c.MaxPossible {
		c.Score = c.MaxPossible
	}
	return c
}

// ComplianceReport captures whether the candidate meets the parsed
// education and experience requirements. A dimension with no stated
// requirement is always compliant.
type ComplianceReport struct {
	EducationChecked    bool    `json:"education_checked"`
	EducationCompliant  bool    `json:"education_compliant"`
	EducationDetail     string  `json:"education_detail,omitempty"`
	ExperienceChecked   bool    `json:"experience_checked"`
	ExperienceCompliant bool    `json:"experience_compliant"`
	ExperienceDetail    string  `json:"experience_detail,omitempty"`
	CandidateLevel      string  `json:"candidate_level,omitempty"`
	CandidateYears      float64 `json:"candidate_years"`
	Score               float64 `json:"score"` // fraction of checked dimensions satisfied
	StrictEducationRule bool    `json:"strict_education_rule,omitempty"`
}

// PenaltyRecord documents every adjustment the blending engine applied,
// surfaced in the result for transparency.
type PenaltyRecord struct {
	EducationRelevanceFactor  float64 `json:"education_relevance_factor,omitempty"`
	ExperienceRelevanceFactor float64 `json:"experience_relevance_factor,omitempty"`
	OverallRelevanceFactor    float64 `json:"overall_relevance_factor,omitempty"`
	TotalScoreFactor          float64 `json:"total_score_factor,omitempty"`
	MastersOverrideApplied    bool    `json:"masters_degree_requirement_applied"`
	EducationScoreBefore      float64 `json:"education_score_before,omitempty"`
	EducationScoreAfter       float64 `json:"education_score_after,omitempty"`
}

// SemanticScoreSet holds the similarity scores between a candidate profile
// and a job posting, after any compliance penalty adjustment. All values
// are in [0, 1].
type SemanticScoreSet struct {
	Overall             float64 `json:"overall"`
	EducationRelevance  float64 `json:"education_relevance"`
	ExperienceRelevance float64 `json:"experience_relevance"`
	TrainingRelevance   float64 `json:"training_relevance"`
	// Original values before penalty adjustment, kept for transparency.
	OriginalOverall             float64 `json:"original_overall,omitempty"`
	OriginalEducationRelevance  float64 `json:"original_education_relevance,omitempty"`
	OriginalExperienceRelevance float64 `json:"original_experience_relevance,omitempty"`
	ProviderUsed                bool    `json:"provider_used"`
}

// Recommendation is the categorical hiring recommendation.
type Recommendation string

// Recommendation bands.
const (
	HighlyRecommended Recommendation = "highly_recommended"
	Recommended       Recommendation = "recommended"
	Conditional       Recommendation = "conditional"
	NotRecommended    Recommendation = "not_recommended"
	RecommendationErr Recommendation = "error"
)

// ManualScores are interview/aptitude points entered by a human reviewer.
// They occupy the 15 points not covered by automated scoring.
type ManualScores struct {
	Interview float64 `json:"interview,omitempty"`
	Aptitude  float64 `json:"aptitude,omitempty"`
}

// Total returns the summed manual points.
func (m ManualScores) Total() float64 {
	return m.Interview + m.Aptitude
}

// AssessmentResult aggregates everything one assessment produced.
type AssessmentResult struct {
	CandidateID     string                   `json:"candidate_id,omitempty"`
	PositionTitle   string                   `json:"position_title,omitempty"`
	Requirements    *ParsedRequirements      `json:"requirements,omitempty"`
	CategoryScores  map[string]CategoryScore `json:"category_scores,omitempty"`
	Semantic        *SemanticScoreSet        `json:"semantic_analysis,omitempty"`
	Compliance      *ComplianceReport        `json:"compliance,omitempty"`
	Penalties       *PenaltyRecord           `json:"penalties_applied,omitempty"`
	AutomatedScore  float64                  `json:"automated_score"`
	PercentageScore float64                  `json:"percentage_score"`
	// CombinedScore is AutomatedScore plus manual interview/aptitude
	// points, out of 100. Zero when no manual scores were entered.
	CombinedScore  float64        `json:"combined_score,omitempty"`
	Recommendation Recommendation `json:"recommendation"`
	ManualReview   bool           `json:"manual_review"`
	Error          string         `json:"error,omitempty"`
	Diagnostics    []string       `json:"diagnostics,omitempty"`
}

// Category names used as CategoryScores keys.
const (
	CategoryEducation       = "education"
	CategoryExperience      = "experience"
	CategoryTraining        = "training"
	CategoryEligibility     = "eligibility"
	CategoryAccomplishments = "accomplishments"
)

// ErrorResult builds the degraded result returned when an assessment
// fails unrecoverably. Callers get this instead of a propagated panic.
func ErrorResult(candidateID, message string) *AssessmentResult {
	return &AssessmentResult{
		CandidateID:    candidateID,
		AutomatedScore: 0,
		Recommendation: RecommendationErr,
		Error:          message,
	}
}
