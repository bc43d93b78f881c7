package db

import (
	"time"

	"github.com/google/uuid"
)

// Batch statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Batch represents one assessment run over a set of candidates for a
// single job posting.
type Batch struct {
	ID            uuid.UUID  `json:"id"`
	PositionTitle string     `json:"position_title"`
	Department    string     `json:"department,omitempty"`
	Strict        bool       `json:"strict"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// ResultRecord is a lightweight view of a stored assessment result for
// ranking listings. The full result lives in the JSONB content column.
type ResultRecord struct {
	ID              uuid.UUID `json:"id"`
	BatchID         uuid.UUID `json:"batch_id"`
	CandidateID     string    `json:"candidate_id"`
	AutomatedScore  float64   `json:"automated_score"`
	PercentageScore float64   `json:"percentage_score"`
	Recommendation  string    `json:"recommendation"`
	ManualReview    bool      `json:"manual_review"`
}
