package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jonathan/candidate-assessor/internal/pds"
	"github.com/jonathan/candidate-assessor/internal/types"
)

// ScoreExperience scores the experience category (max 20). Month spans
// from entries with resolvable start dates are summed; entries whose
// position or company text matches the job's subject area count as
// relevant. Relevant years are used when nonzero, otherwise total years.
func ScoreExperience(candidate *types.CandidateRecord, req *types.ParsedRequirements) types.CategoryScore {
	return scoreExperienceAt(candidate, req, time.Now())
}

// scoreExperienceAt is the clock-injected implementation, used directly by
// tests so tier boundaries stay deterministic.
func scoreExperienceAt(candidate *types.CandidateRecord, req *types.ParsedRequirements, now time.Time) types.CategoryScore {
	score := types.CategoryScore{MaxPossible: MaxExperience}
	if candidate == nil || len(candidate.Experience) == 0 {
		score.Details = append(score.Details, "no work experience entries")
		return score
	}

	subject := ""
	if req != nil {
		subject = strings.ToLower(req.SubjectArea)
	}

	totalMonths := 0
	relevantMonths := 0
	for _, entry := range candidate.Experience {
		months := pds.SpanMonths(entry.From, entry.To, now)
		if months == 0 {
			continue
		}
		totalMonths += months
		if isRelevant(entry, subject) {
			relevantMonths += months
		}
	}

	years := float64(relevantMonths) / 12.0
	basis := "relevant"
	if relevantMonths == 0 {
		years = float64(totalMonths) / 12.0
		basis = "total"
	}

	score.Score = experienceTierPoints(years)
	score.Details = append(score.Details,
		fmt.Sprintf("%.1f %s years of experience (%d total months)", years, basis, totalMonths))

	return score.Clamp()
}

// TotalExperienceYears sums the month spans of every entry with a
// resolvable start date, in years. Used by the compliance checker.
func TotalExperienceYears(candidate *types.CandidateRecord) float64 {
	if candidate == nil {
		return 0
	}
	now := time.Now()
	months := 0
	for _, entry := range candidate.Experience {
		months += pds.SpanMonths(entry.From, entry.To, now)
	}
	return float64(months) / 12.0
}

// experienceTierPoints maps years to points. Ten-plus years earn a bonus
// point per additional year on top of the 15-point tier, capped at the
// category maximum by the caller's Clamp.
func experienceTierPoints(years float64) float64 {
	switch {
	case years >= 10:
		return 15 + math.Floor(years-10)
	case years >= 5:
		return 15
	case years >= 3:
		return 10
	case years >= 1:
		return 5
	default:
		return 0
	}
}

// isRelevant judges an entry relevant by substring containment of the
// subject area in its position or company text. No subject area means
// every entry is relevant.
func isRelevant(entry types.ExperienceEntry, subject string) bool {
	if subject == "" {
		return true
	}
	text := strings.ToLower(entry.Position + " " + entry.Company)
	return strings.Contains(text, subject)
}
