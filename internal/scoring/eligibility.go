package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-assessor/internal/types"
)

// ScoreEligibility scores the eligibility category (max 10). The rule is
// binary: any single recognized eligibility earns full credit.
func ScoreEligibility(candidate *types.CandidateRecord) types.CategoryScore {
	score := types.CategoryScore{MaxPossible: MaxEligibility}
	if candidate == nil {
		score.Details = append(score.Details, "no eligibility entries")
		return score
	}

	for _, raw := range candidate.EligibilityStrings() {
		text := strings.ToLower(raw)
		for _, category := range eligibilityTable {
			for _, kw := range category.Keywords {
				if strings.Contains(text, kw) {
					score.Score = MaxEligibility
					score.Details = append(score.Details,
						fmt.Sprintf("matched %s via %q", category.Name, raw))
					return score
				}
			}
		}
	}

	score.Details = append(score.Details, "no recognized eligibility")
	return score
}

// ScoreAccomplishments scores the accomplishments category (max 5). Like
// eligibility, a single recognized accomplishment earns full credit.
func ScoreAccomplishments(candidate *types.CandidateRecord) types.CategoryScore {
	score := types.CategoryScore{MaxPossible: MaxAccomplishments}
	if candidate == nil {
		score.Details = append(score.Details, "no accomplishment entries")
		return score
	}

	for _, raw := range candidate.AccomplishmentStrings() {
		text := strings.ToLower(raw)
		for _, category := range accomplishmentTable {
			for _, kw := range category.Keywords {
				if strings.Contains(text, kw) {
					score.Score = MaxAccomplishments
					score.Details = append(score.Details,
						fmt.Sprintf("matched %s via %q", category.Name, raw))
					return score
				}
			}
		}
	}

	score.Details = append(score.Details, "no recognized accomplishments")
	return score
}
