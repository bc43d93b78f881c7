package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-assessor/internal/types"
)

// Base education points by attained level.
const (
	mastersBasePoints  = 35.0
	bachelorBasePoints = 30.0
)

// ScoreEducation scores the education category (max 40). Base points come
// from the candidate's highest attained level; an in-progress doctorate
// earns a completion bonus on top, capped at the category maximum.
func ScoreEducation(candidate *types.CandidateRecord) types.CategoryScore {
	score := types.CategoryScore{MaxPossible: MaxEducation}
	if candidate == nil || !candidate.HasEducation() {
		score.Details = append(score.Details, "no education entries")
		return score
	}

	highest := HighestEducationLevel(candidate)
	switch {
	case highest >= types.LevelMaster:
		score.Score = mastersBasePoints
		score.Details = append(score.Details, fmt.Sprintf("highest level %s: %.0f base points", highest, mastersBasePoints))
	case highest >= types.LevelBachelor:
		score.Score = bachelorBasePoints
		score.Details = append(score.Details, fmt.Sprintf("highest level %s: %.0f base points", highest, bachelorBasePoints))
	default:
		score.Details = append(score.Details, fmt.Sprintf("highest level %s: below bachelor, 0 base points", highest))
	}

	if bonus, detail := doctoralProgressBonus(candidate); bonus > 0 {
		score.Score += bonus
		score.Details = append(score.Details, detail)
	}

	return score.Clamp()
}

// HighestEducationLevel scans all education entries and returns the best
// classified degree level. Unclassifiable entries rank as LevelNone.
func HighestEducationLevel(candidate *types.CandidateRecord) types.EducationLevel {
	highest := types.LevelNone
	for _, entry := range candidate.Education {
		if level := ClassifyDegree(entryText(entry)); level > highest {
			highest = level
		}
	}
	return highest
}

// ClassifyDegree maps a free-text degree description to the level
// hierarchy using the declarative keyword table.
func ClassifyDegree(text string) types.EducationLevel {
	text = strings.ToLower(text)
	for _, row := range degreeLevelTable {
		for _, kw := range row.Keywords {
			if strings.Contains(text, kw) {
				return row.Level
			}
		}
	}
	return types.LevelNone
}

// doctoralProgressBonus awards extra points when a doctoral-level entry
// exists, scaled by inferred completion. A doctoral entry with no
// completion signal still earns one point.
func doctoralProgressBonus(candidate *types.CandidateRecord) (float64, string) {
	for _, entry := range candidate.Education {
		if ClassifyDegree(entryText(entry)) != types.LevelDoctorate {
			continue
		}
		pct := doctoralCompletion(entry)
		var bonus float64
		switch {
		case pct >= 100:
			bonus = 5
		case pct >= 75:
			bonus = 4
		case pct >= 50:
			bonus = 3
		case pct >= 25:
			bonus = 2
		default:
			bonus = 1
		}
		return bonus, fmt.Sprintf("doctoral progress %d%%: +%.0f bonus", pct, bonus)
	}
	return 0, ""
}

// doctoralCompletion infers a completion percentage from free-text cues on
// the entry. A bare "units" mention with no other cue defaults to 25%.
func doctoralCompletion(entry types.EducationEntry) int {
	text := strings.ToLower(entry.UnitsEarned + " " + entry.GraduationYear + " " + entry.Honors)
	for _, cue := range doctoralCompletionCues {
		for _, kw := range cue.Keywords {
			if strings.Contains(text, kw) {
				return cue.Percent
			}
		}
	}
	if strings.Contains(text, "units") {
		return 25
	}
	return 0
}

func entryText(entry types.EducationEntry) string {
	return strings.Join([]string{entry.Level, entry.Degree, entry.Course}, " ")
}
