package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/candidate-assessor/internal/types"
)

// defaultTrainingHours is credited when an entry has a title but no
// parsable hour count.
const defaultTrainingHours = 8

var hoursPattern = regexp.MustCompile(`(\d+)`)

// ScoreTraining scores the training category (max 10) from the summed
// declared hours across all entries.
func ScoreTraining(candidate *types.CandidateRecord) types.CategoryScore {
	score := types.CategoryScore{MaxPossible: MaxTraining}
	if candidate == nil || len(candidate.Training) == 0 {
		score.Details = append(score.Details, "no training entries")
		return score
	}

	totalHours := 0
	for _, entry := range candidate.Training {
		totalHours += parseTrainingHours(entry)
	}

	score.Score = trainingTierPoints(totalHours)
	score.Details = append(score.Details,
		fmt.Sprintf("%d total training hours across %d entries", totalHours, len(candidate.Training)))

	return score.Clamp()
}

// parseTrainingHours extracts an integer hour count from free text like
// "40 hrs". An entry with a title but no parsable hours defaults to 8.
func parseTrainingHours(entry types.TrainingEntry) int {
	if m := hoursPattern.FindStringSubmatch(entry.Hours); m != nil {
		if hours, err := strconv.Atoi(m[1]); err == nil && hours > 0 {
			return hours
		}
	}
	if strings.TrimSpace(entry.Title) != "" {
		return defaultTrainingHours
	}
	return 0
}

// trainingTierPoints maps summed hours to points: a 5-point base at 40
// hours plus one bonus point per additional 8 hours, bonus capped at 5.
func trainingTierPoints(hours int) float64 {
	switch {
	case hours >= 40:
		bonus := math.Floor(float64(hours-40) / 8.0)
		if bonus > 5 {
			bonus = 5
		}
		return 5 + bonus
	case hours >= 20:
		return 3
	case hours >= 8:
		return 1
	default:
		return 0
	}
}
