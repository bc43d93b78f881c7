// Package scoring computes the five rule-based category scores from a
// normalized candidate record and parsed job requirements. Every scorer
// degrades to a zero or minimum score on missing or malformed data; none
// of them ever returns an error for data shape.
package scoring

import "github.com/jonathan/candidate-assessor/internal/types"

// Category maximums. They sum to 85; the remaining 15 points of the final
// percentage are reserved for manually entered interview/aptitude scores.
const (
	MaxEducation       = 40.0
	MaxExperience      = 20.0
	MaxTraining        = 10.0
	MaxEligibility     = 10.0
	MaxAccomplishments = 5.0
)

// degreeLevelKeywords classifies free-text degree descriptions onto the
// level hierarchy. Ordered highest-first so the strongest match wins.
type degreeLevelKeywords struct {
	Level    types.EducationLevel
	Keywords []string
}

var degreeLevelTable = []degreeLevelKeywords{
	{types.LevelDoctorate, []string{"doctor", "doctoral", "doctorate", "phd", "ph.d", "ed.d", "dba"}},
	{types.LevelMaster, []string{"master", "masteral", "mba", "m.s.", "m.a.", "msc"}},
	{types.LevelBachelor, []string{"bachelor", "b.s.", "b.a.", "bs in", "ba in", "ab in", "college graduate"}},
	{types.LevelAssociate, []string{"associate"}},
	{types.LevelDiploma, []string{"diploma", "vocational"}},
	{types.LevelCert, []string{"certificate", "certification course"}},
	{types.LevelSecondary, []string{"high school", "secondary"}},
}

// keywordCategory pairs a recognized category with the keyword set that
// identifies it. Tables are ordered so matching is deterministic.
type keywordCategory struct {
	Name     string
	Keywords []string
}

// eligibilityTable lists recognized eligibility categories. A single
// match in any category earns the full eligibility score.
var eligibilityTable = []keywordCategory{
	{"RA 1080", []string{"ra 1080", "ra1080", "republic act 1080"}},
	{"CSC Exam", []string{"csc", "civil service", "career service"}},
	{"BAR Exam", []string{"bar exam", "bar passer", "attorney", "lawyer"}},
	{"BOARD Exam", []string{"board exam", "board passer", "prc", "licensure", "licensed"}},
}

// accomplishmentTable lists recognized accomplishment categories. Any
// match earns the full accomplishments score.
var accomplishmentTable = []keywordCategory{
	{"CSC Topnotcher", []string{"csc topnotcher", "civil service top"}},
	{"Board/Bar Topnotcher", []string{"topnotcher", "top notcher", "placer"}},
	{"Honor Graduates", []string{"cum laude", "magna cum laude", "summa cum laude", "honor graduate", "with honors", "academic distinction"}},
	{"Citations", []string{"citation", "cited"}},
	{"Recognitions", []string{"recognition", "award", "awardee", "outstanding"}},
}

// doctoralCompletionCues map completion percentages to their free-text
// cues, checked highest-first.
type completionCue struct {
	Percent  int
	Keywords []string
}

var doctoralCompletionCues = []completionCue{
	{100, []string{"completed", "graduate", "graduated", "conferred"}},
	{75, []string{"75%", "dissertation"}},
	{50, []string{"50%", "comprehensive"}},
	{25, []string{"25%"}},
}
