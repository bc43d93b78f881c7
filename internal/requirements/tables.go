// Package requirements parses free-text job posting fields into
// structured, deterministic requirement values.
package requirements

import "github.com/jonathan/candidate-assessor/internal/types"

// levelKeywords maps keyword sets to education levels, evaluated in
// priority order (highest degree first). The data is deliberately kept
// separate from control flow so it can be tuned without code changes.
type levelKeywords struct {
	Level    types.EducationLevel
	Keywords []string
}

var defaultLevelKeywords = []levelKeywords{
	{types.LevelDoctorate, []string{"doctorate", "doctoral", "phd", "ph.d", "ph. d", "ed.d", "dr."}},
	{types.LevelMaster, []string{"master", "masteral", "mba", "m.s.", "m.a.", "msc", "graduate degree"}},
	{types.LevelBachelor, []string{"bachelor", "college degree", "b.s.", "b.a.", "bs ", "ba ", "baccalaureate"}},
	{types.LevelAssociate, []string{"associate", "diploma", "vocational", "2-year course", "two-year course"}},
}

// defaultCertifications are recognized professional certification phrases
// matched against eligibility-requirement text.
var defaultCertifications = []string{
	"ra 1080",
	"csc professional",
	"csc sub-professional",
	"civil service professional",
	"civil service sub-professional",
	"civil service eligibility",
	"career service professional",
	"board exam",
	"board passer",
	"bar exam",
	"bar passer",
	"prc license",
	"professional license",
	"cpa",
	"let passer",
	"licensure examination for teachers",
	"driver's license",
}

// defaultSubjects is the fixed subject-area list scanned against the
// education requirement text, falling back to the position title.
var defaultSubjects = []string{
	"information technology",
	"computer science",
	"computer engineering",
	"information systems",
	"education",
	"engineering",
	"accounting",
	"accountancy",
	"business administration",
	"public administration",
	"mathematics",
	"nursing",
	"criminology",
	"agriculture",
	"psychology",
	"biology",
	"chemistry",
	"physics",
	"english",
	"communication",
	"economics",
	"hospitality management",
	"tourism",
	"social work",
}

// defaultObligationWords signal a strict requirement set.
var defaultObligationWords = []string{
	"required",
	"must have",
	"mandatory",
	"essential",
	"prerequisite",
}

// defaultTeachingTitles indicate an academic teaching role; combined with
// an advanced-degree keyword in the education text they also imply strict
// mode.
var defaultTeachingTitles = []string{
	"instructor",
	"professor",
	"teacher",
	"faculty",
	"lecturer",
}

// defaultAdvancedDegreeWords are the advanced-degree cues used by the
// teaching-role strictness rule and special-category detection.
var defaultAdvancedDegreeWords = []string{
	"master",
	"masteral",
	"doctorate",
	"doctoral",
	"phd",
	"ph.d",
}

// Salary grade thresholds for position level.
const (
	seniorSalaryGrade = 24
	midSalaryGrade    = 15
)
