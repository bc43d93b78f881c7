package types

// JobPosting represents a job posting with free-text requirement fields.
// It is an immutable input; the requirements parser turns it into a
// ParsedRequirements value once per assessment.
type JobPosting struct {
	PositionTitle           string `json:"position_title"`
	Department              string `json:"department,omitempty"`
	Description             string `json:"description,omitempty"`
	EducationRequirements   string `json:"education_requirements,omitempty"`
	ExperienceRequirements  string `json:"experience_requirements,omitempty"`
	TrainingRequirements    string `json:"training_requirements,omitempty"`
	EligibilityRequirements string `json:"eligibility_requirements,omitempty"`
	SpecialRequirements     string `json:"special_requirements,omitempty"`
	SalaryGrade             int    `json:"salary_grade,omitempty"`
	// Strict forces the penalty-adjusted scoring mode even when the
	// requirement text carries no obligation language.
	Strict bool `json:"strict,omitempty"`
}

// EducationLevel is a rank on the degree hierarchy. Higher values dominate.
type EducationLevel int

// Degree hierarchy, lowest to highest.
const (
	LevelNone      EducationLevel = 0
	LevelSecondary EducationLevel = 1
	LevelCert      EducationLevel = 2
	LevelDiploma   EducationLevel = 3
	LevelAssociate EducationLevel = 4
	LevelBachelor  EducationLevel = 5
	LevelMaster    EducationLevel = 6
	LevelDoctorate EducationLevel = 7
)

// String returns the canonical lowercase name of the level.
func (l EducationLevel) String() string {
	switch l {
	case LevelSecondary:
		return "secondary"
	case LevelCert:
		return "certificate"
	case LevelDiploma:
		return "diploma"
	case LevelAssociate:
		return "associate"
	case LevelBachelor:
		return "bachelor"
	case LevelMaster:
		return "master"
	case LevelDoctorate:
		return "doctorate"
	default:
		return "none"
	}
}

// PositionLevel buckets a role by salary grade.
type PositionLevel string

// Position levels derived from salary grade thresholds.
const (
	PositionEntry  PositionLevel = "entry"
	PositionMid    PositionLevel = "mid"
	PositionSenior PositionLevel = "senior"
)

// SpecialCategory names the role categories subject to the hard
// Master's-degree override in the blending engine.
type SpecialCategory string

// Special role categories.
const (
	SpecialNone               SpecialCategory = ""
	SpecialInstructor1        SpecialCategory = "instructor_1"
	SpecialPartTimeInstructor SpecialCategory = "parttime_instructor"
)

// ParsedRequirements is the structured form of a job posting's free-text
// requirement fields. Parsing the same posting twice yields an identical
// value.
type ParsedRequirements struct {
	MinimumEducation        EducationLevel `json:"minimum_education"`
	RequiredExperienceYears int            `json:"required_experience_years"`
	SubjectArea             string         `json:"subject_area,omitempty"`
	RequiredCertifications  []string       `json:"required_certifications,omitempty"`
	PositionLevel           PositionLevel  `json:"position_level"`
	// Strict selects the penalty-adjusted scoring mode.
	Strict bool `json:"strict"`
	// EducationStrict is set when the education requirement itself uses
	// obligation language; it selects the harsher education penalty.
	EducationStrict bool            `json:"education_strict,omitempty"`
	SpecialCategory SpecialCategory `json:"special_category,omitempty"`
	// RequiresMasters is set when a special-category role additionally
	// demands a Master's-level degree. Only then does the hard override
	// in the blending engine apply.
	RequiresMasters bool `json:"requires_masters,omitempty"`
}
