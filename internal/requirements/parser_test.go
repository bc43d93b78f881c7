package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-assessor/internal/types"
)

func TestParse_EducationLevel(t *testing.T) {
	tests := []struct {
		name    string
		eduText string
		want    types.EducationLevel
	}{
		{
			name:    "doctorate",
			eduText: "Doctorate degree in relevant field",
			want:    types.LevelDoctorate,
		},
		{
			name:    "phd spelled out",
			eduText: "Ph.D in Computer Science",
			want:    types.LevelDoctorate,
		},
		{
			name:    "masters",
			eduText: "Master's degree in Education",
			want:    types.LevelMaster,
		},
		{
			name:    "bachelors",
			eduText: "Bachelor's degree in any field",
			want:    types.LevelBachelor,
		},
		{
			name:    "associate",
			eduText: "Completion of a two-year course",
			want:    types.LevelAssociate,
		},
		{
			name:    "highest level wins",
			eduText: "Master's degree preferred, Bachelor's degree accepted",
			want:    types.LevelMaster,
		},
		{
			name:    "unclassifiable defaults to bachelor",
			eduText: "Relevant degree",
			want:    types.LevelBachelor,
		},
	}

	parser := NewParser(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := parser.Parse(&types.JobPosting{
				PositionTitle:         "Clerk",
				EducationRequirements: tt.eduText,
			})
			assert.Equal(t, tt.want, req.MinimumEducation)
		})
	}
}

func TestParse_ExperienceYears(t *testing.T) {
	tests := []struct {
		name    string
		expText string
		want    int
	}{
		{
			name:    "no requirement stated",
			expText: "",
			want:    0,
		},
		{
			name:    "explicit years",
			expText: "At least 3 years of relevant experience",
			want:    3,
		},
		{
			name:    "plus years",
			expText: "5+ years experience",
			want:    5,
		},
		{
			name:    "abbreviated yrs",
			expText: "2 yrs experience in office administration",
			want:    2,
		},
		{
			name:    "fresh graduates welcome",
			expText: "Fresh graduates are welcome to apply",
			want:    0,
		},
		{
			name:    "entry level",
			expText: "This is an entry-level position",
			want:    0,
		},
		{
			name:    "experience mentioned without number",
			expText: "Relevant work experience",
			want:    1,
		},
	}

	parser := NewParser(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := parser.Parse(&types.JobPosting{
				PositionTitle:          "Clerk",
				ExperienceRequirements: tt.expText,
			})
			assert.Equal(t, tt.want, req.RequiredExperienceYears)
		})
	}
}

func TestParse_SubjectArea(t *testing.T) {
	parser := NewParser(Options{})

	// Education text scanned first
	req := parser.Parse(&types.JobPosting{
		PositionTitle:         "Instructor 1 - Mathematics",
		EducationRequirements: "Bachelor's degree in Computer Science",
	})
	assert.Equal(t, "computer science", req.SubjectArea)

	// Falls back to title when the education text has no subject
	req = parser.Parse(&types.JobPosting{
		PositionTitle:         "Instructor 1 - Mathematics",
		EducationRequirements: "Bachelor's degree",
	})
	assert.Equal(t, "mathematics", req.SubjectArea)

	// Neither mentions a known subject
	req = parser.Parse(&types.JobPosting{
		PositionTitle:         "Administrative Aide",
		EducationRequirements: "Bachelor's degree in any field",
	})
	assert.Empty(t, req.SubjectArea)
}

func TestParse_Certifications(t *testing.T) {
	parser := NewParser(Options{})
	req := parser.Parse(&types.JobPosting{
		PositionTitle:           "Teacher I",
		EligibilityRequirements: "RA 1080 or LET passer; Civil Service Eligibility accepted",
	})

	assert.Contains(t, req.RequiredCertifications, "ra 1080")
	assert.Contains(t, req.RequiredCertifications, "let passer")
	assert.Contains(t, req.RequiredCertifications, "civil service eligibility")
}

func TestParse_PositionLevel(t *testing.T) {
	tests := []struct {
		grade int
		want  types.PositionLevel
	}{
		{0, types.PositionEntry},
		{11, types.PositionEntry},
		{14, types.PositionEntry},
		{15, types.PositionMid},
		{23, types.PositionMid},
		{24, types.PositionSenior},
		{30, types.PositionSenior},
	}

	parser := NewParser(Options{})
	for _, tt := range tests {
		req := parser.Parse(&types.JobPosting{PositionTitle: "Any", SalaryGrade: tt.grade})
		assert.Equal(t, tt.want, req.PositionLevel, "grade %d", tt.grade)
	}
}

func TestParse_StrictMode(t *testing.T) {
	parser := NewParser(Options{})

	tests := []struct {
		name string
		job  types.JobPosting
		want bool
	}{
		{
			name: "obligation word in education text",
			job: types.JobPosting{
				PositionTitle:         "Accountant",
				EducationRequirements: "Bachelor's degree in Accountancy required",
			},
			want: true,
		},
		{
			name: "obligation word in eligibility text",
			job: types.JobPosting{
				PositionTitle:           "Accountant",
				EducationRequirements:   "Bachelor's degree in Accountancy",
				EligibilityRequirements: "CPA license is mandatory",
			},
			want: true,
		},
		{
			name: "teaching role with advanced degree",
			job: types.JobPosting{
				PositionTitle:         "Instructor 1",
				EducationRequirements: "Master's degree in relevant field",
			},
			want: true,
		},
		{
			name: "explicit strict flag on the posting",
			job: types.JobPosting{
				PositionTitle:         "Clerk",
				EducationRequirements: "Bachelor's degree preferred",
				Strict:                true,
			},
			want: true,
		},
		{
			name: "relaxed posting",
			job: types.JobPosting{
				PositionTitle:         "Clerk",
				EducationRequirements: "Bachelor's degree preferred",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := parser.Parse(&tt.job)
			assert.Equal(t, tt.want, req.Strict)
		})
	}
}

func TestParse_EducationStrict(t *testing.T) {
	parser := NewParser(Options{})

	// Obligation language directly in education text
	req := parser.Parse(&types.JobPosting{
		PositionTitle:         "Accountant",
		EducationRequirements: "Bachelor's degree in Accountancy required",
	})
	assert.True(t, req.EducationStrict)

	// Strict overall but not on education: obligation language elsewhere
	req = parser.Parse(&types.JobPosting{
		PositionTitle:           "Accountant",
		EducationRequirements:   "Bachelor's degree in Accountancy",
		EligibilityRequirements: "CPA license is mandatory",
	})
	assert.True(t, req.Strict)
	assert.False(t, req.EducationStrict)
}

func TestParse_SpecialCategory(t *testing.T) {
	parser := NewParser(Options{})

	tests := []struct {
		name         string
		title        string
		eduText      string
		wantCategory types.SpecialCategory
		wantMasters  bool
	}{
		{
			name:         "instructor 1 with masters requirement",
			title:        "Instructor 1",
			eduText:      "Master's degree in relevant field required",
			wantCategory: types.SpecialInstructor1,
			wantMasters:  true,
		},
		{
			name:         "instructor I roman numeral",
			title:        "Instructor I",
			eduText:      "Master's degree",
			wantCategory: types.SpecialInstructor1,
			wantMasters:  true,
		},
		{
			name:         "part-time instructor",
			title:        "Part-Time Instructor",
			eduText:      "Masteral units preferred",
			wantCategory: types.SpecialPartTimeInstructor,
			wantMasters:  true,
		},
		{
			name:         "adjunct instructor",
			title:        "Adjunct Instructor",
			eduText:      "Doctorate preferred",
			wantCategory: types.SpecialPartTimeInstructor,
			wantMasters:  true,
		},
		{
			name:         "instructor 1 without masters requirement",
			title:        "Instructor 1",
			eduText:      "Bachelor's degree in relevant field",
			wantCategory: types.SpecialInstructor1,
			wantMasters:  false,
		},
		{
			name:         "ordinary role",
			title:        "Administrative Officer",
			eduText:      "Master's degree",
			wantCategory: types.SpecialNone,
			wantMasters:  false,
		},
		{
			name:         "instructor 2 is not special",
			title:        "Instructor 2",
			eduText:      "Master's degree",
			wantCategory: types.SpecialNone,
			wantMasters:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := parser.Parse(&types.JobPosting{
				PositionTitle:         tt.title,
				EducationRequirements: tt.eduText,
			})
			assert.Equal(t, tt.wantCategory, req.SpecialCategory)
			assert.Equal(t, tt.wantMasters, req.RequiresMasters)
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	parser := NewParser(Options{})
	job := &types.JobPosting{
		PositionTitle:           "Instructor 1 - Computer Science",
		EducationRequirements:   "Master's degree in Computer Science required",
		ExperienceRequirements:  "2 years teaching experience",
		EligibilityRequirements: "RA 1080",
		SalaryGrade:             12,
	}

	first := parser.Parse(job)
	second := parser.Parse(job)
	assert.Equal(t, first, second)
}

func TestParse_CustomTables(t *testing.T) {
	parser := NewParser(Options{
		Subjects: []string{"astrophysics"},
	})

	req := parser.Parse(&types.JobPosting{
		PositionTitle:         "Researcher",
		EducationRequirements: "Bachelor's degree in Astrophysics",
	})
	assert.Equal(t, "astrophysics", req.SubjectArea)

	// Default subject list no longer applies
	req = parser.Parse(&types.JobPosting{
		PositionTitle:         "Researcher",
		EducationRequirements: "Bachelor's degree in Computer Science",
	})
	assert.Empty(t, req.SubjectArea)
}

func TestFlattenText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "Bachelor's degree in any field",
			want:  "Bachelor's degree in any field",
		},
		{
			name:  "html stripped",
			input: "<p>Bachelor's degree <strong>required</strong></p>",
			want:  "Bachelor's degree required",
		},
		{
			name:  "list items flattened",
			input: "<ul>\n<li>2 years experience</li>\n<li>CPA license</li>\n</ul>",
			want:  "2 years experience CPA license",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FlattenText(tt.input))
		})
	}
}

func TestParse_HTMLRequirements(t *testing.T) {
	parser := NewParser(Options{})
	req := parser.Parse(&types.JobPosting{
		PositionTitle:          "Accountant",
		EducationRequirements:  "<p>Bachelor's degree in <b>Accountancy</b> required</p>",
		ExperienceRequirements: "<ul><li>3 years experience</li></ul>",
	})

	require.NotNil(t, req)
	assert.Equal(t, types.LevelBachelor, req.MinimumEducation)
	assert.Equal(t, "accountancy", req.SubjectArea)
	assert.Equal(t, 3, req.RequiredExperienceYears)
	assert.True(t, req.Strict)
}
