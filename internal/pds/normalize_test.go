package pds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_CanonicalFields(t *testing.T) {
	raw := map[string]any{
		"id":   "cand-001",
		"name": "Juan dela Cruz",
		"education": []any{
			map[string]any{
				"level":           "College",
				"degree":          "BS Computer Science",
				"institution":     "State University",
				"honors":          "Cum Laude",
				"graduation_year": float64(2015),
			},
		},
		"experience": []any{
			map[string]any{
				"position": "Instructor",
				"company":  "City College",
				"from":     "2015-06-01",
				"to":       "present",
			},
		},
		"training": []any{
			map[string]any{"title": "Data Privacy Seminar", "hours": "16"},
		},
		"eligibility": []any{
			map[string]any{"name": "Civil Service Eligibility - Professional", "rating": "85.5"},
		},
		"awards": []any{"Outstanding Employee 2020"},
	}

	record, diags := Normalize(raw)
	assert.Empty(t, diags)

	assert.Equal(t, "cand-001", record.ID)
	assert.Equal(t, "Juan dela Cruz", record.Name)

	require.Len(t, record.Education, 1)
	assert.Equal(t, "BS Computer Science", record.Education[0].Degree)
	assert.Equal(t, "Cum Laude", record.Education[0].Honors)
	assert.Equal(t, "2015", record.Education[0].GraduationYear)

	require.Len(t, record.Experience, 1)
	assert.Equal(t, "Instructor", record.Experience[0].Position)

	require.Len(t, record.Training, 1)
	assert.Equal(t, "16", record.Training[0].Hours)

	require.Len(t, record.Eligibility, 1)
	assert.Equal(t, "85.5", record.Eligibility[0].Rating)

	assert.Equal(t, []string{"Outstanding Employee 2020"}, record.Awards)
}

func TestNormalize_SynonymKeys(t *testing.T) {
	raw := map[string]any{
		"candidate_id": "cand-002",
		"educational_background": []any{
			map[string]any{
				"education_level":     "Graduate Studies",
				"degree_course":       "Master of Arts in Education",
				"school_name":         "Normal University",
				"year_graduated":      "2019",
				"highest_level_units": "completed",
			},
		},
		"work_experience": []any{
			map[string]any{
				"position_title":                 "Teacher II",
				"department_agency_office_company": "DepEd",
				"inclusive_date_from":            "2010-06-01",
				"inclusive_date_to":              "2015-03-31",
			},
		},
		"learning_development": []any{
			map[string]any{"seminar_title": "K-12 Curriculum Training", "number_of_hours": float64(40)},
		},
		"civil_service_eligibility": []any{
			map[string]any{"career_service": "RA 1080 (Teacher Board Exam)"},
		},
	}

	record, diags := Normalize(raw)
	assert.Empty(t, diags)

	assert.Equal(t, "cand-002", record.ID)

	require.Len(t, record.Education, 1)
	assert.Equal(t, "Graduate Studies", record.Education[0].Level)
	assert.Equal(t, "Master of Arts in Education", record.Education[0].Degree)
	assert.Equal(t, "completed", record.Education[0].UnitsEarned)

	require.Len(t, record.Experience, 1)
	assert.Equal(t, "Teacher II", record.Experience[0].Position)
	assert.Equal(t, "DepEd", record.Experience[0].Company)

	require.Len(t, record.Training, 1)
	assert.Equal(t, "40", record.Training[0].Hours)

	require.Len(t, record.Eligibility, 1)
	assert.Equal(t, "RA 1080 (Teacher Board Exam)", record.Eligibility[0].Name)
}

func TestNormalize_SynonymPriorityOrder(t *testing.T) {
	// When both the preferred and fallback key are present, the first in
	// the fallback order wins.
	raw := map[string]any{
		"educational_background": []any{
			map[string]any{"degree": "From Preferred Key"},
		},
		"education": []any{
			map[string]any{"degree": "From Fallback Key"},
		},
	}

	record, _ := Normalize(raw)
	require.Len(t, record.Education, 1)
	assert.Equal(t, "From Preferred Key", record.Education[0].Degree)
}

func TestNormalize_MalformedCollections(t *testing.T) {
	raw := map[string]any{
		"education":  "not a list",
		"experience": []any{"not an object", map[string]any{"position": "Clerk"}},
	}

	record, diags := Normalize(raw)

	assert.Empty(t, record.Education)
	require.Len(t, record.Experience, 1)
	assert.Equal(t, "Clerk", record.Experience[0].Position)

	// Both problems surface as diagnostics
	assert.Len(t, diags, 2)
}

func TestNormalize_EmptyInput(t *testing.T) {
	record, diags := Normalize(map[string]any{})

	assert.Empty(t, diags)
	assert.Empty(t, record.Education)
	assert.Empty(t, record.Experience)
	assert.False(t, record.HasEducation())
}

func TestNormalize_StringListObjects(t *testing.T) {
	raw := map[string]any{
		"awards": []any{
			"Dean's Lister",
			map[string]any{"title": "Best Thesis Award"},
			float64(42),
		},
	}

	record, diags := Normalize(raw)

	assert.Equal(t, []string{"Dean's Lister", "Best Thesis Award"}, record.Awards)
	assert.Len(t, diags, 1)
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := map[string]any{
		"id": "cand-003",
		"education_data": []any{
			map[string]any{"degree": "BS Accountancy"},
		},
	}

	first, _ := Normalize(raw)
	second, _ := Normalize(raw)
	assert.Equal(t, first, second)
}
