package pds

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-assessor/internal/types"
)

// Collection key synonyms, tried in order. PDS exports from different
// systems disagree on field names; all synonym handling lives here so the
// scoring packages only ever see the normalized schema.
var (
	educationKeys   = []string{"educational_background", "education_data", "education"}
	experienceKeys  = []string{"work_experience", "experience_data", "experience"}
	trainingKeys    = []string{"learning_development", "training_data", "training", "trainings"}
	eligibilityKeys = []string{"civil_service_eligibility", "eligibility_data", "eligibility", "eligibilities"}
	awardsKeys      = []string{"awards", "recognitions", "special_skills_hobbies"}
	voluntaryKeys   = []string{"voluntary_work", "voluntary_work_data", "volunteer_work"}
	otherInfoKeys   = []string{"other_information", "other_info", "others"}
)

// Normalize converts a raw JSON-like candidate mapping into a
// CandidateRecord, resolving field-name synonyms in a fixed fallback
// order. Malformed or missing collections degrade to empty slices and a
// diagnostic; Normalize never fails.
func Normalize(raw map[string]any) (*types.CandidateRecord, []string) {
	var diags []string
	record := &types.CandidateRecord{
		ID:   stringField(raw, "id", "candidate_id"),
		Name: stringField(raw, "name", "full_name"),
	}

	for _, item := range collection(raw, educationKeys, &diags) {
		record.Education = append(record.Education, types.EducationEntry{
			Level:          stringField(item, "level", "education_level"),
			Degree:         stringField(item, "degree", "degree_course", "basic_education_degree_course"),
			Course:         stringField(item, "course", "field_of_study", "major"),
			Institution:    stringField(item, "institution", "school", "school_name"),
			Honors:         stringField(item, "honors", "scholarship_honors", "academic_honors"),
			GraduationYear: stringField(item, "graduation_year", "year_graduated"),
			UnitsEarned:    stringField(item, "units_earned", "highest_level_units", "units"),
		})
	}

	for _, item := range collection(raw, experienceKeys, &diags) {
		record.Experience = append(record.Experience, types.ExperienceEntry{
			Position: stringField(item, "position", "position_title", "title"),
			Company:  stringField(item, "company", "agency", "department_agency_office_company"),
			From:     stringField(item, "from", "date_from", "inclusive_date_from", "start_date"),
			To:       stringField(item, "to", "date_to", "inclusive_date_to", "end_date"),
		})
	}

	for _, item := range collection(raw, trainingKeys, &diags) {
		record.Training = append(record.Training, types.TrainingEntry{
			Title:     stringField(item, "title", "training_title", "seminar_title"),
			Type:      stringField(item, "type", "type_of_ld"),
			Hours:     stringField(item, "hours", "number_of_hours", "no_of_hours"),
			Conductor: stringField(item, "conductor", "conducted_by", "sponsored_by"),
		})
	}

	for _, item := range collection(raw, eligibilityKeys, &diags) {
		record.Eligibility = append(record.Eligibility, types.EligibilityEntry{
			Name:   stringField(item, "name", "eligibility", "career_service", "title"),
			Rating: stringField(item, "rating"),
			Date:   stringField(item, "date", "date_of_examination"),
		})
	}

	record.Awards = stringList(raw, awardsKeys, &diags)
	record.VoluntaryWork = stringList(raw, voluntaryKeys, &diags)
	record.OtherInformation = stringList(raw, otherInfoKeys, &diags)

	return record, diags
}

// resolve returns the first present key's value from the fallback order.
func resolve(raw map[string]any, keys []string) (any, bool) {
	for _, key := range keys {
		if v, ok := raw[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// collection extracts a list of item mappings for the given synonym set.
// Entries that are not objects are skipped with a diagnostic.
func collection(raw map[string]any, keys []string, diags *[]string) []map[string]any {
	v, ok := resolve(raw, keys)
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		*diags = append(*diags, fmt.Sprintf("field %q is not a list, ignoring", keys[0]))
		return nil
	}
	items := make([]map[string]any, 0, len(list))
	for i, elem := range list {
		item, ok := elem.(map[string]any)
		if !ok {
			*diags = append(*diags, fmt.Sprintf("entry %d of %q is not an object, skipping", i, keys[0]))
			continue
		}
		items = append(items, item)
	}
	return items
}

// stringList extracts a list of strings for the given synonym set.
// Non-string elements that are objects fall back to their "title" or
// "name" field; anything else is skipped.
func stringList(raw map[string]any, keys []string, diags *[]string) []string {
	v, ok := resolve(raw, keys)
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []any:
		out := make([]string, 0, len(list))
		for _, elem := range list {
			switch e := elem.(type) {
			case string:
				if s := strings.TrimSpace(e); s != "" {
					out = append(out, s)
				}
			case map[string]any:
				if s := stringField(e, "title", "name", "description"); s != "" {
					out = append(out, s)
				}
			default:
				*diags = append(*diags, fmt.Sprintf("ignoring non-string entry in %q", keys[0]))
			}
		}
		return out
	case string:
		if s := strings.TrimSpace(list); s != "" {
			return []string{s}
		}
		return nil
	default:
		*diags = append(*diags, fmt.Sprintf("field %q has unexpected type %T, ignoring", keys[0], v))
		return nil
	}
}

// stringField returns the first present key's value coerced to a string.
// Numbers are formatted; other types resolve to "".
func stringField(raw map[string]any, keys ...string) string {
	v, ok := resolve(raw, keys)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%g", s)
	case int:
		return fmt.Sprintf("%d", s)
	default:
		return ""
	}
}
