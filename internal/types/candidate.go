// Package types provides type definitions for structured data used throughout the candidate-assessor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CandidateRecord is a normalized Personal Data Sheet (PDS). Every
// collection is optional; an empty or nil slice means "no data" and is
// never an error.
type CandidateRecord struct {
	ID               string             `json:"id,omitempty"`
	Name             string             `json:"name,omitempty"`
	Education        []EducationEntry   `json:"education,omitempty"`
	Experience       []ExperienceEntry  `json:"experience,omitempty"`
	Training         []TrainingEntry    `json:"training,omitempty"`
	Eligibility      []EligibilityEntry `json:"eligibility,omitempty"`
	Awards           []string           `json:"awards,omitempty"`
	VoluntaryWork    []string           `json:"voluntary_work,omitempty"`
	OtherInformation []string           `json:"other_information,omitempty"`
}

// EducationEntry is one schooling record from the PDS.
type EducationEntry struct {
	Level          string `json:"level,omitempty"`  // e.g. "Graduate Studies", "College"
	Degree         string `json:"degree,omitempty"` // e.g. "Master of Science in Biology"
	Course         string `json:"course,omitempty"`
	Institution    string `json:"institution,omitempty"`
	Honors         string `json:"honors,omitempty"`
	GraduationYear string `json:"graduation_year,omitempty"`
	// UnitsEarned carries free-text completion cues for unfinished degrees,
	// e.g. "completed academic requirements", "24 units", "dissertation stage".
	UnitsEarned string `json:"units_earned,omitempty"`
}

// ExperienceEntry is one work-experience record from the PDS.
type ExperienceEntry struct {
	Position string `json:"position,omitempty"`
	Company  string `json:"company,omitempty"`
	From     string `json:"from,omitempty"` // free-form date text, parsed leniently
	To       string `json:"to,omitempty"`   // free-form date text; "present" resolves to now
}

// TrainingEntry is one learning-and-development record from the PDS.
type TrainingEntry struct {
	Title     string `json:"title,omitempty"`
	Type      string `json:"type,omitempty"`
	Hours     string `json:"hours,omitempty"` // free-form, e.g. "40 hrs"
	Conductor string `json:"conductor,omitempty"`
}

// EligibilityEntry is one civil-service eligibility or professional
// license record from the PDS.
type EligibilityEntry struct {
	Name   string `json:"name,omitempty"`
	Rating string `json:"rating,omitempty"`
	Date   string `json:"date,omitempty"`
}

// HasEducation reports whether the record carries any education data.
func (c *CandidateRecord) HasEducation() bool {
	return len(c.Education) > 0
}

// EligibilityStrings collects every eligibility-bearing string on the
// record: eligibility names plus any certification text in other info.
func (c *CandidateRecord) EligibilityStrings() []string {
	out := make([]string, 0, len(c.Eligibility)+len(c.OtherInformation))
	for _, e := range c.Eligibility {
		if e.Name != "" {
			out = append(out, e.Name)
		}
	}
	out = append(out, c.OtherInformation...)
	return out
}

// AccomplishmentStrings collects every accomplishment-bearing string on
// the record: awards, voluntary work, other information, and education
// honors.
func (c *CandidateRecord) AccomplishmentStrings() []string {
	out := make([]string, 0, len(c.Awards)+len(c.VoluntaryWork)+len(c.OtherInformation))
	out = append(out, c.Awards...)
	out = append(out, c.VoluntaryWork...)
	out = append(out, c.OtherInformation...)
	for _, e := range c.Education {
		if e.Honors != "" {
			out = append(out, e.Honors)
		}
	}
	return out
}
