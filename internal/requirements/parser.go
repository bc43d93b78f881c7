package requirements

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/candidate-assessor/internal/types"
)

var (
	experienceYearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*(?:year|yr)s?`)
	noExperiencePattern    = regexp.MustCompile(`no experience|fresh graduate|fresh grad|entry[- ]level`)
	instructorOnePattern   = regexp.MustCompile(`instructor\s*(?:1|i)\b`)
	partTimePattern        = regexp.MustCompile(`part[- ]?time|adjunct|visiting`)
)

// Parser extracts structured requirements from free-text job posting
// fields. The zero-value Options use the built-in keyword tables; callers
// can override any table to tune classification without code changes.
type Parser struct {
	opts Options
}

// Options overrides the parser's keyword tables. Nil slices fall back to
// the defaults.
type Options struct {
	Certifications  []string
	Subjects        []string
	ObligationWords []string
	TeachingTitles  []string
}

// NewParser creates a Parser with the given options.
func NewParser(opts Options) *Parser {
	if opts.Certifications == nil {
		opts.Certifications = defaultCertifications
	}
	if opts.Subjects == nil {
		opts.Subjects = defaultSubjects
	}
	if opts.ObligationWords == nil {
		opts.ObligationWords = defaultObligationWords
	}
	if opts.TeachingTitles == nil {
		opts.TeachingTitles = defaultTeachingTitles
	}
	return &Parser{opts: opts}
}

// Parse turns a job posting into ParsedRequirements. Parsing is pure text
// analysis: the same posting always produces an identical value.
func (p *Parser) Parse(job *types.JobPosting) *types.ParsedRequirements {
	title := strings.ToLower(FlattenText(job.PositionTitle))
	eduText := strings.ToLower(FlattenText(job.EducationRequirements))
	expText := strings.ToLower(FlattenText(job.ExperienceRequirements))
	eligText := strings.ToLower(FlattenText(job.EligibilityRequirements))
	specialText := strings.ToLower(FlattenText(job.SpecialRequirements))

	req := &types.ParsedRequirements{
		MinimumEducation:        classifyEducationLevel(eduText),
		RequiredExperienceYears: extractExperienceYears(expText),
		SubjectArea:             p.findSubjectArea(eduText, title),
		RequiredCertifications:  p.matchCertifications(eligText),
		PositionLevel:           positionLevelFromGrade(job.SalaryGrade),
		Strict:                  job.Strict || p.isStrict(title, eduText, expText, eligText, specialText),
	}

	req.EducationStrict = containsAny(eduText, p.opts.ObligationWords) ||
		(containsAny(title, p.opts.TeachingTitles) && containsAny(eduText, defaultAdvancedDegreeWords))

	req.SpecialCategory = specialCategory(title)
	if req.SpecialCategory != types.SpecialNone {
		req.RequiresMasters = containsAny(eduText, defaultAdvancedDegreeWords)
	}

	return req
}

// isStrict reports whether the posting uses explicit obligation language,
// or is an academic teaching role with an advanced-degree requirement.
func (p *Parser) isStrict(title, eduText string, otherFields ...string) bool {
	if containsAny(eduText, p.opts.ObligationWords) {
		return true
	}
	for _, field := range otherFields {
		if containsAny(field, p.opts.ObligationWords) {
			return true
		}
	}
	return containsAny(title, p.opts.TeachingTitles) && containsAny(eduText, defaultAdvancedDegreeWords)
}

// classifyEducationLevel scans keyword sets in priority order, defaulting
// to Bachelor.
func classifyEducationLevel(eduText string) types.EducationLevel {
	for _, entry := range defaultLevelKeywords {
		if containsAny(eduText, entry.Keywords) {
			return entry.Level
		}
	}
	return types.LevelBachelor
}

// extractExperienceYears pulls a year count out of the experience text.
// No text at all means no requirement; text that mentions experience but
// no number defaults to one year.
func extractExperienceYears(expText string) int {
	if strings.TrimSpace(expText) == "" {
		return 0
	}
	if noExperiencePattern.MatchString(expText) {
		return 0
	}
	if m := experienceYearsPattern.FindStringSubmatch(expText); m != nil {
		years, err := strconv.Atoi(m[1])
		if err == nil {
			return years
		}
	}
	return 1
}

func (p *Parser) matchCertifications(eligText string) []string {
	var matched []string
	for _, cert := range p.opts.Certifications {
		if strings.Contains(eligText, cert) {
			matched = append(matched, cert)
		}
	}
	return matched
}

func (p *Parser) findSubjectArea(eduText, title string) string {
	for _, subject := range p.opts.Subjects {
		if strings.Contains(eduText, subject) {
			return subject
		}
	}
	for _, subject := range p.opts.Subjects {
		if strings.Contains(title, subject) {
			return subject
		}
	}
	return ""
}

func positionLevelFromGrade(grade int) types.PositionLevel {
	switch {
	case grade >= seniorSalaryGrade:
		return types.PositionSenior
	case grade >= midSalaryGrade:
		return types.PositionMid
	default:
		return types.PositionEntry
	}
}

// specialCategory flags the two role categories subject to the hard
// Master's override downstream.
func specialCategory(title string) types.SpecialCategory {
	if partTimePattern.MatchString(title) && strings.Contains(title, "instructor") {
		return types.SpecialPartTimeInstructor
	}
	if instructorOnePattern.MatchString(title) {
		return types.SpecialInstructor1
	}
	if strings.Contains(title, "instructor") && strings.Contains(title, "1") {
		return types.SpecialInstructor1
	}
	return types.SpecialNone
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// FlattenText strips any pasted HTML markup from a free-text field,
// returning plain text. Plain input passes through unchanged.
func FlattenText(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	text := doc.Text()
	if strings.TrimSpace(text) == "" {
		return s
	}
	return strings.Join(strings.Fields(text), " ")
}
