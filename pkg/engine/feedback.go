package engine

import (
	"fmt"
	"strings"
)

// Feedback carries human-readable suggestions derived from the analysis.
type Feedback struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	ATSTips      []string `json:"atsTips"`
}

const (
	strengthExcellent = "Excellent section structure and keyword density."
	strengthGoodStart = "Good start, but needs more specific technical keywords."

	excellentScore = 80
	goodScore      = 50

	maxSuggestedSkills = 3
)

func atsTips() []string {
	return []string{
		"Use standard fonts and avoid complex tables or graphics.",
		"Start bullet points with strong action verbs like 'Developed', 'Built', 'Designed'.",
	}
}

// BuildFeedback applies the fixed rule table: one strength by score tier,
// one improvement per missing section (in taxonomy order), a core-skills
// suggestion when gaps exist, and the constant ATS tips.
func (t *Taxonomy) BuildFeedback(score int, sections map[string]bool, missingCore []string) Feedback {
	fb := Feedback{
		Strengths:    []string{},
		Improvements: []string{},
		ATSTips:      atsTips(),
	}

	switch {
	case score >= excellentScore:
		fb.Strengths = append(fb.Strengths, strengthExcellent)
	case score >= goodScore:
		fb.Strengths = append(fb.Strengths, strengthGoodStart)
	}

	for _, sec := range t.Sections {
		if !sections[sec.Name] {
			fb.Improvements = append(fb.Improvements, fmt.Sprintf("Missing '%s' section.", capitalize(sec.Name)))
		}
	}

	if len(missingCore) > 0 {
		top := missingCore
		if len(top) > maxSuggestedSkills {
			top = top[:maxSuggestedSkills]
		}
		fb.Improvements = append(fb.Improvements, "Consider adding core skills: "+strings.Join(top, ", "))
	}

	return fb
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
