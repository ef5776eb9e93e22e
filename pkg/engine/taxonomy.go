package engine

import (
	"regexp"
	"strings"

	"github.com/rapt-app/rapt/pkg/nlp"
)

// SkillGroup names a skill category and the keywords recognized for it.
type SkillGroup struct {
	Name   string
	Skills []string
}

// Section names an expected resume section and the synonyms that mark it.
type Section struct {
	Name     string
	Synonyms []string
}

// Taxonomy is the fixed keyword configuration the engine scores against.
// It is constructed once at process start and never mutated afterwards, so
// concurrent Analyze calls can share a single instance without locking.
// Groups and sections are ordered slices: report ordering follows
// declaration order, not map iteration.
type Taxonomy struct {
	Groups     []SkillGroup
	Sections   []Section
	CoreSkills []string

	skillPatterns   map[string]*regexp.Regexp
	sectionPatterns map[string][]*regexp.Regexp
}

// NewTaxonomy compiles whole-word matchers for every skill and section
// synonym up front.
func NewTaxonomy(groups []SkillGroup, sections []Section, coreSkills []string) *Taxonomy {
	t := &Taxonomy{
		Groups:          groups,
		Sections:        sections,
		CoreSkills:      coreSkills,
		skillPatterns:   make(map[string]*regexp.Regexp),
		sectionPatterns: make(map[string][]*regexp.Regexp),
	}
	for _, g := range groups {
		for _, s := range g.Skills {
			key := strings.ToLower(s)
			if _, ok := t.skillPatterns[key]; ok {
				continue
			}
			t.skillPatterns[key] = nlp.WordMatcher(s)
		}
	}
	for _, sec := range sections {
		res := make([]*regexp.Regexp, 0, len(sec.Synonyms))
		for _, syn := range sec.Synonyms {
			res = append(res, nlp.WordMatcher(syn))
		}
		t.sectionPatterns[sec.Name] = res
	}
	return t
}

// DefaultTaxonomy returns the built-in ATS keyword set.
func DefaultTaxonomy() *Taxonomy {
	return NewTaxonomy(
		[]SkillGroup{
			{Name: "programming", Skills: []string{"python", "java", "c++", "javascript", "golang", "ruby", "typescript"}},
			{Name: "frontend", Skills: []string{"react", "html", "css", "tailwind", "nextjs", "vue"}},
			{Name: "backend", Skills: []string{"fastapi", "node", "django", "flask", "spring boot"}},
			{Name: "ml", Skills: []string{"machine learning", "tensorflow", "pytorch", "scikit-learn", "nlp"}},
			{Name: "database", Skills: []string{"postgresql", "mysql", "mongodb", "supabase", "redis", "oracle"}},
		},
		[]Section{
			{Name: "education", Synonyms: []string{"education", "academic", "university", "schooling", "qualifications"}},
			{Name: "projects", Synonyms: []string{"projects", "personal work", "portfolio", "open source"}},
			{Name: "experience", Synonyms: []string{"experience", "work history", "employment", "internship", "professional background"}},
			{Name: "skills", Synonyms: []string{"skills", "technical stack", "competencies", "tools", "technologies"}},
		},
		[]string{"python", "react", "sql", "git", "aws", "docker", "api"},
	)
}
