// Package engine implements the deterministic ATS analysis core: it scores
// resume text against a fixed keyword taxonomy and synthesizes feedback.
// The engine is a pure function of its input text and the immutable
// taxonomy; it has no error cases and is safe for concurrent use.
package engine

import (
	"sort"

	"github.com/rapt-app/rapt/pkg/nlp"
)

// Version tags every result so stored analyses can be traced back to the
// scoring rules that produced them.
const Version = "2.1.0"

// Result is the structured outcome of one analysis pass.
type Result struct {
	Score             int      `json:"score"`
	WordCount         int      `json:"wordCount"`
	SectionsFound     []string `json:"sectionsFound"`
	SkillsDetected    []string `json:"skillsDetected"`
	MissingCoreSkills []string `json:"missingCoreSkills"`
	Feedback          Feedback `json:"feedback"`
	EngineVersion     string   `json:"engineVersion"`
}

// Engine binds the taxonomy to the analysis pipeline.
type Engine struct {
	tax *Taxonomy
}

// New returns an engine over the given taxonomy.
func New(tax *Taxonomy) *Engine {
	return &Engine{tax: tax}
}

// Taxonomy exposes the keyword configuration the engine scores against.
func (e *Engine) Taxonomy() *Taxonomy { return e.tax }

// Analyze runs the full pipeline: normalize, detect sections, extract
// skills, score, synthesize feedback. It succeeds for any input; the empty
// string yields a zero score with every section and core skill missing.
func (e *Engine) Analyze(rawText string) Result {
	clean := nlp.Collapse(rawText)
	wordCount := nlp.WordCount(clean)

	sections := e.tax.DetectSections(clean)
	detected := e.tax.ExtractSkills(clean)
	missingCore := e.tax.MissingCoreSkills(detected)

	sectionsFound := make([]string, 0, len(e.tax.Sections))
	present := 0
	for _, sec := range e.tax.Sections {
		if sections[sec.Name] {
			sectionsFound = append(sectionsFound, sec.Name)
			present++
		}
	}

	skills := make([]string, 0, len(detected))
	for s := range detected {
		skills = append(skills, s)
	}
	sort.Strings(skills)

	score := Score(present, len(e.tax.Sections), len(detected), wordCount)

	return Result{
		Score:             score,
		WordCount:         wordCount,
		SectionsFound:     sectionsFound,
		SkillsDetected:    skills,
		MissingCoreSkills: missingCore,
		Feedback:          e.tax.BuildFeedback(score, sections, missingCore),
		EngineVersion:     Version,
	}
}
