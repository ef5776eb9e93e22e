package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allPresent(t *Taxonomy) map[string]bool {
	m := make(map[string]bool, len(t.Sections))
	for _, s := range t.Sections {
		m[s.Name] = true
	}
	return m
}

func TestFeedbackStrengthTiers(t *testing.T) {
	tax := DefaultTaxonomy()
	sections := allPresent(tax)

	fb := tax.BuildFeedback(85, sections, nil)
	assert.Equal(t, []string{strengthExcellent}, fb.Strengths)

	fb = tax.BuildFeedback(80, sections, nil)
	assert.Equal(t, []string{strengthExcellent}, fb.Strengths)

	fb = tax.BuildFeedback(65, sections, nil)
	assert.Equal(t, []string{strengthGoodStart}, fb.Strengths)

	fb = tax.BuildFeedback(49, sections, nil)
	assert.Empty(t, fb.Strengths)
}

func TestFeedbackMissingSections(t *testing.T) {
	tax := DefaultTaxonomy()
	sections := allPresent(tax)
	sections["projects"] = false
	sections["skills"] = false

	fb := tax.BuildFeedback(0, sections, nil)
	// Taxonomy order: projects before skills.
	assert.Equal(t, []string{
		"Missing 'Projects' section.",
		"Missing 'Skills' section.",
	}, fb.Improvements)
}

func TestFeedbackCoreSkillGap(t *testing.T) {
	tax := DefaultTaxonomy()
	sections := allPresent(tax)

	fb := tax.BuildFeedback(0, sections, []string{"sql", "git", "aws", "docker"})
	require.Len(t, fb.Improvements, 1)
	assert.Equal(t, "Consider adding core skills: sql, git, aws", fb.Improvements[0])

	fb = tax.BuildFeedback(0, sections, []string{"api"})
	assert.Equal(t, []string{"Consider adding core skills: api"}, fb.Improvements)
}

func TestFeedbackSkillGapComesLast(t *testing.T) {
	tax := DefaultTaxonomy()
	sections := allPresent(tax)
	sections["education"] = false

	fb := tax.BuildFeedback(0, sections, []string{"git"})
	assert.Equal(t, []string{
		"Missing 'Education' section.",
		"Consider adding core skills: git",
	}, fb.Improvements)
}

func TestFeedbackATSTipsAlwaysPresent(t *testing.T) {
	tax := DefaultTaxonomy()
	want := []string{
		"Use standard fonts and avoid complex tables or graphics.",
		"Start bullet points with strong action verbs like 'Developed', 'Built', 'Designed'.",
	}

	assert.Equal(t, want, tax.BuildFeedback(0, map[string]bool{}, nil).ATSTips)
	assert.Equal(t, want, tax.BuildFeedback(100, allPresent(tax), nil).ATSTips)
}
