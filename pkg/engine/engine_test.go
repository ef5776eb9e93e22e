package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = "Education: B.Tech Computer Science\nSkills: Python, React, SQL\nExperience: Built FastAPI backend"

func newTestEngine() *Engine {
	return New(DefaultTaxonomy())
}

func TestAnalyzeEmptyInput(t *testing.T) {
	res := newTestEngine().Analyze("")

	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 0, res.WordCount)
	assert.Empty(t, res.SectionsFound)
	assert.Empty(t, res.SkillsDetected)
	assert.Equal(t, []string{"python", "react", "sql", "git", "aws", "docker", "api"}, res.MissingCoreSkills)
	assert.Equal(t, Version, res.EngineVersion)
}

func TestAnalyzeSampleResume(t *testing.T) {
	res := newTestEngine().Analyze(sampleResume)

	assert.Equal(t, []string{"education", "experience", "skills"}, res.SectionsFound)
	assert.Equal(t, []string{"fastapi", "python", "react"}, res.SkillsDetected)
	// SQL is not part of the skill taxonomy, so it stays a gap.
	assert.Equal(t, []string{"sql", "git", "aws", "docker", "api"}, res.MissingCoreSkills)
	assert.Equal(t, 12, res.WordCount)

	// 3/4 sections = 22.5, 3 skills = 15, short text = 10 -> 47.5 rounds to 48
	assert.Equal(t, 48, res.Score)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	e := newTestEngine()
	first := e.Analyze(sampleResume)
	second := e.Analyze(sampleResume)
	assert.Equal(t, first, second)
}

func TestAnalyzeScoreNeverNegative(t *testing.T) {
	e := newTestEngine()
	for _, in := range []string{"", " ", "\n\n\n", "no keywords here at all", sampleResume} {
		assert.GreaterOrEqual(t, e.Analyze(in).Score, 0, "input %q", in)
	}
}

func TestWholeWordMatching(t *testing.T) {
	e := newTestEngine()

	res := e.Analyze("I write javascript")
	assert.Contains(t, res.SkillsDetected, "javascript")

	res = e.Analyze("typescriptjavascript")
	assert.Empty(t, res.SkillsDetected, "embedded substrings must not match")
}

func TestMultiWordSkill(t *testing.T) {
	e := newTestEngine()

	res := e.Analyze("experience with machine learning pipelines")
	assert.Contains(t, res.SkillsDetected, "machine learning")

	res = e.Analyze("machine operated learning")
	assert.NotContains(t, res.SkillsDetected, "machine learning")
}

func TestSkillsDeduplicatedAndLowercased(t *testing.T) {
	res := newTestEngine().Analyze("Python python PYTHON and React")
	assert.Equal(t, []string{"python", "react"}, res.SkillsDetected)
}

func TestAddingSkillNeverLowersScore(t *testing.T) {
	e := newTestEngine()
	base := "Experience: plain text without any stack"
	withSkill := base + " redis"

	assert.GreaterOrEqual(t, e.Analyze(withSkill).Score, e.Analyze(base).Score)
}

func TestSkillComponentCaps(t *testing.T) {
	e := newTestEngine()
	// 11 distinct taxonomy skills: the skill component stays capped at 50.
	text := "python java javascript golang ruby typescript react html css tailwind vue"
	res := e.Analyze(text)
	require.Len(t, res.SkillsDetected, 11)

	// no sections, 11 words -> 0 + 50 + 10
	assert.Equal(t, 60, res.Score)
}

func TestDetectedSkillsBelongToTaxonomy(t *testing.T) {
	tax := DefaultTaxonomy()
	known := map[string]struct{}{}
	for _, g := range tax.Groups {
		for _, s := range g.Skills {
			known[s] = struct{}{}
		}
	}

	res := New(tax).Analyze(sampleResume + " machine learning postgresql nonsenseword")
	for _, s := range res.SkillsDetected {
		_, ok := known[s]
		assert.True(t, ok, "unexpected skill %q", s)
	}
	for _, m := range res.MissingCoreSkills {
		assert.NotContains(t, res.SkillsDetected, m)
	}
}
