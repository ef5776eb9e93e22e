package engine

import "math"

// Scoring weights. Structure, skill density and formatting contribute
// 30/50/20 points respectively; changing these breaks score compatibility
// with stored analyses.
const (
	structurePoints = 30

	pointsPerSkill = 5
	skillCapPoints = 50

	idealLengthPoints = 20
	anyLengthPoints   = 10
	idealLengthMin    = 300
	idealLengthMax    = 800
)

// Score combines section presence, detected skill count and word count into
// a weighted value, rounded to the nearest integer with ties going to the
// even neighbor (22.5 -> 22, 47.5 -> 48). The formula has no upper clamp:
// with every section present, ten or more skills and an ideal length it
// reaches 100, and nothing enforces that ceiling.
func Score(sectionsPresent, sectionsTotal, skillCount, wordCount int) int {
	var score float64

	if sectionsTotal > 0 {
		score += float64(sectionsPresent) / float64(sectionsTotal) * structurePoints
	}

	if skillCount > 0 {
		score += math.Min(float64(skillCount*pointsPerSkill), skillCapPoints)
	}

	switch {
	case wordCount >= idealLengthMin && wordCount <= idealLengthMax:
		score += idealLengthPoints
	case wordCount > 0:
		score += anyLengthPoints
	}

	return int(math.RoundToEven(score))
}
