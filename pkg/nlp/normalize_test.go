package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapse(t *testing.T) {
	assert.Equal(t, "", Collapse(""))
	assert.Equal(t, "", Collapse(" \n\t "))
	assert.Equal(t, "a b c", Collapse("  a\n\nb\t c "))
	assert.Equal(t, "Keeps Case and c++", Collapse("Keeps  Case\nand\tc++"))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   "))
	assert.Equal(t, 3, WordCount("one two three"))
	assert.Equal(t, 2, WordCount("  spaced \n out "))
}

func TestWordMatcher(t *testing.T) {
	re := WordMatcher("javascript")
	assert.True(t, re.MatchString("I know JavaScript well"))
	assert.True(t, re.MatchString("javascript"))
	assert.False(t, re.MatchString("typescriptjavascript"), "no boundary inside a longer token")

	phrase := WordMatcher("machine learning")
	assert.True(t, phrase.MatchString("applied Machine Learning models"))
	assert.False(t, phrase.MatchString("machine deep learning"), "phrase must be contiguous")

	hyphen := WordMatcher("scikit-learn")
	assert.True(t, hyphen.MatchString("used scikit-learn daily"))
}
