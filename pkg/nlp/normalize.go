package nlp

import "strings"

// Collapse squashes every run of whitespace (spaces, tabs, newlines) into a
// single space and trims the ends. Case and punctuation are preserved so that
// skills like "c++" or "scikit-learn" survive normalization.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// WordCount counts whitespace-separated tokens. Empty input yields 0.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
