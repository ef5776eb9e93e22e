package nlp

import "regexp"

// WordMatcher compiles a case-insensitive whole-word matcher for a keyword or
// phrase. The keyword is quoted verbatim, so multi-word phrases only match
// with their exact internal spacing ("machine learning" never matches
// "machine deep learning"), and embedded substrings never match
// ("typescriptjavascript" does not contain the word "javascript").
func WordMatcher(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
}
