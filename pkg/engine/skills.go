package engine

// ExtractSkills returns the set of taxonomy skills present in the text as
// whole words, lower-cased and deduplicated across groups. Word-boundary
// matching keeps single-letter and short names from matching inside
// unrelated tokens; multi-word skills only match as the full phrase.
func (t *Taxonomy) ExtractSkills(text string) map[string]struct{} {
	found := make(map[string]struct{})
	for skill, re := range t.skillPatterns {
		if re.MatchString(text) {
			found[skill] = struct{}{}
		}
	}
	return found
}

// MissingCoreSkills filters the core skill list down to entries absent from
// the detected set, preserving the core list's declared order.
func (t *Taxonomy) MissingCoreSkills(detected map[string]struct{}) []string {
	missing := make([]string, 0, len(t.CoreSkills))
	for _, s := range t.CoreSkills {
		if _, ok := detected[s]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}
