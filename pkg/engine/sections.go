package engine

// DetectSections reports, for every taxonomy section, whether any of its
// synonyms occurs in the text as a whole word (case-insensitive). Callers
// that need deterministic output must iterate t.Sections, not the map.
func (t *Taxonomy) DetectSections(text string) map[string]bool {
	found := make(map[string]bool, len(t.Sections))
	for _, sec := range t.Sections {
		present := false
		for _, re := range t.sectionPatterns[sec.Name] {
			if re.MatchString(text) {
				present = true
				break
			}
		}
		found[sec.Name] = present
	}
	return found
}
