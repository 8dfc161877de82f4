package router

// MatchIntent matches the utterance against the curated synonym table
// using word-boundary patterns (so "age" does not match inside "page")
// and returns the first matching intent in table order. Returns "" when
// nothing matches.
func (idx *Index) MatchIntent(utterance string) string {
	norm := Normalize(utterance)
	for i, entry := range idx.regexEntries {
		if idx.regexPatterns[i].MatchString(norm) {
			return entry.Intent
		}
	}
	return ""
}

// IntentHits returns every distinct intent with at least one word-boundary
// phrase hit, in table order. Unlike MatchIntent it does not stop at the
// first hit; the multi-intent fuser needs the full list.
func (idx *Index) IntentHits(utterance string) []string {
	norm := Normalize(utterance)
	var hits []string
	seen := make(map[string]bool)
	for i, entry := range idx.regexEntries {
		if seen[entry.Intent] {
			continue
		}
		if idx.regexPatterns[i].MatchString(norm) {
			seen[entry.Intent] = true
			hits = append(hits, entry.Intent)
		}
	}
	return hits
}
