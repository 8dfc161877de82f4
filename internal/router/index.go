package router

import (
	"regexp"
	"sort"

	"state101-assistant/internal/faq"
)

// Entry is a single (intent, phrase) registration. The phrase is stored
// normalized.
type Entry struct {
	Intent string
	Phrase string
}

// Index holds the phrase registrations built once at snapshot construction
// and read-only afterwards. Registration order is meaningful: the regex
// matcher returns the first matching intent in table order, so the curated
// synonym table is a de-facto priority list.
type Index struct {
	// Curated synonym pairs with pre-compiled word-boundary patterns,
	// used by the regex matcher.
	regexEntries  []Entry
	regexPatterns []*regexp.Regexp

	// Curated pairs plus literal FAQ keys, deduplicated case-insensitively
	// by normalized phrase (first registration wins). Used by the fuzzy
	// and embedding matchers.
	entries []Entry
}

// NewIndex builds the phrase index from the curated synonym table plus the
// literal FAQ keys, so direct key matches always work even without curated
// synonyms. Literal keys are appended after the curated table in sorted
// order to keep the index deterministic.
func NewIndex(synonyms []faq.SynonymEntry, faqKeys []string) *Index {
	idx := &Index{}

	for _, entry := range synonyms {
		for _, phrase := range entry.Phrases {
			norm := Normalize(phrase)
			if norm == "" {
				continue
			}
			idx.regexEntries = append(idx.regexEntries, Entry{Intent: entry.Intent, Phrase: norm})
			idx.regexPatterns = append(idx.regexPatterns, wordBoundaryPattern(norm))
		}
	}

	sortedKeys := append([]string(nil), faqKeys...)
	sort.Strings(sortedKeys)

	seen := make(map[string]bool)
	for _, entry := range synonyms {
		for _, phrase := range entry.Phrases {
			norm := Normalize(phrase)
			if norm == "" || seen[norm] {
				continue
			}
			seen[norm] = true
			idx.entries = append(idx.entries, Entry{Intent: entry.Intent, Phrase: norm})
		}
	}
	for _, key := range sortedKeys {
		norm := Normalize(key)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		idx.entries = append(idx.entries, Entry{Intent: key, Phrase: norm})
	}

	return idx
}

// Entries returns the deduplicated (intent, phrase) pairs in registration
// order, for the embedding index builder.
func (idx *Index) Entries() []Entry {
	return idx.entries
}

func wordBoundaryPattern(normPhrase string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(normPhrase) + `\b`)
}
