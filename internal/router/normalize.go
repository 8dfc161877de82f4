package router

import (
	"regexp"
	"strings"
)

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// Normalize lowercases text, strips all non-word/non-whitespace characters,
// and trims surrounding whitespace. Every matcher compares index phrases
// and runtime utterances through this same function so both sides are on
// equal footing. Total function; never fails.
func Normalize(text string) string {
	return strings.TrimSpace(nonWordPattern.ReplaceAllString(strings.ToLower(text), ""))
}

// Tokenize splits a normalized utterance into its whitespace-separated
// tokens.
func Tokenize(normalized string) []string {
	return strings.Fields(normalized)
}

// TokenSet returns the distinct tokens of a normalized utterance.
func TokenSet(normalized string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(normalized) {
		set[tok] = true
	}
	return set
}
