package faq

import "strings"

// kbCategoryToIntent maps knowledge-base front-matter categories to
// canonical intent names where they differ.
var kbCategoryToIntent = map[string]string{
	"program":       "program details",
	"qualification": "qualifications",
	"graduate":      "graduates",
}

// IntentForCategory resolves a knowledge-base category to its canonical
// intent name. Unknown categories map to themselves so new KB topics work
// without a code change.
func IntentForCategory(category string) string {
	cat := strings.ToLower(strings.TrimSpace(category))
	if intent, ok := kbCategoryToIntent[cat]; ok {
		return intent
	}
	return cat
}

// Canonical resolves an intent to its answer text. Knowledge-base
// overrides take precedence over the compiled-in table so CMS updates by
// non-technical staff win without a redeploy. Returns "" when the intent
// is unknown.
func Canonical(intent string, overrides map[string]string) string {
	if text, ok := overrides[intent]; ok {
		return text
	}
	if text, ok := Responses[intent]; ok {
		return text
	}
	return ""
}

// Intents returns the distinct canonical intents in synonym-table order.
func Intents() []string {
	out := make([]string, 0, len(IntentSynonyms))
	for _, entry := range IntentSynonyms {
		out = append(out, entry.Intent)
	}
	return out
}
