package router

import (
	"strings"

	"state101-assistant/internal/faq"
)

// maxFusedAnswers caps how many canonical blocks a fused reply may carry.
const maxFusedAnswers = 3

// FusionCandidates collects the intents an utterance plausibly asks about:
// every regex hit plus every keyword-overlap hint, restricted to the
// whitelist of safely combinable topics. Order follows the regex table
// with overlap hints appended.
func (idx *Index) FusionCandidates(utterance string) []string {
	candidates := idx.IntentHits(utterance)
	for _, hint := range OverlapHits(utterance) {
		if !containsString(candidates, hint) {
			candidates = append(candidates, hint)
		}
	}

	var whitelisted []string
	for _, intent := range candidates {
		if faq.FuseWhitelist[intent] {
			whitelisted = append(whitelisted, intent)
		}
	}
	return whitelisted
}

// FuseIntents concatenates the canonical answers of the given intents with
// a blank-line separator, deduplicating identical answer text and capping
// at three blocks. Returns "" when nothing resolves. A user asking "where
// are you and can I book an appointment" gets both answers in one turn.
func FuseIntents(intents []string, overrides map[string]string) string {
	var merged []string
	for _, intent := range intents {
		answer := faq.Canonical(intent, overrides)
		if answer == "" || containsString(merged, answer) {
			continue
		}
		merged = append(merged, answer)
	}
	if len(merged) == 0 {
		return ""
	}
	if len(merged) > maxFusedAnswers {
		merged = merged[:maxFusedAnswers]
	}
	return strings.Join(merged, "\n\n")
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
