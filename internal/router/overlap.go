package router

import (
	"sort"

	"state101-assistant/internal/faq"
)

// OverlapRoute maps unseen phrasing to an intent by bag-of-words overlap
// against the coarse topic-keyword table. The best-overlapping topic wins
// but at least 2 shared keywords are required to avoid one-word false
// positives. This is deliberately the loosest deterministic layer, used
// only after the stricter matchers fail. Topics are scanned in sorted
// order so ties resolve deterministically.
func OverlapRoute(utterance string) (string, bool) {
	tokens := TokenSet(Normalize(utterance))

	topics := sortedTopics(faq.TopicKeywords)
	bestTopic := ""
	bestScore := 0
	for _, topic := range topics {
		score := overlapCount(tokens, faq.TopicKeywords[topic])
		if score > bestScore {
			bestScore = score
			bestTopic = topic
		}
	}
	if bestScore >= 2 {
		return bestTopic, true
	}
	return "", false
}

// OverlapHits surfaces topic hints for the multi-intent fuser using the
// broader fusion keyword table. Topics with 2+ shared keywords are
// returned strongest-first (capped at 3); with no strong hit, the single
// best weak overlap is returned.
func OverlapHits(utterance string) []string {
	tokens := TokenSet(Normalize(utterance))

	type scored struct {
		topic string
		score int
	}
	var all []scored
	for _, topic := range sortedTopics(faq.FusionTopicKeywords) {
		if score := overlapCount(tokens, faq.FusionTopicKeywords[topic]); score > 0 {
			all = append(all, scored{topic, score})
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].score > all[j].score })

	var strong []string
	for _, s := range all {
		if s.score >= 2 {
			strong = append(strong, s.topic)
		}
	}
	if len(strong) > 0 {
		if len(strong) > 3 {
			strong = strong[:3]
		}
		return strong
	}
	if len(all) > 0 {
		return []string{all[0].topic}
	}
	return nil
}

func overlapCount(tokens map[string]bool, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if tokens[kw] {
			count++
		}
	}
	return count
}

func sortedTopics(table map[string][]string) []string {
	topics := make([]string, 0, len(table))
	for topic := range table {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}
