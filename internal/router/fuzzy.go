package router

import (
	"sort"
	"strings"
)

// TokenSetRatio computes an order-insensitive string similarity on a 0-100
// scale. Both inputs are tokenized into sets; the sorted intersection and
// the two sorted symmetric differences are recombined and the best indel
// similarity among the three pairings wins. Shared tokens therefore score
// 100 regardless of word order or extra words on one side, which is what
// makes the matcher tolerant of chatty phrasings around a known phrase.
func TokenSetRatio(a, b string) float64 {
	setA := TokenSet(a)
	setB := TokenSet(b)
	// An empty side has nothing in common with anything; without this guard
	// the all-empty recombinations would compare equal and score 100.
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	var inter, onlyA, onlyB []string
	for tok := range setA {
		if setB[tok] {
			inter = append(inter, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range setB {
		if !setA[tok] {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(inter)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(inter, " ")
	combinedA := joinNonEmpty(base, strings.Join(onlyA, " "))
	combinedB := joinNonEmpty(base, strings.Join(onlyB, " "))

	best := indelSimilarity(base, combinedA)
	if s := indelSimilarity(base, combinedB); s > best {
		best = s
	}
	if s := indelSimilarity(combinedA, combinedB); s > best {
		best = s
	}
	return best * 100
}

func joinNonEmpty(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + " " + b
}

// indelSimilarity is the normalized insert/delete similarity between two
// strings: 2*LCS / (len(a)+len(b)). Identical strings score 1.0.
func indelSimilarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	lcs := prev[len(rb)]
	return float64(2*lcs) / float64(len(ra)+len(rb))
}

// FuzzyRoute scores the normalized utterance against every indexed phrase
// and returns the best-scoring intent when its score reaches the
// threshold. Ties keep the earlier registration (strict-greater
// comparison), matching the table-order priority of the regex matcher.
func (idx *Index) FuzzyRoute(utterance string, threshold float64) (string, float64, bool) {
	norm := Normalize(utterance)
	bestIntent := ""
	bestScore := -1.0
	for _, entry := range idx.entries {
		score := TokenSetRatio(norm, entry.Phrase)
		if score > bestScore {
			bestScore = score
			bestIntent = entry.Intent
		}
	}
	if bestIntent == "" || bestScore < threshold {
		return "", bestScore, false
	}
	return bestIntent, bestScore, true
}
