package similarity

import "strings"

// NGramSet builds the set of space-joined word n-grams over a normalized
// word sequence. Texts shorter than n words fall back to a single-element
// set holding the entire normalized text, so very short (but above the
// word-count floor) texts still participate in comparison. An empty word
// sequence yields an empty set.
func NGramSet(words []string, n int) map[string]bool {
	set := make(map[string]bool)

	if len(words) == 0 {
		return set
	}

	if len(words) < n {
		set[strings.Join(words, " ")] = true
		return set
	}

	for i := 0; i+n <= len(words); i++ {
		set[strings.Join(words[i:i+n], " ")] = true
	}

	return set
}

// JaccardPercent computes |A ∩ B| / |A ∪ B| scaled to [0, 100]. Two empty
// sets score 0.0, not 100.0: no overlap evidence means no match.
func JaccardPercent(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.0
	}

	intersection := 0
	for key := range a {
		if b[key] {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.0
	}

	return 100.0 * float64(intersection) / float64(union)
}
