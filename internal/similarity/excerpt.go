package similarity

import (
	"sort"
	"strings"

	"github.com/courseloop/veritas/internal/models"
)

// matchRun is a sequence of consecutive words that agree between two texts,
// anchored at a shared n-gram and extended while the words keep matching.
type matchRun struct {
	startA int
	startB int
	length int
}

// extractExcerpts finds the representative overlapping runs between two
// normalized word sequences and renders the top ones as excerpt pairs.
//
// B's n-grams are indexed by start position first; A is then scanned left to
// right. Each unconsumed anchor in A takes the first B candidate whose run
// reaches the minimum length (first-fit: a shorter run found earlier in B
// wins over a longer one that a later candidate would have produced).
func (e *Engine) extractExcerpts(wordsA, wordsB []string) []models.Excerpt {
	n := e.cfg.NGramSize
	if len(wordsA) < n || len(wordsB) < n {
		return []models.Excerpt{}
	}

	// All occurrences of each n-gram in B, keyed by the space-joined words.
	positionsB := make(map[string][]int)
	for j := 0; j+n <= len(wordsB); j++ {
		key := strings.Join(wordsB[j:j+n], " ")
		positionsB[key] = append(positionsB[key], j)
	}

	minRun := e.cfg.minRunLength()
	used := make([]bool, len(wordsA))
	runs := make([]matchRun, 0)

	for i := 0; i+n <= len(wordsA); i++ {
		if used[i] {
			continue
		}

		key := strings.Join(wordsA[i:i+n], " ")
		for _, j := range positionsB[key] {
			// The anchor guarantees n matching words; extend beyond it.
			length := n
			for i+length < len(wordsA) && j+length < len(wordsB) &&
				wordsA[i+length] == wordsB[j+length] {
				length++
			}

			if length < minRun {
				continue
			}

			for k := i; k < i+length; k++ {
				used[k] = true
			}
			runs = append(runs, matchRun{startA: i, startB: j, length: length})
			break
		}
	}

	// Longest runs first; ties keep scan order.
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].length > runs[j].length
	})
	if len(runs) > e.cfg.MaxExcerpts {
		runs = runs[:e.cfg.MaxExcerpts]
	}

	excerpts := make([]models.Excerpt, 0, len(runs))
	for _, r := range runs {
		excerpts = append(excerpts, models.Excerpt{
			ExcerptA: e.truncate(strings.Join(wordsA[r.startA:r.startA+r.length], " ")),
			ExcerptB: e.truncate(strings.Join(wordsB[r.startB:r.startB+r.length], " ")),
		})
	}

	return excerpts
}

func (e *Engine) truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= e.cfg.MaxExcerptLength {
		return s
	}
	return string(runes[:e.cfg.MaxExcerptLength]) + "..."
}
