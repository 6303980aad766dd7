package similarity

import (
	"fmt"
	"sort"
	"time"

	"github.com/courseloop/veritas/internal/models"
	"github.com/google/uuid"
)

// Config holds the tunable parameters of the similarity engine.
type Config struct {
	// NGramSize is the word n-gram width used as the unit of overlap.
	NGramSize int
	// MinSimilarity is the percentage floor for a pair to reach the report.
	MinSimilarity float64
	// MinWordCount excludes trivially short submissions from all comparison.
	MinWordCount int
	// MaxExcerptLength truncates excerpts, appending "..." when hit.
	MaxExcerptLength int
	// MaxExcerpts caps the excerpt pairs kept per match.
	MaxExcerpts int
}

// DefaultConfig returns the production parameters: word trigrams, a 50%
// similarity floor, a 10-word minimum, and up to three 200-character
// excerpts per match.
func DefaultConfig() Config {
	return Config{
		NGramSize:        3,
		MinSimilarity:    50.0,
		MinWordCount:     10,
		MaxExcerptLength: 200,
		MaxExcerpts:      3,
	}
}

// minRunLength is the floor, in words, for an overlapping run to count as
// excerpt-worthy.
func (c Config) minRunLength() int {
	return c.NGramSize + 2
}

func (c Config) validate() error {
	if c.NGramSize <= 0 {
		return fmt.Errorf("n-gram size must be greater than 0, got %d", c.NGramSize)
	}
	if c.MinSimilarity < 0 || c.MinSimilarity > 100 {
		return fmt.Errorf("minimum similarity must be within [0, 100], got %v", c.MinSimilarity)
	}
	if c.MinWordCount < 0 {
		return fmt.Errorf("minimum word count must not be negative, got %d", c.MinWordCount)
	}
	if c.MaxExcerptLength <= 0 {
		return fmt.Errorf("max excerpt length must be greater than 0, got %d", c.MaxExcerptLength)
	}
	if c.MaxExcerpts <= 0 {
		return fmt.Errorf("max excerpts must be greater than 0, got %d", c.MaxExcerpts)
	}
	return nil
}

// Engine scores pairwise similarity across the text submissions of one
// assignment. It is a pure value: no I/O, no shared mutable state, safe for
// concurrent use from multiple goroutines.
type Engine struct {
	cfg Config
}

// NewEngine validates the configuration and returns an engine. Configuration
// errors fail fast here; the scoring path itself never fails.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// normalizedSubmission carries a filtered submission together with its
// normalized word sequence and n-gram set for the duration of one check.
type normalizedSubmission struct {
	sub    models.Submission
	words  []string
	ngrams map[string]bool
}

// CheckSubmissions compares every unordered pair of submissions that passes
// the word-count floor and returns a report of pairs at or above the
// similarity threshold, ranked by similarity descending. It always returns
// a well-formed report: empty input, all-short submissions, and disjoint
// texts all degrade to a report with zero matches.
func (e *Engine) CheckSubmissions(submissions []models.Submission, assignmentID, assignmentTitle string) models.Report {
	checked := make([]normalizedSubmission, 0, len(submissions))
	for _, sub := range submissions {
		if WordCount(sub.Text) < e.cfg.MinWordCount {
			continue
		}
		words := NormalizeWords(sub.Text)
		checked = append(checked, normalizedSubmission{
			sub:    sub,
			words:  words,
			ngrams: NGramSet(words, e.cfg.NGramSize),
		})
	}

	matches := make([]models.Match, 0)
	for i := 0; i < len(checked); i++ {
		for j := i + 1; j < len(checked); j++ {
			a, b := checked[i], checked[j]

			pct := JaccardPercent(a.ngrams, b.ngrams)
			if pct < e.cfg.MinSimilarity {
				continue
			}

			matches = append(matches, models.Match{
				ID:                   uuid.New().String(),
				StudentIDA:           a.sub.StudentID,
				StudentIDB:           b.sub.StudentID,
				StudentNameA:         a.sub.StudentName,
				StudentNameB:         b.sub.StudentName,
				SimilarityPercentage: pct,
				MatchingExcerpts:     e.extractExcerpts(a.words, b.words),
				Severity:             models.SeverityFor(pct),
			})
		}
	}

	// Stable sort keeps pair-generation order for equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].SimilarityPercentage > matches[j].SimilarityPercentage
	})

	return models.Report{
		AssignmentID:            assignmentID,
		AssignmentTitle:         assignmentTitle,
		TotalSubmissionsChecked: len(checked),
		Matches:                 matches,
		RunDate:                 time.Now(),
		Status:                  "completed",
	}
}

// PairCount reports how many pairwise comparisons a batch of the given
// filtered size requires.
func PairCount(n int) int {
	return n * (n - 1) / 2
}
