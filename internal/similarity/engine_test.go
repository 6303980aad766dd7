package similarity

import (
	"strings"
	"testing"

	"github.com/courseloop/veritas/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultConfig())
	require.NoError(t, err)
	return engine
}

func sub(id, name, text string) models.Submission {
	return models.Submission{StudentID: id, StudentName: name, Text: text}
}

func TestNewEngine_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero n-gram size", func(c *Config) { c.NGramSize = 0 }},
		{"negative n-gram size", func(c *Config) { c.NGramSize = -1 }},
		{"similarity above 100", func(c *Config) { c.MinSimilarity = 101 }},
		{"negative similarity", func(c *Config) { c.MinSimilarity = -1 }},
		{"negative word count", func(c *Config) { c.MinWordCount = -5 }},
		{"zero excerpt length", func(c *Config) { c.MaxExcerptLength = 0 }},
		{"zero excerpt cap", func(c *Config) { c.MaxExcerpts = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := NewEngine(cfg)
			assert.Error(t, err)
		})
	}
}

func TestCheckSubmissions_EmptyInput(t *testing.T) {
	engine := newTestEngine(t)

	report := engine.CheckSubmissions(nil, "hw-1", "Essay 1")

	assert.Equal(t, "hw-1", report.AssignmentID)
	assert.Equal(t, "Essay 1", report.AssignmentTitle)
	assert.Zero(t, report.TotalSubmissionsChecked)
	assert.Empty(t, report.Matches)
	assert.False(t, report.RunDate.IsZero())
}

func TestCheckSubmissions_AllShortSubmissions(t *testing.T) {
	engine := newTestEngine(t)

	// Identical texts, but all below the 10-word floor.
	subs := []models.Submission{
		sub("s1", "Ada", "the quick brown fox jumps"),
		sub("s2", "Grace", "the quick brown fox jumps"),
		sub("s3", "Alan", "the quick brown fox jumps"),
	}

	report := engine.CheckSubmissions(subs, "hw-2", "Short answers")

	assert.Zero(t, report.TotalSubmissionsChecked)
	assert.Empty(t, report.Matches)
}

func TestCheckSubmissions_NearDuplicatePair(t *testing.T) {
	engine := newTestEngine(t)

	subs := []models.Submission{
		sub("a", "Ada", "The cat sat on the mat while the dog barked loudly outside"),
		sub("b", "Grace", "The cat ran on the mat while the dog barked loudly outside"),
		sub("c", "Alan", "Photosynthesis converts light energy into chemical energy inside the chloroplasts of green plants"),
	}

	report := engine.CheckSubmissions(subs, "hw-3", "Reading response")

	assert.Equal(t, 3, report.TotalSubmissionsChecked)
	require.Len(t, report.Matches, 1)

	match := report.Matches[0]
	assert.Equal(t, "a", match.StudentIDA)
	assert.Equal(t, "b", match.StudentIDB)
	assert.Equal(t, "Ada", match.StudentNameA)
	assert.Equal(t, "Grace", match.StudentNameB)
	assert.Greater(t, match.SimilarityPercentage, 50.0)
	assert.NotEmpty(t, match.ID)

	for _, m := range report.Matches {
		assert.NotEqual(t, "c", m.StudentIDA)
		assert.NotEqual(t, "c", m.StudentIDB)
	}
}

func TestCheckSubmissions_IdenticalTexts(t *testing.T) {
	engine := newTestEngine(t)

	// Same normalized text despite differing case and punctuation.
	subs := []models.Submission{
		sub("a", "Ada", "Rivers carry sediment downstream and deposit it across the floodplain every year."),
		sub("b", "Grace", "rivers carry sediment downstream, and deposit it across the floodplain every year"),
	}

	report := engine.CheckSubmissions(subs, "hw-4", "Geography")

	require.Len(t, report.Matches, 1)
	assert.InDelta(t, 100.0, report.Matches[0].SimilarityPercentage, 1e-9)
	assert.Equal(t, models.SeverityHigh, report.Matches[0].Severity)
	assert.NotEmpty(t, report.Matches[0].MatchingExcerpts)
}

func TestCheckSubmissions_Symmetry(t *testing.T) {
	engine := newTestEngine(t)

	a := sub("a", "Ada", "The industrial revolution transformed manufacturing transport and agriculture across all of western europe rapidly")
	b := sub("b", "Grace", "The industrial revolution transformed manufacturing transport and farming across all of western europe rapidly")

	forward := engine.CheckSubmissions([]models.Submission{a, b}, "hw", "t")
	backward := engine.CheckSubmissions([]models.Submission{b, a}, "hw", "t")

	require.Len(t, forward.Matches, 1)
	require.Len(t, backward.Matches, 1)
	assert.Equal(t, forward.Matches[0].SimilarityPercentage, backward.Matches[0].SimilarityPercentage)
}

func TestCheckSubmissions_PairCountExcludesSelf(t *testing.T) {
	engine := newTestEngine(t)

	// Four identical submissions: every unordered pair matches at 100%,
	// and no submission is compared against itself.
	text := "Glaciers grind bedrock into fine silt that rivers later carry toward the sea"
	subs := []models.Submission{
		sub("s1", "A", text),
		sub("s2", "B", text),
		sub("s3", "C", text),
		sub("s4", "D", text),
	}

	report := engine.CheckSubmissions(subs, "hw", "t")

	assert.Equal(t, 4, report.TotalSubmissionsChecked)
	assert.Len(t, report.Matches, PairCount(4))
	for _, m := range report.Matches {
		assert.NotEqual(t, m.StudentIDA, m.StudentIDB)
	}
}

func TestCheckSubmissions_RangeBound(t *testing.T) {
	engine := newTestEngine(t)

	base := "the solar system contains eight planets orbiting the sun in elliptical paths over long periods"
	subs := []models.Submission{
		sub("s1", "A", base),
		sub("s2", "B", base),
		sub("s3", "C", strings.Replace(base, "planets", "worlds", 1)),
		sub("s4", "D", "completely unrelated text about medieval castle construction techniques using local quarried stone and timber"),
	}

	report := engine.CheckSubmissions(subs, "hw", "t")

	require.NotEmpty(t, report.Matches)
	for _, m := range report.Matches {
		assert.GreaterOrEqual(t, m.SimilarityPercentage, 50.0)
		assert.LessOrEqual(t, m.SimilarityPercentage, 100.0)
	}
}

func TestCheckSubmissions_SortOrder(t *testing.T) {
	engine := newTestEngine(t)

	base := "volcanic eruptions release ash and gases that can alter global climate patterns for several years afterwards"
	subs := []models.Submission{
		sub("s1", "A", base),
		sub("s2", "B", base),
		sub("s3", "C", strings.Replace(base, "gases", "vapors", 1)),
	}

	report := engine.CheckSubmissions(subs, "hw", "t")

	require.GreaterOrEqual(t, len(report.Matches), 2)
	for i := 0; i+1 < len(report.Matches); i++ {
		assert.GreaterOrEqual(t,
			report.Matches[i].SimilarityPercentage,
			report.Matches[i+1].SimilarityPercentage,
		)
	}
	// The identical pair ranks first.
	assert.InDelta(t, 100.0, report.Matches[0].SimilarityPercentage, 1e-9)
}

func TestCheckSubmissions_TieOrderRetainsGenerationOrder(t *testing.T) {
	engine := newTestEngine(t)

	// Three identical submissions: every pair scores 100%, so the sort has
	// nothing to reorder and the pair-generation order must survive.
	text := "ocean currents redistribute heat from the equator toward the poles shaping regional climates"
	subs := []models.Submission{
		sub("s1", "A", text),
		sub("s2", "B", text),
		sub("s3", "C", text),
	}

	report := engine.CheckSubmissions(subs, "hw", "t")

	require.Len(t, report.Matches, 3)
	wantPairs := [][2]string{{"s1", "s2"}, {"s1", "s3"}, {"s2", "s3"}}
	for i, m := range report.Matches {
		assert.InDelta(t, 100.0, m.SimilarityPercentage, 1e-9)
		assert.Equal(t, wantPairs[i][0], m.StudentIDA)
		assert.Equal(t, wantPairs[i][1], m.StudentIDB)
	}
}

func TestCheckSubmissions_ShortSubmissionExcluded(t *testing.T) {
	engine := newTestEngine(t)

	long := "coral reefs shelter roughly a quarter of all marine species despite covering a tiny fraction of the ocean floor"
	subs := []models.Submission{
		sub("long-1", "A", long),
		sub("long-2", "B", long),
		sub("short", "C", "coral reefs shelter marine species"), // 5 words
	}

	report := engine.CheckSubmissions(subs, "hw", "t")

	assert.Equal(t, 2, report.TotalSubmissionsChecked)
	for _, m := range report.Matches {
		assert.NotEqual(t, "short", m.StudentIDA)
		assert.NotEqual(t, "short", m.StudentIDB)
	}
}

func TestCheckSubmissions_ExcerptInvariants(t *testing.T) {
	engine := newTestEngine(t)

	text := strings.Repeat("the migration of arctic terns spans both hemispheres each year crossing entire oceans twice ", 4)
	subs := []models.Submission{
		sub("a", "A", text),
		sub("b", "B", text),
	}

	report := engine.CheckSubmissions(subs, "hw", "t")

	require.Len(t, report.Matches, 1)
	excerpts := report.Matches[0].MatchingExcerpts
	assert.LessOrEqual(t, len(excerpts), 3)
	for _, ex := range excerpts {
		assert.LessOrEqual(t, len([]rune(ex.ExcerptA)), 200+3)
		assert.LessOrEqual(t, len([]rune(ex.ExcerptB)), 200+3)
	}
}

func TestCheckSubmissions_SeverityTiers(t *testing.T) {
	engine := newTestEngine(t)

	// One changed word out of 30 keeps the n-gram overlap above 80%.
	base := "during the long dry season the herds move north following the scattered rains " +
		"and the rivers shrink to muddy channels while predators gather near the few remaining water holes"
	altered := strings.Replace(base, "predators", "lions", 1)

	report := engine.CheckSubmissions([]models.Submission{
		sub("a", "A", base),
		sub("b", "B", altered),
	}, "hw", "t")

	require.Len(t, report.Matches, 1)
	match := report.Matches[0]
	assert.Equal(t, models.SeverityFor(match.SimilarityPercentage), match.Severity)
	assert.GreaterOrEqual(t, match.SimilarityPercentage, 70.0)
}
