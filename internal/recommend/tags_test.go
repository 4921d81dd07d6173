package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func analyticsFixture() Analytics {
	return Analytics{
		FinalComparisonScore: f(82.4),
		RelevanceScore:       f(0.8),
		NormalizedRating:     f(0.95),
		NormalizedPopularity: f(0.7),
		FreshnessScore:       f(0.75),
		EngagementScore:      f(0.8),
		FilterTags:           []string{"RAG", "Beginner"},
		Sentiment: Sentiment{
			Score:      f(0.6),
			Strengths:  []string{"hands-on projects"},
			PainPoints: []string{"outdated examples"},
		},
		Features: Features{HasCapstoneProject: true},
	}
}

func courseFixture() Course {
	return Course{
		Title:      "Practical RAG Systems",
		Link:       "https://example.com/rag",
		Level:      "Beginner",
		Topics:     []string{"RAG", "Embeddings"},
		TotalHours: 12,
		Rating:     4.8,
		Analytics:  analyticsFixture(),
	}
}

func tagByName(t *testing.T, tags []Tag, name string) Tag {
	t.Helper()
	for _, tag := range tags {
		if tag.Name == name {
			return tag
		}
	}
	t.Fatalf("tag %q not found", name)
	return Tag{}
}

func TestGenerateTagsBadges(t *testing.T) {
	tags := GenerateTags(courseFixture(), Prefs{})

	for _, name := range []string{"Top Rated", "Popular", "Fresh Content", "High Engagement", "Capstone Project"} {
		assert.Equal(t, TagBadge, tagByName(t, tags, name).Type)
	}
}

func TestGenerateTagsBadgeThresholds(t *testing.T) {
	c := courseFixture()
	c.Analytics.NormalizedRating = f(0.89)
	c.Analytics.NormalizedPopularity = f(0.59)

	var names []string
	for _, tag := range GenerateTags(c, Prefs{}) {
		names = append(names, tag.Name)
	}
	assert.NotContains(t, names, "Top Rated")
	assert.NotContains(t, names, "Popular")
}

func TestGenerateTagsScoreAndMetrics(t *testing.T) {
	tags := GenerateTags(courseFixture(), Prefs{})

	score := tagByName(t, tags, "Score: 82")
	assert.Equal(t, TagScore, score.Type)

	rel := tagByName(t, tags, "Relevance: 0.80")
	assert.Equal(t, TagMetric, rel.Type)
	assert.Equal(t, 0.8, rel.Value)

	assert.Equal(t, "sentiment_score", tagByName(t, tags, "Sentiment: 0.60").Source)
}

func TestGenerateTagsMissingMetricsOmitted(t *testing.T) {
	c := Course{Title: "Bare", Level: "Beginner"}
	tags := GenerateTags(c, Prefs{})
	assert.Empty(t, tags, "no analytics, no tags")
}

func TestGenerateTagsMixedMerge(t *testing.T) {
	c := courseFixture()
	c.Analytics.Sentiment.Strengths = []string{"pacing"}
	c.Analytics.Sentiment.PainPoints = []string{"Pacing"}

	merged := tagByName(t, GenerateTags(c, Prefs{}), "pacing")
	assert.Equal(t, TagMixed, merged.Type, "same name as interest and weakness merges to mixed")
}

func TestGenerateTagsBadgeWinsMerge(t *testing.T) {
	c := courseFixture()
	c.Analytics.FilterTags = []string{"Top Rated"}

	tag := tagByName(t, GenerateTags(c, Prefs{}), "Top Rated")
	assert.Equal(t, TagBadge, tag.Type, "badge type overrides the earlier topic entry")
}

func TestGenerateTagsMatchAndDurationFlags(t *testing.T) {
	prefs := Prefs{Topics: []string{"rag"}, MaxHours: 10}
	tags := GenerateTags(courseFixture(), prefs)

	assert.True(t, tagByName(t, tags, "RAG").Match, "topic match is case-insensitive")
	for _, tag := range tags {
		assert.True(t, tag.DurationMismatch, "12h course exceeds the 10h cap on every tag")
	}
}

func TestGenerateTagsIdempotent(t *testing.T) {
	c := courseFixture()
	first := GenerateTags(c, Prefs{Topics: []string{"RAG"}})
	second := GenerateTags(c, Prefs{Topics: []string{"RAG"}})
	require.Equal(t, first, second)
}
