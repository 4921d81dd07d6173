package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotRecommendationsOnePerLevel(t *testing.T) {
	prefs := Prefs{Topics: []string{"RAG"}}
	scored := Recommend(leveledCatalog(), prefs)

	picks := SlotRecommendations(scored, nil)
	require.Len(t, picks, 3)

	levels := map[string]bool{}
	for _, c := range picks {
		levels[c.Level] = true
	}
	assert.True(t, levels["Beginner"])
	assert.True(t, levels["Intermediate"])
	assert.True(t, levels["Expert"])
}

func TestSlotRecommendationsTopicMatchBeatsScore(t *testing.T) {
	prefs := Prefs{Topics: []string{"rag"}}
	catalog := []Course{
		{Title: "High Score", Level: "Beginner", Analytics: Analytics{FinalComparisonScore: f(95)}},
		{Title: "Topic Hit", Level: "Beginner",
			Analytics: Analytics{FinalComparisonScore: f(40), FilterTags: []string{"RAG"}}},
	}
	picks := SlotRecommendations(Recommend(catalog, prefs), nil)

	require.NotEmpty(t, picks)
	assert.Equal(t, "Topic Hit", picks[0].Title, "a topic-matching course outranks a higher-scored one in its slot")
}

func TestSlotRecommendationsBackfillsByScore(t *testing.T) {
	catalog := []Course{
		{Title: "B1", Level: "Beginner", Analytics: Analytics{FinalComparisonScore: f(60)}},
		{Title: "B2", Level: "Beginner", Analytics: Analytics{FinalComparisonScore: f(90)}},
		{Title: "B3", Level: "Beginner", Analytics: Analytics{FinalComparisonScore: f(30)}},
	}
	picks := SlotRecommendations(Recommend(catalog, Prefs{}), nil)

	// 没有中高级课程，空缺名额按分数补齐，且不重复
	require.Len(t, picks, 3)
	titles := map[string]bool{}
	for _, c := range picks {
		titles[c.Title] = true
	}
	assert.Len(t, titles, 3)
}

func TestSlotRecommendationsCatalogFallback(t *testing.T) {
	catalog := leveledCatalog()
	picks := SlotRecommendations(nil, catalog)

	require.Len(t, picks, 3)
	assert.Equal(t, catalog[0].Title, picks[0].Title)
}

func TestSlotRecommendationsEmptyEverything(t *testing.T) {
	assert.Empty(t, SlotRecommendations(nil, nil))
}
