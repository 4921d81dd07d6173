package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []Course {
	strong := courseFixture()

	weak := Course{
		Title: "Intro Slideshow",
		Link:  "https://example.com/slides",
		Level: "Beginner",
		Analytics: Analytics{
			FinalComparisonScore: f(20),
			RelevanceScore:       f(0.1),
		},
	}

	expert := Course{
		Title:  "Distributed Training at Scale",
		Link:   "https://example.com/scale",
		Level:  "Expert",
		Topics: []string{"Core ML"},
		Analytics: Analytics{
			FinalComparisonScore: f(90),
			NormalizedRating:     f(0.85),
		},
	}

	return []Course{weak, strong, expert}
}

func TestRecommendSortsByScoreDescending(t *testing.T) {
	scored := Recommend(catalogFixture(), Prefs{})
	require.Len(t, scored, 3)

	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}
	assert.Equal(t, "Practical RAG Systems", scored[0].Title)
}

func TestRecommendIsDeterministic(t *testing.T) {
	prefs := Prefs{Level: "Beginner", Topics: []string{"RAG"}}
	first := Recommend(catalogFixture(), prefs)
	second := Recommend(catalogFixture(), prefs)
	assert.Equal(t, first, second)
}

func TestRecommendAttachesTopDrivers(t *testing.T) {
	scored := Recommend([]Course{courseFixture()}, Prefs{})
	require.Len(t, scored, 1)
	require.Len(t, scored[0].Drivers, 3)

	top := scored[0].Drivers[0]
	assert.Equal(t, "final_comparison", top.Key)
	assert.Equal(t, 0.247, top.Contribution, "contribution rounded to 3 decimals")
	assert.Equal(t, 0.824, top.Value)
}

func TestRecommendDoesNotMutateInput(t *testing.T) {
	catalog := catalogFixture()
	before := make([]Course, len(catalog))
	copy(before, catalog)

	Recommend(catalog, Prefs{Level: "Expert"})
	assert.Equal(t, before, catalog)
}
