package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course_compass_backend/internal/assessment"
	"course_compass_backend/internal/recommend"
	"course_compass_backend/internal/repository"
	"course_compass_backend/internal/util"
)

const catalogJSON = `[
  {"title":"Intro to ML","level":"Beginner","totalHours":10,"ratingValue":4.2,
   "analytics":{"final_comparison_score":70,"filter_tags":["Core ML"]}},
  {"name":"Vector Search in Practice","level":"Intermediate","totalHours":25,"ratingValue":"4.8 stars",
   "analytics":{"final_comparison_score":88,"filter_tags":["RAG/Vector"]}},
  {"title":"ML Systems at Scale","level":"Expert","totalHours":40,"ratingValue":4.9,
   "analytics":{"final_comparison_score":92,"filter_tags":["MLOps"]}}
]`

func newTestCatalog(t *testing.T) *CatalogService {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "courses.json"), []byte(catalogJSON), 0o644))

	repo := repository.NewCatalogRepository(repository.NewLocalContentSource(dir), nil)
	cfg := testConfig()
	cfg.Content.CourseCatalogs = []string{"courses.json"}
	return NewCatalogService(repo, cfg)
}

func TestCatalogCoursesNormalized(t *testing.T) {
	svc := newTestCatalog(t)

	courses, err := svc.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 3)

	assert.Equal(t, "Vector Search in Practice", courses[1].Title, "name alias normalized into title")
	assert.InDelta(t, 4.8, courses[1].Rating, 1e-9, "rating parsed from its numeric prefix")
	require.NotNil(t, courses[1].Analytics.FinalComparisonScore)
	assert.InDelta(t, 88, *courses[1].Analytics.FinalComparisonScore, 1e-9)
}

func TestCatalogSorted(t *testing.T) {
	svc := newTestCatalog(t)
	ctx := context.Background()

	byScore, err := svc.Sorted(ctx, recommend.SortAIScoreDesc)
	require.NoError(t, err)
	assert.Equal(t, "ML Systems at Scale", byScore[0].Title)

	byTitle, err := svc.Sorted(ctx, recommend.SortTitleAsc)
	require.NoError(t, err)
	assert.Equal(t, "Intro to ML", byTitle[0].Title)

	byDuration, err := svc.Sorted(ctx, recommend.SortDurationAsc)
	require.NoError(t, err)
	assert.Equal(t, "Intro to ML", byDuration[0].Title)
}

func TestCatalogReloadClearsCache(t *testing.T) {
	svc := newTestCatalog(t)
	ctx := context.Background()

	first, err := svc.Courses(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)

	svc.Reload()
	again, err := svc.Courses(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 3)
}

func TestRecommendationForPrefs(t *testing.T) {
	svc := NewRecommendationService(newTestCatalog(t))
	ctx := context.Background()

	res, err := svc.ForPrefs(ctx, recommend.Prefs{
		Level:  recommend.LevelIntermediate,
		Topics: []string{"RAG/Vector"},
	})
	require.NoError(t, err)

	require.NotNil(t, res.TopMatch)
	assert.Equal(t, "Vector Search in Practice", res.TopMatch.Title, "topic match at own level wins")
	assert.NotEmpty(t, res.Recommendations)
	assert.LessOrEqual(t, len(res.Featured), 3)
	assert.NotEmpty(t, res.Featured)
	assert.NotNil(t, res.PerLevel["Beginner"])
}

func TestRecommendationForProfileCarriesDurationLimit(t *testing.T) {
	svc := NewRecommendationService(newTestCatalog(t))

	profile := &assessment.FinalProfile{
		Level:        assessment.LevelIntermediate,
		InterestTags: []string{"RAG/Vector"},
	}
	res, err := svc.ForProfile(context.Background(), profile, recommend.Prefs{
		Topics:   []string{"RAG/Vector"},
		MaxHours: 20,
	})
	require.NoError(t, err)
	require.Len(t, res.Ranked, 3)

	tagged := map[string]bool{}
	for _, c := range res.Ranked {
		require.NotEmpty(t, c.Tags, c.Title)
		tagged[c.Title] = c.Tags[0].DurationMismatch
	}
	assert.True(t, tagged["Vector Search in Practice"], "25 hours exceeds the 20-hour limit")
	assert.False(t, tagged["Intro to ML"], "10 hours fits the limit")
}

func TestRecommendationRankOrdersByScore(t *testing.T) {
	svc := NewRecommendationService(newTestCatalog(t))

	scored, err := svc.Rank(context.Background(), recommend.Prefs{Level: recommend.LevelExpert})
	require.NoError(t, err)
	require.Len(t, scored, 3)
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}
	assert.Equal(t, "ML Systems at Scale", scored[0].Title, "level bonus plus highest composite")
}

func TestRecommendationEmptyCatalog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "courses.json"), []byte(`[]`), 0o644))

	repo := repository.NewCatalogRepository(repository.NewLocalContentSource(dir), nil)
	cfg := testConfig()
	cfg.Content.CourseCatalogs = []string{"courses.json"}
	svc := NewRecommendationService(NewCatalogService(repo, cfg))

	_, err := svc.ForPrefs(context.Background(), recommend.Prefs{Level: recommend.LevelBeginner})
	assert.ErrorIs(t, err, util.ErrCatalogUnavailable)
}
