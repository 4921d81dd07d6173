package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepositoryMergesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "beginner.json", `[
		{"title":"Intro AI","level":"Beginner","ratingValue":"4.5","totalHours":"8"},
		{"name":"Untyped"}
	]`)
	writeDoc(t, dir, "expert.json", `[
		{"title":"Scaling LLMs","level":"Expert","analytics":{"final_comparison_score":88}}
	]`)

	repo := NewCatalogRepository(NewLocalContentSource(dir), nil)
	courses, err := repo.LoadCourses(context.Background(), []string{"beginner.json", "expert.json", "nope.json"})

	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, 4.5, courses[0].Rating)
	assert.Equal(t, "Beginner", courses[1].Level, "missing level defaults")
	require.NotNil(t, courses[2].Analytics.FinalComparisonScore)
	assert.Equal(t, 88.0, *courses[2].Analytics.FinalComparisonScore)
}
