package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestBankRepositoryMergesDocuments(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "mcq.json", `[
		{"id":"q1","tag":"Data","type":"MCQ","text":"t","correctAnswer":"a","difficulty":5},
		{"id":"q2","tag":"Core ML","type":"MCQ","text":"t","correctAnswer":"b","difficulty":3}
	]`)
	writeDoc(t, dir, "profiler.json", `[
		{"id":"p1","tag":"Profiler","type":"profiler-single","text":"goal?"}
	]`)

	repo := NewBankRepository(NewLocalContentSource(dir), nil)
	questions, err := repo.LoadQuestions(context.Background(), []string{"mcq.json", "profiler.json"})

	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, "Profiler", questions[2].Tag)
}

func TestBankRepositorySkipsMissingAndMalformed(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "good.json", `[{"id":"q1","tag":"Data","type":"MCQ","text":"t"}]`)
	writeDoc(t, dir, "broken.json", `{not json`)

	repo := NewBankRepository(NewLocalContentSource(dir), nil)
	questions, err := repo.LoadQuestions(context.Background(), []string{"missing.json", "broken.json", "good.json"})

	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "q1", questions[0].ID)
}
