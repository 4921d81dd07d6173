package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeMCQVariants(t *testing.T) {
	for _, typ := range []string{TypeMCQ, TypeMCQMatching, TypeMCQReorder, TypeMCQScenario} {
		q := &Question{ID: "q", Tag: "Data", Type: typ, CorrectAnswer: "b"}

		assert.True(t, Grade(q, Answer{Text: "b"}).Correct, "type %s", typ)
		assert.False(t, Grade(q, Answer{Text: "a"}).Correct, "type %s", typ)
		assert.False(t, Grade(q, Answer{}).Correct, "empty answer never matches, type %s", typ)
	}
}

func TestGradeMCQEmptyCorrectAnswer(t *testing.T) {
	// 脏数据：标准答案缺失时空作答不得判对
	q := &Question{ID: "q", Tag: "Data", Type: TypeMCQ}
	assert.False(t, Grade(q, Answer{}).Correct)
}

func TestGradeMCMSSetEquality(t *testing.T) {
	q := &Question{ID: "q", Tag: "Data", Type: TypeMCMS, CorrectAnswers: []string{"a", "c"}}

	assert.True(t, Grade(q, Answer{Choices: []string{"c", "a"}}).Correct, "order must not matter")
	assert.False(t, Grade(q, Answer{Choices: []string{"a"}}).Correct)
	assert.False(t, Grade(q, Answer{Choices: []string{"a", "b"}}).Correct)
	assert.False(t, Grade(q, Answer{Choices: []string{"a", "b", "c"}}).Correct)
}

func TestGradeWrittenAnswer(t *testing.T) {
	q := &Question{
		ID:          "q",
		Tag:         "RAG/Vector",
		Type:        TypeShortAnswer,
		MinLength:   3,
		ScoringTags: scoringFixture(),
	}

	res := Grade(q, Answer{Text: "embedding with vector database retrieval chunk index"})
	require.NotNil(t, res.Written)
	assert.True(t, res.Correct)
	assert.InDelta(t, 1.0, res.Written.TagScores["RAG/Vector"], 1e-9)

	res = Grade(q, Answer{Text: "no idea"})
	require.NotNil(t, res.Written)
	assert.False(t, res.Correct, "below min length scores zero everywhere")
}

func TestGradeProfilerAlwaysCorrect(t *testing.T) {
	q := &Question{ID: "p1", Tag: ProfilerTag, Type: "profiler-single"}
	assert.True(t, Grade(q, Answer{Text: "job"}).Correct)
}

func TestGradeUnknownTypeWordCountFallback(t *testing.T) {
	q := &Question{ID: "q", Tag: "Data", Type: "essay", MinLength: 3}

	assert.True(t, Grade(q, Answer{Text: "one two three"}).Correct)
	assert.False(t, Grade(q, Answer{Text: "one two"}).Correct)
	assert.False(t, Grade(q, Answer{}).Correct)
}
