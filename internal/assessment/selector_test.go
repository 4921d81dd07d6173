package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectNextTargetsNearestDifficulty(t *testing.T) {
	bank := []Question{
		{ID: "d2", Tag: "Data", Type: TypeMCQ, Text: "t2", Difficulty: 2},
		{ID: "d5", Tag: "Data", Type: TypeMCQ, Text: "t5", Difficulty: 5},
		{ID: "d8", Tag: "Data", Type: TypeMCQ, Text: "t8", Difficulty: 8},
	}
	pool := Preprocess(bank, NopShuffler{})

	profile := NewLearnerProfile([]string{"Data"})
	profile.TagsToTest = []string{"Data"}

	res := SelectNext(&profile, pool, []string{"Data"}, NopShuffler{})
	require.NotNil(t, res.Question)
	assert.Equal(t, "d5", res.Question.ID)

	// 目标桶取空后向外搜索：+1 方向优先于 -1
	profile.QuestionsAsked = []string{"d5"}
	profile.TagsToTest = []string{"Data"}
	res = SelectNext(&profile, pool, []string{"Data"}, NopShuffler{})
	require.NotNil(t, res.Question)
	assert.Equal(t, "d8", res.Question.ID, "difficulty 8 is at offset +3, difficulty 2 at -3; upward wins")
}

func TestSelectNextNeverRepeatsQuestions(t *testing.T) {
	pool := Preprocess(bankFixture(), NewRandShuffler(fixedSource(7)))
	allTags := pool.Tags()

	profile := NewLearnerProfile(allTags)
	seen := map[string]bool{}

	for {
		res := SelectNext(&profile, pool, allTags, NewRandShuffler(fixedSource(7)))
		if res.Question == nil {
			break
		}
		assert.False(t, seen[res.Question.ID], "question %s selected twice", res.Question.ID)
		seen[res.Question.ID] = true

		profile = UpdateProfile(profile, res.Question, Answer{Text: "a"}, true, nil)
		profile.TagsToTest = res.UpdatedTagsToTest
	}
	// 普通题共 5 道，全部耗尽
	assert.Len(t, seen, 5)
}

func TestSelectNextRemovesDrawnTagFromQueue(t *testing.T) {
	pool := Preprocess(bankFixture(), NopShuffler{})

	profile := NewLearnerProfile([]string{"RAG/Vector", "Core ML"})
	profile.TagsToTest = []string{"RAG/Vector", "Core ML"}

	res := SelectNext(&profile, pool, []string{"RAG/Vector", "Core ML"}, NopShuffler{})
	require.NotNil(t, res.Question)
	assert.Equal(t, "RAG/Vector", res.Question.Tag)
	assert.Equal(t, []string{"Core ML"}, res.UpdatedTagsToTest)
}

func TestSelectNextFallsThroughEmptyHeadTag(t *testing.T) {
	bank := []Question{
		{ID: "m1", Tag: "Core ML", Type: TypeMCQ, Text: "t", Difficulty: 5},
	}
	pool := Preprocess(bank, NopShuffler{})

	profile := NewLearnerProfile([]string{"Ethics", "Core ML"})
	profile.TagsToTest = []string{"Ethics", "Core ML"}

	res := SelectNext(&profile, pool, []string{"Ethics", "Core ML"}, NopShuffler{})
	require.NotNil(t, res.Question)
	assert.Equal(t, "m1", res.Question.ID)
	// Ethics 已检查过也被消费掉，Core ML 因出题被移除
	assert.Empty(t, res.UpdatedTagsToTest)
}

func TestSelectNextScansAllTagsWhenQueueExhausted(t *testing.T) {
	bank := []Question{
		{ID: "m1", Tag: "Core ML", Type: TypeMCQ, Text: "t", Difficulty: 5},
	}
	pool := Preprocess(bank, NopShuffler{})

	// 队列只含无题标签，仍应通过全量扫描找到 Core ML 的题
	profile := NewLearnerProfile([]string{"Ethics", "Core ML"})
	profile.TagsToTest = []string{"Ethics"}

	res := SelectNext(&profile, pool, []string{"Ethics", "Core ML"}, NopShuffler{})
	require.NotNil(t, res.Question)
	assert.Equal(t, "m1", res.Question.ID)
}

func TestSelectNextExhaustionReturnsNil(t *testing.T) {
	pool := Preprocess(nil, NopShuffler{})
	profile := NewLearnerProfile([]string{"Data"})

	res := SelectNext(&profile, pool, []string{"Data"}, NopShuffler{})
	assert.Nil(t, res.Question)
}

func TestSelectNextProfilerMode(t *testing.T) {
	pool := Preprocess(bankFixture(), NopShuffler{})

	profile := NewLearnerProfile(pool.Tags())
	profile.IsBeginnerPivot = true
	profile.TagsToTest = []string{ProfilerTag}

	res := SelectNext(&profile, pool, pool.Tags(), NopShuffler{})
	require.NotNil(t, res.Question)
	assert.Equal(t, ProfilerTag, res.Question.Tag)
	first := res.Question.ID

	profile = UpdateProfile(profile, res.Question, Answer{Text: "job"}, true, nil)
	res = SelectNext(&profile, pool, pool.Tags(), NopShuffler{})
	require.NotNil(t, res.Question)
	assert.NotEqual(t, first, res.Question.ID)

	profile = UpdateProfile(profile, res.Question, Answer{Text: "nlp"}, true, nil)
	res = SelectNext(&profile, pool, pool.Tags(), NopShuffler{})
	assert.Nil(t, res.Question, "profiler pool exhausted")
}

func TestSelectNextDoesNotMutateProfile(t *testing.T) {
	pool := Preprocess(bankFixture(), NopShuffler{})

	profile := NewLearnerProfile(pool.Tags())
	profile.TagsToTest = []string{"RAG/Vector"}
	before := profile.Clone()

	SelectNext(&profile, pool, pool.Tags(), NopShuffler{})
	assert.Equal(t, before, profile)
}
