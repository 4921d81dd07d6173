package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileIsPure(t *testing.T) {
	q := &Question{ID: "r1", Tag: "RAG/Vector", Type: TypeMCQ, Difficulty: 6, CorrectAnswer: "a"}

	profile := NewLearnerProfile([]string{"RAG/Vector"})
	profile.TagsToTest = []string{"RAG/Vector"}
	before := profile.Clone()

	up1 := UpdateProfile(profile, q, Answer{Text: "a"}, true, nil)
	up2 := UpdateProfile(profile, q, Answer{Text: "a"}, true, nil)

	assert.Equal(t, before, profile, "input profile must not be mutated")
	assert.Equal(t, up1, up2, "same inputs, same outputs")
	assert.NotEqual(t, profile, up1)
}

func TestUpdateProfileAccumulators(t *testing.T) {
	q := &Question{ID: "r1", Tag: "RAG/Vector", Type: TypeMCQ, Difficulty: 6}
	profile := NewLearnerProfile([]string{"RAG/Vector"})

	up := UpdateProfile(profile, q, Answer{Text: "a"}, true, nil)
	assert.Equal(t, 1, up.AnsweredCount)
	assert.Equal(t, []string{"r1"}, up.QuestionsAsked)
	assert.Equal(t, TagScore{Correct: 1, Total: 1, WeightedScore: 6}, up.TagScores["RAG/Vector"])
	assert.Equal(t, 6, up.TagLevels["RAG/Vector"], "correct answer nudges level up")

	q2 := &Question{ID: "r2", Tag: "RAG/Vector", Type: TypeMCQ, Difficulty: 4}
	up = UpdateProfile(up, q2, Answer{Text: "x"}, false, nil)
	assert.Equal(t, TagScore{Correct: 1, Total: 2, WeightedScore: 6}, up.TagScores["RAG/Vector"])
	assert.Equal(t, 5, up.TagLevels["RAG/Vector"], "wrong answer nudges level down")
}

func TestUpdateProfileClampsLevels(t *testing.T) {
	profile := NewLearnerProfile([]string{"Data"})
	profile.TagLevels["Data"] = MaxDifficulty

	q := &Question{ID: "d1", Tag: "Data", Type: TypeMCQ}
	up := UpdateProfile(profile, q, Answer{Text: "a"}, true, nil)
	assert.Equal(t, MaxDifficulty, up.TagLevels["Data"])

	up.TagLevels["Data"] = MinDifficulty
	q2 := &Question{ID: "d2", Tag: "Data", Type: TypeMCQ}
	up = UpdateProfile(up, q2, Answer{}, false, nil)
	assert.Equal(t, MinDifficulty, up.TagLevels["Data"])
}

func TestUpdateProfileProfilerExemption(t *testing.T) {
	profile := NewLearnerProfile([]string{"Data"})

	q := &Question{ID: "p1", Tag: ProfilerTag}
	up := UpdateProfile(profile, q, Answer{Text: "job"}, true, nil)

	assert.Equal(t, Answer{Text: "job"}, up.ProfilerAnswers["p1"])
	assert.NotContains(t, up.TagLevels, ProfilerTag, "profiler answers never touch level estimates")
	assert.Equal(t, 1, up.TagScores[ProfilerTag].Total)
}

func TestBeginnerPivotTriggersAfterFourAnswers(t *testing.T) {
	profile := NewLearnerProfile([]string{"Data", "Core ML"})
	profile.TagsToTest = []string{"Data", "Core ML"}

	// 前四题 [错, 错, 对, 错] => 错 3 次，触发转向
	history := []bool{false, false, true, false}
	for i, correct := range history {
		q := &Question{ID: string(rune('a' + i)), Tag: "Data", Type: TypeMCQ}
		profile = UpdateProfile(profile, q, Answer{Text: "x"}, correct, nil)
		if i < 3 {
			assert.False(t, profile.IsBeginnerPivot, "pivot must not fire before four answers")
		}
	}

	require.True(t, profile.IsBeginnerPivot)
	assert.Equal(t, []string{ProfilerTag}, profile.TagsToTest)
}

func TestBeginnerPivotIsOneWay(t *testing.T) {
	profile := NewLearnerProfile([]string{"Data"})
	for i := 0; i < 4; i++ {
		q := &Question{ID: string(rune('a' + i)), Tag: "Data", Type: TypeMCQ}
		profile = UpdateProfile(profile, q, Answer{}, false, nil)
	}
	require.True(t, profile.IsBeginnerPivot)

	// 继续答对也不能回退
	for i := 0; i < 5; i++ {
		q := &Question{ID: string(rune('m' + i)), Tag: "Data", Type: TypeMCQ}
		profile = UpdateProfile(profile, q, Answer{Text: "a"}, true, nil)
		assert.True(t, profile.IsBeginnerPivot)
	}
}

func TestNoPivotWithTwoWrong(t *testing.T) {
	profile := NewLearnerProfile([]string{"Data"})
	for i, correct := range []bool{false, true, false, true} {
		q := &Question{ID: string(rune('a' + i)), Tag: "Data", Type: TypeMCQ}
		profile = UpdateProfile(profile, q, Answer{}, correct, nil)
	}
	assert.False(t, profile.IsBeginnerPivot)
	assert.Len(t, profile.FirstFour, 4)

	// 窗口已满，后续对错不再入窗
	q := &Question{ID: "z", Tag: "Data", Type: TypeMCQ}
	profile = UpdateProfile(profile, q, Answer{}, false, nil)
	assert.Len(t, profile.FirstFour, 4)
	assert.False(t, profile.IsBeginnerPivot)
}
