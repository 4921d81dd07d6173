package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixedBank() []Question {
	return []Question{
		{ID: "b1", Tag: "Data", Type: TypeMCQ, Stage: "Basics", CorrectAnswer: "a", Domains: []string{"Data"}},
		{ID: "c1", Tag: "Core ML", Type: TypeMCQ, Stage: "Concepts", CorrectAnswer: "a", Domains: []string{"Core ML"}},
		{ID: "d1", Tag: "RAG/Vector", Type: TypeMCQ, Stage: "Depth", CorrectAnswer: "a", Domains: []string{"RAG/Vector", "Architecture"}},
	}
}

func TestScoreFixedAssessmentStageWeights(t *testing.T) {
	answers := map[string]Answer{
		"b1": {Text: "a"},
		"c1": {Text: "a"},
		"d1": {Text: "x"},
	}

	res := ScoreFixedAssessment(fixedBank(), answers, nil, "")

	// Basics 1 + Concepts 3 命中，Depth 5 落空
	assert.Equal(t, 4, res.TotalWeightedScore)
	assert.Equal(t, 9, res.MaxWeightedScore)
	assert.Equal(t, 44, res.OverallPct)
	assert.Equal(t, LevelBeginner, res.Level, "4/9 misses the 0.45 bar")
}

func TestScoreFixedAssessmentLevelThresholds(t *testing.T) {
	bank := fixedBank()

	all := map[string]Answer{"b1": {Text: "a"}, "c1": {Text: "a"}, "d1": {Text: "a"}}
	res := ScoreFixedAssessment(bank, all, nil, "")
	assert.Equal(t, LevelExpert, res.Level)
	assert.Equal(t, 100, res.OverallPct)

	// 5/9 ≈ 0.56 落在中级档
	depthOnly := map[string]Answer{"d1": {Text: "a"}}
	res = ScoreFixedAssessment(bank, depthOnly, nil, "")
	assert.Equal(t, LevelIntermediate, res.Level)
}

func TestScoreFixedAssessmentStatedLevelOnlyLowers(t *testing.T) {
	bank := fixedBank()
	all := map[string]Answer{"b1": {Text: "a"}, "c1": {Text: "a"}, "d1": {Text: "a"}}

	res := ScoreFixedAssessment(bank, all, nil, LevelBeginner)
	assert.Equal(t, LevelBeginner, res.Level, "self-reported Beginner caps the result")

	none := map[string]Answer{}
	res = ScoreFixedAssessment(bank, none, nil, LevelExpert)
	assert.Equal(t, LevelBeginner, res.Level, "self-reported level never raises the result")
}

func TestScoreFixedAssessmentDomainPerformance(t *testing.T) {
	answers := map[string]Answer{"d1": {Text: "a"}}
	res := ScoreFixedAssessment(fixedBank(), answers, nil, "")

	// d1 同时归集到两个领域
	assert.Equal(t, 5, res.DomainPerformance["RAG/Vector"])
	assert.Equal(t, 5, res.DomainPerformance["Architecture"])
	assert.Equal(t, 5, res.DomainMax["RAG/Vector"])
	assert.Equal(t, 1, res.DomainMax["Data"])

	assert.Equal(t, []string{"Core ML", "Data"}, res.WeakDomains, "sorted, below 0.5 ratio")
}

func TestScoreFixedAssessmentMissingStageAndDomains(t *testing.T) {
	bank := []Question{
		{ID: "x1", Tag: "Ethics", Type: TypeMCQ, CorrectAnswer: "a"},
	}
	res := ScoreFixedAssessment(bank, map[string]Answer{"x1": {Text: "a"}}, nil, "")

	assert.Equal(t, 1, res.TotalWeightedScore, "unknown stage falls back to weight 1")
	assert.Equal(t, 1, res.DomainPerformance["Ethics"], "missing domains fall back to the tag")
}

func TestScoreFixedAssessmentEmptyBank(t *testing.T) {
	res := ScoreFixedAssessment(nil, nil, nil, "")
	assert.Equal(t, 0, res.OverallPct)
	assert.Equal(t, LevelBeginner, res.Level)
	assert.Empty(t, res.WeakDomains)
}
