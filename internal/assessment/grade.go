package assessment

import (
	"sort"
	"strings"
)

// GradeResult 一次判题的结论
type GradeResult struct {
	Correct bool
	Written *WrittenResult
}

// Grade 按题型判题。
// 单选类精确匹配；MCMS 按集合相等；主观题走关键词打分；
// 画像题一律记为正确（不影响能力估计）；未知题型按字数下限宽松兜底
func Grade(q *Question, answer Answer) GradeResult {
	switch q.Type {
	case TypeMCQ, TypeMCQMatching, TypeMCQReorder, TypeMCQScenario:
		return GradeResult{Correct: answer.Text != "" && answer.Text == q.CorrectAnswer}
	case TypeMCMS:
		return GradeResult{Correct: sameChoiceSet(q.CorrectAnswers, answer.Choices)}
	case TypeShortAnswer, TypeLongAnswer:
		written := ScoreWrittenAnswer(answer.Text, q.ScoringTags, q.MinLength)
		return GradeResult{Correct: written.Correct(), Written: &written}
	}

	if q.NormalizedTag() == ProfilerTag {
		return GradeResult{Correct: true}
	}

	// 未知题型：有文本作答时按字数下限兜底，避免因脏数据中断评估
	if answer.Text != "" {
		return GradeResult{Correct: len(strings.Fields(answer.Text)) >= q.MinLength}
	}
	return GradeResult{}
}

func sameChoiceSet(expected, got []string) bool {
	if len(expected) != len(got) {
		return false
	}
	a := append([]string(nil), expected...)
	b := append([]string(nil), got...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
