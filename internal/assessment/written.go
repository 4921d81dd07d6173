package assessment

import (
	"math"
	"strings"
)

// ScoreWrittenAnswer 用关键词表为主观题打分。
// 词数按空白切分统计，低于最小词数时所有子标签记 0 分。
// 每个关键词大小写不敏感地在全文中做子串匹配，重复出现只计一次。
// 子标签得分 = min(1, (主+0.5*次)/max(1, |主|+0.5*|次|))，保留 3 位小数
func ScoreWrittenAnswer(answerText string, scoringTags map[string]KeywordList, minLength int) WrittenResult {
	text := strings.ToLower(answerText)
	wordCount := len(strings.Fields(answerText))

	result := WrittenResult{
		WordCount: wordCount,
		TagScores: make(map[string]float64, len(scoringTags)),
	}

	if wordCount < minLength {
		for tag := range scoringTags {
			result.TagScores[tag] = 0
		}
		return result
	}

	for tag, lists := range scoringTags {
		primFound, secFound := 0, 0
		for _, k := range lists.Primary {
			if k != "" && strings.Contains(text, strings.ToLower(k)) {
				primFound++
			}
		}
		for _, k := range lists.Secondary {
			if k != "" && strings.Contains(text, strings.ToLower(k)) {
				secFound++
			}
		}
		denom := math.Max(1, float64(len(lists.Primary))+0.5*float64(len(lists.Secondary)))
		score := math.Min(1, (float64(primFound)+0.5*float64(secFound))/denom)
		result.TagScores[tag] = math.Round(score*1000) / 1000
	}

	return result
}
