package recommend

import (
	"sort"
	"strconv"
	"strings"
)

const maxRecommendations = 6

// ProfileSummary 评估结论中与推荐相关的部分
type ProfileSummary struct {
	Level        string   `json:"level"`
	InterestTags []string `json:"interestTags"`
	WeaknessTags []string `json:"weaknessTags"`
}

// RecommendationSet 结构化推荐结果：首选课程、各等级榜首、去重后的推荐列表
type RecommendationSet struct {
	TopMatch        *Course            `json:"topMatch"`
	PerLevel        map[string]*Course `json:"perLevel"`
	Recommendations []Course           `json:"recommendations"`
}

// BuildRecommendationSet 根据评估结论在目录中挑选结构化推荐。
// topMatch 在用户等级的课程池内按主题命中数与总评分挑选；
// perLevel 为三个等级各自的最高分课程；推荐列表依次纳入
// topMatch、各等级榜首、全目录高分课程，按链接（缺失则标题）去重，上限 6 条
func BuildRecommendationSet(summary ProfileSummary, courses []Course, targetTopics []string) RecommendationSet {
	level := normalizeLevel(summary.Level)

	perLevel := map[string]*Course{
		LevelBeginner:     nil,
		LevelIntermediate: nil,
		LevelExpert:       nil,
	}
	for lv := range perLevel {
		pool := coursesAtLevel(courses, lv)
		perLevel[lv] = pickTopByAnalytics(pool)
	}

	var topMatch *Course
	levelPool := coursesAtLevel(courses, level)
	if len(levelPool) > 0 {
		// 兴趣标签优先，无兴趣标签时退到弱项标签
		tags := summary.InterestTags
		if len(tags) == 0 {
			tags = summary.WeaknessTags
		}
		best := levelPool[0]
		bestScore := topMatchScore(best, tags, targetTopics)
		for _, c := range levelPool[1:] {
			if s := topMatchScore(c, tags, targetTopics); s > bestScore {
				best, bestScore = c, s
			}
		}
		copied := best
		topMatch = &copied
	}
	if topMatch == nil {
		topMatch = perLevel[level]
	}
	if topMatch == nil {
		topMatch = perLevel[LevelBeginner]
	}

	seen := map[string]bool{}
	var recommendations []Course
	push := func(c *Course) {
		if c == nil {
			return
		}
		key := c.Link
		if key == "" {
			key = c.Title
		}
		if key == "" {
			key = strconv.Itoa(c.Index)
		}
		if seen[key] {
			return
		}
		seen[key] = true
		recommendations = append(recommendations, *c)
	}

	push(topMatch)
	for _, lv := range []string{LevelBeginner, LevelIntermediate, LevelExpert} {
		push(perLevel[lv])
	}

	// 余下名额：全目录按总评分加主题命中加成排序
	preferTags := summary.InterestTags
	if len(preferTags) == 0 {
		preferTags = summary.WeaknessTags
	}
	others := make([]Course, len(courses))
	copy(others, courses)
	sort.SliceStable(others, func(i, j int) bool {
		return otherScore(others[i], preferTags, targetTopics) > otherScore(others[j], preferTags, targetTopics)
	})
	for i := 0; i < len(others) && i < 10; i++ {
		push(&others[i])
	}

	if len(recommendations) == 0 {
		for i := 0; i < len(courses) && i < 3; i++ {
			recommendations = append(recommendations, courses[i])
		}
	}
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	return RecommendationSet{TopMatch: topMatch, PerLevel: perLevel, Recommendations: recommendations}
}

// coursesAtLevel 先按归一化等级精确匹配，落空后放宽为
// 等级字符串包含或 filter_tags 命中
func coursesAtLevel(courses []Course, level string) []Course {
	if level == "" {
		return nil
	}
	want := strings.ToLower(level)

	var exact []Course
	for _, c := range courses {
		if lv := normalizeLevel(c.Level); lv != "" && strings.ToLower(lv) == want {
			exact = append(exact, c)
		}
	}
	if len(exact) > 0 {
		return exact
	}

	var loose []Course
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Level), want) || hasFilterTag(c, want) {
			loose = append(loose, c)
		}
	}
	return loose
}

func hasFilterTag(c Course, lowered string) bool {
	for _, t := range c.Analytics.FilterTags {
		if strings.ToLower(strings.TrimSpace(t)) == lowered {
			return true
		}
	}
	return false
}

// pickTopByAnalytics 按总评分取最高，评分相同时比归一化评分
func pickTopByAnalytics(pool []Course) *Course {
	if len(pool) == 0 {
		return nil
	}
	sorted := make([]Course, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(i, j int) bool {
		fi, fj := deref(sorted[i].Analytics.FinalComparisonScore), deref(sorted[j].Analytics.FinalComparisonScore)
		if fi != fj {
			return fi > fj
		}
		return deref(sorted[i].Analytics.NormalizedRating) > deref(sorted[j].Analytics.NormalizedRating)
	})
	top := sorted[0]
	return &top
}

func topicMatchCount(c Course, tags, topics []string) int {
	count := 0
	for _, t := range c.Topics {
		if containsString(tags, t) || containsString(topics, t) {
			count++
		}
	}
	return count
}

func topMatchScore(c Course, tags, topics []string) float64 {
	return float64(topicMatchCount(c, tags, topics))*10 + deref(c.Analytics.FinalComparisonScore)
}

func otherScore(c Course, preferTags, topics []string) float64 {
	return deref(c.Analytics.FinalComparisonScore) + float64(topicMatchCount(c, preferTags, topics))*5
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
