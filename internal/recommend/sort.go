package recommend

import (
	"sort"
	"strings"
)

// 目录浏览的排序键
const (
	SortAIScoreDesc = "ai_score_desc"
	SortRatingDesc  = "rating_desc"
	SortDurationAsc = "duration_asc"
	SortTitleAsc    = "title_asc"
)

// ApplySorting 按排序键返回排好序的目录副本，未知键原序返回
func ApplySorting(courses []Course, sortKey string) []Course {
	out := make([]Course, len(courses))
	copy(out, courses)

	switch sortKey {
	case SortAIScoreDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return deref(out[i].Analytics.FinalComparisonScore) > deref(out[j].Analytics.FinalComparisonScore)
		})
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case SortDurationAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TotalHours < out[j].TotalHours
		})
	case SortTitleAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	}
	return out
}
