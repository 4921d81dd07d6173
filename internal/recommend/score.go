package recommend

import "strings"

const (
	levelMatchBonus   = 0.2
	levelMatchPenalty = 0.1
)

// signals 八路归一化信号，评分与贡献解释共用同一份取值逻辑
type signals struct {
	finalNorm  float64
	relevance  float64
	rating     float64
	popularity float64
	engagement float64
	freshness  float64
	sentiment  float64
	capstone   float64
}

func extractSignals(a Analytics) signals {
	finalNorm := 0.0
	if fcs := deref(a.FinalComparisonScore); fcs != 0 {
		finalNorm = clamp01(fcs / 100)
	}
	capstone := 0.0
	if a.Features.HasCapstoneProject {
		capstone = 1
	}
	return signals{
		finalNorm:  finalNorm,
		relevance:  clamp01(deref(a.RelevanceScore)),
		rating:     clamp01(deref(a.NormalizedRating)),
		popularity: clamp01(deref(a.NormalizedPopularity)),
		engagement: clamp01(deref(a.EngagementScore)),
		freshness:  clamp01(deref(a.FreshnessScore)),
		sentiment:  clamp01(deref(a.Sentiment.Score)),
		capstone:   capstone,
	}
}

// ScoreCourse 课程与用户偏好的匹配度，∈[0,1]。
// 八路信号加权求和，课程等级与用户等级一致加 0.2、不一致减 0.1
func ScoreCourse(course Course, prefs Prefs) float64 {
	w := resolveWeights(prefs.Weights)
	s := extractSignals(course.Analytics)

	score := w.FinalComparison*s.finalNorm +
		w.Relevance*s.relevance +
		w.Rating*s.rating +
		w.Popularity*s.popularity +
		w.Engagement*s.engagement +
		w.Freshness*s.freshness +
		w.Sentiment*s.sentiment +
		w.Capstone*s.capstone

	if prefs.Level != "" {
		if strings.EqualFold(normalizeLevel(course.Level), strings.TrimSpace(prefs.Level)) {
			score += levelMatchBonus
		} else {
			score -= levelMatchPenalty
		}
	}
	return clamp01(score)
}

// ComputeDrivers 各信号贡献，按贡献降序。
// 独立于 ScoreCourse 重新计算，等级加成不计入任何驱动项
func ComputeDrivers(a Analytics, w Weights) []Driver {
	s := extractSignals(a)
	drivers := []Driver{
		{Key: "final_comparison", Name: "Final Comparison", Weight: w.FinalComparison, Value: s.finalNorm},
		{Key: "relevance", Name: "Relevance", Weight: w.Relevance, Value: s.relevance},
		{Key: "rating", Name: "Rating", Weight: w.Rating, Value: s.rating},
		{Key: "popularity", Name: "Popularity", Weight: w.Popularity, Value: s.popularity},
		{Key: "engagement", Name: "Engagement", Weight: w.Engagement, Value: s.engagement},
		{Key: "freshness", Name: "Freshness", Weight: w.Freshness, Value: s.freshness},
		{Key: "sentiment", Name: "Sentiment", Weight: w.Sentiment, Value: s.sentiment},
		{Key: "capstone", Name: "Capstone", Weight: w.Capstone, Value: s.capstone},
	}
	for i := range drivers {
		drivers[i].Contribution = drivers[i].Weight * drivers[i].Value
	}
	sortDriversByContribution(drivers)
	return drivers
}
