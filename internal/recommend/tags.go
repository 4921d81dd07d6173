package recommend

import (
	"fmt"
	"math"
	"strings"
)

// 徽章阈值
const (
	topRatedThreshold       = 0.9
	popularThreshold        = 0.6
	freshContentThreshold   = 0.7
	highEngagementThreshold = 0.75
)

// GenerateTags 为单个课程生成展示标签。
// 依次产出：主题标签（filter_tags）、情感强项/痛点、阈值徽章、总评分标签、
// 数值指标标签；随后按小写名称去重合并（保留首次出现的顺序），
// 最后按用户偏好标记 Match 与 DurationMismatch
func GenerateTags(course Course, prefs Prefs) []Tag {
	var raw []Tag

	seen := map[string]bool{}
	for _, t := range course.Analytics.FilterTags {
		name := strings.TrimSpace(t)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		raw = append(raw, Tag{Name: name, Type: TagTopic, Source: "filter_tags"})
	}

	for _, s := range course.Analytics.Sentiment.Strengths {
		raw = append(raw, Tag{Name: s, Type: TagInterest, Source: "sentiment"})
	}
	for _, p := range course.Analytics.Sentiment.PainPoints {
		raw = append(raw, Tag{Name: p, Type: TagWeakness, Source: "sentiment"})
	}

	a := course.Analytics
	if clamp01(deref(a.NormalizedRating)) >= topRatedThreshold {
		raw = append(raw, Tag{Name: "Top Rated", Type: TagBadge, Source: "normalized_rating"})
	}
	if clamp01(deref(a.NormalizedPopularity)) >= popularThreshold {
		raw = append(raw, Tag{Name: "Popular", Type: TagBadge, Source: "normalized_popularity"})
	}
	if clamp01(deref(a.FreshnessScore)) >= freshContentThreshold {
		raw = append(raw, Tag{Name: "Fresh Content", Type: TagBadge, Source: "content_freshness_score"})
	}
	if clamp01(deref(a.EngagementScore)) >= highEngagementThreshold {
		raw = append(raw, Tag{Name: "High Engagement", Type: TagBadge, Source: "course_engagement_score"})
	}
	if a.Features.HasCapstoneProject {
		raw = append(raw, Tag{Name: "Capstone Project", Type: TagBadge, Source: "content_features"})
	}

	if a.FinalComparisonScore != nil {
		raw = append(raw, Tag{
			Name:   fmt.Sprintf("Score: %d", int(math.Round(*a.FinalComparisonScore))),
			Type:   TagScore,
			Source: "final_comparison_score",
		})
	}

	raw = append(raw, metricTags(a)...)

	// 小写名称去重，保留首次出现的条目与顺序
	var order []string
	merged := map[string]*Tag{}
	for i := range raw {
		t := raw[i]
		t.Name = strings.TrimSpace(t.Name)
		key := strings.ToLower(t.Name)
		existing, ok := merged[key]
		if !ok {
			copied := t
			merged[key] = &copied
			order = append(order, key)
			continue
		}
		if existing.Type == TagWeakness && t.Type == TagInterest {
			existing.Type = TagMixed
		}
		if existing.Type == TagInterest && t.Type == TagWeakness {
			existing.Type = TagMixed
		}
		if t.Type == TagBadge {
			existing.Type = TagBadge
		}
	}

	chosenTopics := map[string]bool{}
	for _, topic := range prefs.Topics {
		chosenTopics[strings.ToLower(strings.TrimSpace(topic))] = true
	}
	durationMismatch := prefs.MaxHours > 0 && course.TotalHours > prefs.MaxHours

	tags := make([]Tag, 0, len(order))
	for _, key := range order {
		t := merged[key]
		t.Match = chosenTopics[key]
		t.DurationMismatch = durationMismatch
		tags = append(tags, *t)
	}
	return tags
}

func metricTags(a Analytics) []Tag {
	var tags []Tag
	add := func(label, source string, p *float64) {
		if p == nil {
			return
		}
		tags = append(tags, Tag{
			Name:   fmt.Sprintf("%s: %.2f", label, *p),
			Type:   TagMetric,
			Source: source,
			Value:  *p,
		})
	}
	add("Relevance", "relevance_score", a.RelevanceScore)
	add("Rating", "normalized_rating", a.NormalizedRating)
	add("Popularity", "normalized_popularity", a.NormalizedPopularity)
	add("Freshness", "content_freshness_score", a.FreshnessScore)
	add("Engagement", "course_engagement_score", a.EngagementScore)
	add("Sentiment", "sentiment_score", a.Sentiment.Score)
	return tags
}
