package model

import (
	"encoding/json"
	"strconv"
	"strings"

	"course_compass_backend/internal/recommend"
)

const defaultCourseTitle = "Untitled Course"

// FlexFloat 兼容数字与数字字符串两种写法的 JSON 字段。
// 目录数据源里 ratingValue/totalHours 常以字符串出现，
// 解析失败时取字符串的数字前缀，完全无法解析记 0
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*f = FlexFloat(leadingFloat(str))
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// leadingFloat 取字符串开头的数字部分，如 "4.6 stars" => 4.6
func leadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	seenDot := false
	for end < len(s) {
		ch := s[end]
		if ch >= '0' && ch <= '9' {
			end++
			continue
		}
		if ch == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		if (ch == '-' || ch == '+') && end == 0 {
			end++
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// RawCompositeScores 课程分析的嵌套综合分块
type RawCompositeScores struct {
	ContentFreshnessScore *FlexFloat `json:"content_freshness_score"`
	CourseEngagementScore *FlexFloat `json:"course_engagement_score"`
}

type RawSentiment struct {
	SentimentScore     *FlexFloat `json:"sentiment_score"`
	DetectedStrengths  []string   `json:"detected_strengths"`
	DetectedPainPoints []string   `json:"detected_pain_points"`
}

type RawContentFeatures struct {
	HasCapstoneProject bool `json:"has_capstone_project"`
}

// RawAnalytics 原始分析块。新鲜度与互动度既可能出现在
// composite_scores 里也可能平铺在顶层，归一化时前者优先
type RawAnalytics struct {
	FinalComparisonScore  *FlexFloat          `json:"final_comparison_score"`
	RelevanceScore        *FlexFloat          `json:"relevance_score"`
	NormalizedRating      *FlexFloat          `json:"normalized_rating"`
	NormalizedPopularity  *FlexFloat          `json:"normalized_popularity"`
	ContentFreshnessScore *FlexFloat          `json:"content_freshness_score"`
	CourseEngagementScore *FlexFloat          `json:"course_engagement_score"`
	CompositeScores       *RawCompositeScores `json:"composite_scores"`
	SentimentAnalysis     *RawSentiment       `json:"sentiment_analysis"`
	ContentFeatures       *RawContentFeatures `json:"content_features"`
	FilterTags            []string            `json:"filter_tags"`
}

// RawCourse 目录 JSON 的宽松外部形态。
// 各数据源字段命名并不统一，这里把所有见过的别名都收进来，
// 归一化一次性消解，下游只消费 recommend.Course
type RawCourse struct {
	Index       int           `json:"index"`
	Title       string        `json:"title"`
	Name        string        `json:"name"`
	CourseTitle string        `json:"courseTitle"`
	Link        string        `json:"link"`
	Level       string        `json:"level"`
	LevelUpper  string        `json:"Level"`
	Topics      []string      `json:"topics"`
	TotalHours  *FlexFloat    `json:"totalHours"`
	RatingValue *FlexFloat    `json:"ratingValue"`
	Rating      *FlexFloat    `json:"Rating"`
	Thumbnail   string        `json:"thumbnail"`
	ImageSrc    string        `json:"imageSrc"`
	Image       string        `json:"image"`
	Analytics   *RawAnalytics `json:"analytics"`
}

// Normalize 把原始课程条目转换为规范形态
func (r RawCourse) Normalize() recommend.Course {
	c := recommend.Course{
		Index:     r.Index,
		Title:     firstNonEmpty(r.Title, r.Name, r.CourseTitle, defaultCourseTitle),
		Link:      r.Link,
		Level:     firstNonEmpty(strings.TrimSpace(r.Level), strings.TrimSpace(r.LevelUpper), recommend.LevelBeginner),
		Topics:    r.Topics,
		Thumbnail: firstNonEmpty(r.Thumbnail, r.ImageSrc, r.Image),
	}
	if r.TotalHours != nil {
		c.TotalHours = float64(*r.TotalHours)
	}
	if r.RatingValue != nil && *r.RatingValue != 0 {
		c.Rating = float64(*r.RatingValue)
	} else if r.Rating != nil {
		c.Rating = float64(*r.Rating)
	}
	if r.Analytics != nil {
		c.Analytics = r.Analytics.normalize()
	}
	return c
}

func (r RawAnalytics) normalize() recommend.Analytics {
	a := recommend.Analytics{
		FinalComparisonScore: floatPtr(r.FinalComparisonScore),
		RelevanceScore:       floatPtr(r.RelevanceScore),
		NormalizedRating:     floatPtr(r.NormalizedRating),
		NormalizedPopularity: floatPtr(r.NormalizedPopularity),
		FreshnessScore:       floatPtr(r.ContentFreshnessScore),
		EngagementScore:      floatPtr(r.CourseEngagementScore),
		FilterTags:           trimmedTags(r.FilterTags),
	}
	if r.CompositeScores != nil {
		if r.CompositeScores.ContentFreshnessScore != nil {
			a.FreshnessScore = floatPtr(r.CompositeScores.ContentFreshnessScore)
		}
		if r.CompositeScores.CourseEngagementScore != nil {
			a.EngagementScore = floatPtr(r.CompositeScores.CourseEngagementScore)
		}
	}
	if r.SentimentAnalysis != nil {
		a.Sentiment = recommend.Sentiment{
			Score:      floatPtr(r.SentimentAnalysis.SentimentScore),
			Strengths:  r.SentimentAnalysis.DetectedStrengths,
			PainPoints: r.SentimentAnalysis.DetectedPainPoints,
		}
	}
	if r.ContentFeatures != nil {
		a.Features = recommend.Features{HasCapstoneProject: r.ContentFeatures.HasCapstoneProject}
	}
	return a
}

// NormalizeCourses 批量归一化
func NormalizeCourses(raw []RawCourse) []recommend.Course {
	out := make([]recommend.Course, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.Normalize())
	}
	return out
}

func floatPtr(f *FlexFloat) *float64 {
	if f == nil {
		return nil
	}
	v := float64(*f)
	return &v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func trimmedTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
