package recommend

import (
	"math"
	"strings"
)

// 标签类型。interest 与 weakness 同名合并为 mixed，badge 优先级最高
const (
	TagTopic    = "topic"
	TagInterest = "interest"
	TagWeakness = "weakness"
	TagBadge    = "badge"
	TagScore    = "score"
	TagMetric   = "metric"
	TagMixed    = "mixed"
)

// 课程等级取值与评估结果保持一致
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelExpert       = "Expert"
)

// Sentiment 课程评论情感分析摘要
type Sentiment struct {
	Score      *float64 `json:"sentiment_score,omitempty"`
	Strengths  []string `json:"detected_strengths,omitempty"`
	PainPoints []string `json:"detected_pain_points,omitempty"`
}

// Features 课程内容特征
type Features struct {
	HasCapstoneProject bool `json:"has_capstone_project"`
}

// Analytics 课程的离线分析指标。
// 指针字段区分缺失与显式 0：缺失的指标不产生对应的 metric 标签。
// 原始数据中 composite_scores 与平铺字段的回退已在入库归一化时消解
type Analytics struct {
	FinalComparisonScore *float64  `json:"final_comparison_score,omitempty"`
	RelevanceScore       *float64  `json:"relevance_score,omitempty"`
	NormalizedRating     *float64  `json:"normalized_rating,omitempty"`
	NormalizedPopularity *float64  `json:"normalized_popularity,omitempty"`
	FreshnessScore       *float64  `json:"content_freshness_score,omitempty"`
	EngagementScore      *float64  `json:"course_engagement_score,omitempty"`
	FilterTags           []string  `json:"filter_tags,omitempty"`
	Sentiment            Sentiment `json:"sentiment_analysis,omitempty"`
	Features             Features  `json:"content_features,omitempty"`
}

// Course 归一化后的课程目录条目
type Course struct {
	Index      int       `json:"index,omitempty"`
	Title      string    `json:"title"`
	Link       string    `json:"link,omitempty"`
	Level      string    `json:"level"`
	Topics     []string  `json:"topics,omitempty"`
	TotalHours float64   `json:"totalHours,omitempty"`
	Rating     float64   `json:"rating,omitempty"`
	Thumbnail  string    `json:"thumbnail,omitempty"`
	Analytics  Analytics `json:"analytics"`
}

// Tag 生成的展示标签。Match 表示命中用户选题，
// DurationMismatch 表示课程时长超出用户上限
type Tag struct {
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	Source           string  `json:"source"`
	Value            float64 `json:"value,omitempty"`
	Match            bool    `json:"match"`
	DurationMismatch bool    `json:"durationMismatch,omitempty"`
}

// Driver 评分中单个信号的贡献，用于向用户解释推荐理由
type Driver struct {
	Key          string  `json:"key"`
	Name         string  `json:"name"`
	Weight       float64 `json:"weight"`
	Value        float64 `json:"value"`
	Contribution float64 `json:"contribution"`
}

// Weights 八路信号的合成权重
type Weights struct {
	FinalComparison float64
	Relevance       float64
	Rating          float64
	Popularity      float64
	Engagement      float64
	Freshness       float64
	Sentiment       float64
	Capstone        float64
}

// DefaultWeights 默认权重向量，总和刻意小于 1，剩余空间留给等级加成
func DefaultWeights() Weights {
	return Weights{
		FinalComparison: 0.30,
		Relevance:       0.20,
		Rating:          0.15,
		Popularity:      0.10,
		Engagement:      0.07,
		Freshness:       0.05,
		Sentiment:       0.05,
		Capstone:        0.03,
	}
}

// Prefs 用户偏好。Weights 为按键覆盖，未给出的键用默认值
type Prefs struct {
	Level    string             `json:"level,omitempty"`
	Topics   []string           `json:"topics,omitempty"`
	MaxHours float64            `json:"maxHours,omitempty"`
	Weights  map[string]float64 `json:"weights,omitempty"`
}

func resolveWeights(overrides map[string]float64) Weights {
	w := DefaultWeights()
	for key, v := range overrides {
		switch key {
		case "final_comparison":
			w.FinalComparison = v
		case "relevance":
			w.Relevance = v
		case "rating":
			w.Rating = v
		case "popularity":
			w.Popularity = v
		case "engagement":
			w.Engagement = v
		case "freshness":
			w.Freshness = v
		case "sentiment":
			w.Sentiment = v
		case "capstone":
			w.Capstone = v
		}
	}
	return w
}

// clamp01 越界与 NaN 一律压回 [0,1]
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// normalizeLevel 去掉数据源里的 "_courses" 后缀
func normalizeLevel(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	if strings.HasSuffix(lower, "_courses") {
		s = strings.TrimSpace(s[:len(s)-len("_courses")])
	}
	return s
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
