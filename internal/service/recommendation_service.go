package service

import (
	"context"

	"course_compass_backend/internal/assessment"
	"course_compass_backend/internal/recommend"
	"course_compass_backend/internal/util"
)

// RecommendationResult 一次完整的推荐输出：
// 结构化结果（首选、各等级榜首、去重列表）、三门精选，
// 以及带标签和信号归因的全目录评分排序
type RecommendationResult struct {
	TopMatch        *recommend.Course            `json:"topMatch"`
	PerLevel        map[string]*recommend.Course `json:"perLevel"`
	Recommendations []recommend.Course           `json:"recommendations"`
	Featured        []recommend.Course           `json:"featured"`
	Ranked          []recommend.ScoredCourse     `json:"ranked"`
}

// RecommendationService 把评估结论或显式偏好映射为课程推荐
type RecommendationService struct {
	Catalog *CatalogService
}

func NewRecommendationService(catalog *CatalogService) *RecommendationService {
	return &RecommendationService{Catalog: catalog}
}

// Rank 按偏好对全目录评分排序
func (s *RecommendationService) Rank(ctx context.Context, prefs recommend.Prefs) ([]recommend.ScoredCourse, error) {
	courses, err := s.Catalog.Courses(ctx)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, util.ErrCatalogUnavailable
	}
	return recommend.Recommend(courses, prefs), nil
}

// ForProfile 由最终画像生成结构化推荐。
// prefs.Topics 为用户在向导里显式勾选的主题，参与匹配但不写回画像；
// 等级以画像结论为准，时长上限和自定义权重透传给评分与标签
func (s *RecommendationService) ForProfile(ctx context.Context, profile *assessment.FinalProfile, prefs recommend.Prefs) (*RecommendationResult, error) {
	summary := recommend.ProfileSummary{}
	var interests []string
	if profile != nil {
		summary.Level = profile.Level
		summary.InterestTags = profile.InterestTags
		summary.WeaknessTags = profile.WeaknessTags
		interests = profile.InterestTags
	}
	topics := prefs.Topics
	prefs.Level = summary.Level
	prefs.Topics = append(append([]string(nil), interests...), topics...)
	return s.build(ctx, summary, topics, prefs)
}

// ForPrefs 无评估结论时按显式偏好生成推荐
func (s *RecommendationService) ForPrefs(ctx context.Context, prefs recommend.Prefs) (*RecommendationResult, error) {
	summary := recommend.ProfileSummary{Level: prefs.Level, InterestTags: prefs.Topics}
	return s.build(ctx, summary, prefs.Topics, prefs)
}

func (s *RecommendationService) build(ctx context.Context, summary recommend.ProfileSummary, topics []string, prefs recommend.Prefs) (*RecommendationResult, error) {
	courses, err := s.Catalog.Courses(ctx)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, util.ErrCatalogUnavailable
	}

	set := recommend.BuildRecommendationSet(summary, courses, topics)
	scored := recommend.Recommend(courses, prefs)
	featured := recommend.SlotRecommendations(scored, courses)

	return &RecommendationResult{
		TopMatch:        set.TopMatch,
		PerLevel:        set.PerLevel,
		Recommendations: set.Recommendations,
		Featured:        featured,
		Ranked:          scored,
	}, nil
}
