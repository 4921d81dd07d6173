package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"course_compass_backend/internal/config"
	"course_compass_backend/internal/recommend"
	"course_compass_backend/internal/repository"
	"course_compass_backend/internal/util"
	"course_compass_backend/pkg/logger"
)

// CatalogService 课程目录：加载归一化后整本缓存，支持浏览排序
type CatalogService struct {
	Catalog   *repository.CatalogRepository
	Docs      []string
	FromStore bool

	mu      sync.RWMutex
	loaded  bool
	courses []recommend.Course
}

func NewCatalogService(catalog *repository.CatalogRepository, cfg *config.Config) *CatalogService {
	return &CatalogService{
		Catalog:   catalog,
		Docs:      cfg.Content.CourseCatalogs,
		FromStore: cfg.Content.Source == util.ContentSourceDatabase,
	}
}

// Courses 全量目录（规范形态），首次访问时加载
func (s *CatalogService) Courses(ctx context.Context) ([]recommend.Course, error) {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.courses, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.courses, nil
	}

	var (
		courses []recommend.Course
		err     error
	)
	if s.FromStore {
		courses, err = s.Catalog.LoadCoursesFromStore(ctx)
	} else {
		courses, err = s.Catalog.LoadCourses(ctx, s.Docs)
	}
	if err != nil {
		return nil, err
	}

	s.courses = courses
	s.loaded = true
	logger.Log.Info("course catalog loaded", zap.Int("courses", len(courses)))
	return s.courses, nil
}

// Sorted 按浏览排序键返回目录副本
func (s *CatalogService) Sorted(ctx context.Context, sortKey string) ([]recommend.Course, error) {
	courses, err := s.Courses(ctx)
	if err != nil {
		return nil, err
	}
	return recommend.ApplySorting(courses, sortKey), nil
}

// Reload 清空目录缓存，下次访问时重新加载
func (s *CatalogService) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.courses = nil
}
