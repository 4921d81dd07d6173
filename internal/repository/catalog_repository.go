package repository

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"course_compass_backend/internal/model"
	"course_compass_backend/internal/recommend"
	"course_compass_backend/pkg/logger"
)

// CatalogRepository 课程目录加载，按等级分片的 JSON 文档合并后归一化
type CatalogRepository struct {
	Source ContentSource
	DB     *gorm.DB
}

func NewCatalogRepository(source ContentSource, db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{Source: source, DB: db}
}

// LoadCourses 读取并合并多份目录文档，逐文件容错，输出规范形态
func (r *CatalogRepository) LoadCourses(ctx context.Context, names []string) ([]recommend.Course, error) {
	var raw []model.RawCourse
	for _, name := range names {
		data, err := r.Source.ReadDocument(ctx, name)
		if err != nil {
			logger.Log.Warn("course catalog document unavailable, skipping",
				zap.String("document", name), zap.Error(err))
			continue
		}
		var batch []model.RawCourse
		if err := json.Unmarshal(data, &batch); err != nil {
			logger.Log.Warn("course catalog document malformed, skipping",
				zap.String("document", name), zap.Error(err))
			continue
		}
		raw = append(raw, batch...)
	}
	return model.NormalizeCourses(raw), nil
}

// LoadCoursesFromStore 从数据库文档表读取全部目录
func (r *CatalogRepository) LoadCoursesFromStore(ctx context.Context) ([]recommend.Course, error) {
	var docs []model.CourseDocument
	if err := r.DB.WithContext(ctx).Find(&docs).Error; err != nil {
		return nil, err
	}
	var raw []model.RawCourse
	for _, doc := range docs {
		var batch []model.RawCourse
		if err := json.Unmarshal(doc.Payload, &batch); err != nil {
			logger.Log.Warn("stored course document malformed, skipping",
				zap.String("document", doc.Name), zap.Error(err))
			continue
		}
		raw = append(raw, batch...)
	}
	return model.NormalizeCourses(raw), nil
}
