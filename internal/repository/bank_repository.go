package repository

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"course_compass_backend/internal/assessment"
	"course_compass_backend/internal/model"
	"course_compass_backend/pkg/logger"
)

// BankRepository 题库加载。优先走内容源文件，配置了数据库时也可从
// question_documents 表读取
type BankRepository struct {
	Source ContentSource
	DB     *gorm.DB
}

func NewBankRepository(source ContentSource, db *gorm.DB) *BankRepository {
	return &BankRepository{Source: source, DB: db}
}

// LoadQuestions 读取并合并多份题库文档。
// 单份文档缺失或损坏不中断整体加载，逐文件容错
func (r *BankRepository) LoadQuestions(ctx context.Context, names []string) ([]assessment.Question, error) {
	var questions []assessment.Question
	for _, name := range names {
		data, err := r.Source.ReadDocument(ctx, name)
		if err != nil {
			logger.Log.Warn("question bank document unavailable, skipping",
				zap.String("document", name), zap.Error(err))
			continue
		}
		var batch []assessment.Question
		if err := json.Unmarshal(data, &batch); err != nil {
			logger.Log.Warn("question bank document malformed, skipping",
				zap.String("document", name), zap.Error(err))
			continue
		}
		questions = append(questions, batch...)
	}
	return questions, nil
}

// LoadQuestionsFromStore 从数据库文档表读取全部题库
func (r *BankRepository) LoadQuestionsFromStore(ctx context.Context) ([]assessment.Question, error) {
	var docs []model.QuestionDocument
	if err := r.DB.WithContext(ctx).Find(&docs).Error; err != nil {
		return nil, err
	}
	var questions []assessment.Question
	for _, doc := range docs {
		var batch []assessment.Question
		if err := json.Unmarshal(doc.Payload, &batch); err != nil {
			logger.Log.Warn("stored question document malformed, skipping",
				zap.String("document", doc.Name), zap.Error(err))
			continue
		}
		questions = append(questions, batch...)
	}
	return questions, nil
}
