package model

import (
	"time"

	"course_compass_backend/internal/assessment"
)

// AssessmentSession 一次自适应评估会话。
// 题池不直接入库：持有洗牌种子，随时可从题库确定性重建，
// 已出题目靠画像中的 QuestionsAsked 序列屏蔽。
// 会话是单用户的短生命周期状态，过期即弃
type AssessmentSession struct {
	ID         string                    `json:"id"`
	Seed       int64                     `json:"seed"`
	Profile    assessment.LearnerProfile `json:"profile"`
	TypeCounts map[string]int            `json:"typeCounts"`
	CurrentQID string                    `json:"currentQuestionId,omitempty"`
	CreatedAt  time.Time                 `json:"createdAt"`
	UpdatedAt  time.Time                 `json:"updatedAt"`
}

// Clone 深拷贝，存取两侧不共享画像与计数的内部 map
func (s *AssessmentSession) Clone() *AssessmentSession {
	cp := *s
	cp.Profile = s.Profile.Clone()
	cp.TypeCounts = make(map[string]int, len(s.TypeCounts))
	for k, v := range s.TypeCounts {
		cp.TypeCounts[k] = v
	}
	return &cp
}
