package model

import "encoding/json"

// 题库文档类型
const (
	BankKindMCQ      = "mcq"
	BankKindMCMS     = "mcms"
	BankKindProfiler = "profiler"
)

// QuestionDocument 数据库托管的题库文档，Payload 为原始题目 JSON 数组
type QuestionDocument struct {
	BaseModel
	Name    string          `gorm:"size:128;uniqueIndex" json:"name"`
	Kind    string          `gorm:"size:32;index" json:"kind"`
	Payload json.RawMessage `gorm:"type:json" json:"payload"`
}

func (QuestionDocument) TableName() string {
	return "question_documents"
}

// CourseDocument 数据库托管的课程目录文档，按等级分片存放
type CourseDocument struct {
	BaseModel
	Level   string          `gorm:"size:32;index" json:"level"`
	Name    string          `gorm:"size:128;uniqueIndex" json:"name"`
	Payload json.RawMessage `gorm:"type:json" json:"payload"`
}

func (CourseDocument) TableName() string {
	return "course_documents"
}
