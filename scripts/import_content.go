// 手动导入内容文档脚本
//
// 把本地的题库与课程目录 JSON 导入数据库文档表，供 content.source 配置为
// database 的部署使用。重复导入按文档名覆盖。
//
// 用法: go run scripts/import_content.go
package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm/clause"

	"course_compass_backend/internal/config"
	"course_compass_backend/internal/model"
	"course_compass_backend/pkg/database"
	"course_compass_backend/pkg/logger"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	for _, name := range cfg.Content.BankDocuments {
		payload := readDocument(cfg.Content.LocalPath, name)
		doc := model.QuestionDocument{
			Name:    name,
			Kind:    bankKind(name),
			Payload: payload,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"kind", "payload"}),
		}).Create(&doc).Error
		if err != nil {
			log.Fatalf("导入题库文档 %s 失败: %v", name, err)
		}
		log.Printf("题库文档已导入: %s (%s)", name, doc.Kind)
	}

	for _, name := range cfg.Content.CourseCatalogs {
		payload := readDocument(cfg.Content.LocalPath, name)
		doc := model.CourseDocument{
			Name:    name,
			Level:   catalogLevel(name),
			Payload: payload,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"level", "payload"}),
		}).Create(&doc).Error
		if err != nil {
			log.Fatalf("导入课程目录 %s 失败: %v", name, err)
		}
		log.Printf("课程目录已导入: %s (%s)", name, doc.Level)
	}

	log.Println("内容文档导入完成")
}

func readDocument(dir, name string) json.RawMessage {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		log.Fatalf("读取 %s 失败: %v", name, err)
	}
	if !json.Valid(raw) {
		log.Fatalf("%s 不是合法的 JSON", name)
	}
	return raw
}

func bankKind(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "profiler"):
		return model.BankKindProfiler
	case strings.Contains(lower, "mcms"):
		return model.BankKindMCMS
	default:
		return model.BankKindMCQ
	}
}

func catalogLevel(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "expert"), strings.Contains(lower, "advanced"):
		return "Expert"
	case strings.Contains(lower, "intermediate"):
		return "Intermediate"
	default:
		return "Beginner"
	}
}
