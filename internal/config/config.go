package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Content    ContentConfig    `mapstructure:"content"`
	Assessment AssessmentConfig `mapstructure:"assessment"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
	CORS       CORSConfig       `mapstructure:"cors"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// DatabaseConfig 可选的内容文档库。Enabled 为 false 时完全不连库
type DatabaseConfig struct {
	Enabled   bool
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

// RedisConfig 会话存储。Enabled 为 false 时退化为进程内存储
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

// ContentConfig 题库与课程目录的来源。
// Source 取 local / minio / database
type ContentConfig struct {
	Source         string   `mapstructure:"source"`
	LocalPath      string   `mapstructure:"local_path"`
	MinioEndpoint  string   `mapstructure:"minio_endpoint"`
	MinioAccessID  string   `mapstructure:"minio_access_key"`
	MinioSecret    string   `mapstructure:"minio_secret_key"`
	MinioBucket    string   `mapstructure:"minio_bucket"`
	MinioUseSSL    bool     `mapstructure:"minio_use_ssl"`
	BankDocuments  []string `mapstructure:"bank_documents"`
	CourseCatalogs []string `mapstructure:"course_catalogs"`
}

// AssessmentConfig 评估流程参数
type AssessmentConfig struct {
	QuestionLimit     int            `mapstructure:"question_limit"`
	SessionTTLMinutes int            `mapstructure:"session_ttl_minutes"`
	TypeQuotas        map[string]int `mapstructure:"type_quotas"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("COURSE_COMPASS")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// JWT
	viper.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Content
	viper.BindEnv("content.source", "CONTENT_SOURCE")
	viper.BindEnv("content.local_path", "CONTENT_LOCAL_PATH")
	viper.BindEnv("content.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("content.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("content.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("content.minio_bucket", "MINIO_BUCKET")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("content.source", "local")
	viper.SetDefault("content.local_path", "./content")
	viper.SetDefault("content.bank_documents",
		[]string{"mcq_questions.json", "mcms_questions.json", "profiler_questions.json"})
	viper.SetDefault("content.course_catalogs",
		[]string{"final_beginner_courses.json", "final_intermediate_courses.json", "final_expert_courses.json"})
	viper.SetDefault("assessment.question_limit", 7)
	viper.SetDefault("assessment.session_ttl_minutes", 120)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour

	// 生产环境校验 JWT Secret 强度
	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	return &cfg, nil
}
