package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"course_compass_backend/internal/config"
	"course_compass_backend/internal/controller"
	"course_compass_backend/internal/repository"
	"course_compass_backend/internal/service"
	"course_compass_backend/internal/util"
	"course_compass_backend/pkg/database"
	"course_compass_backend/pkg/logger"
	"course_compass_backend/pkg/monitoring"
	"course_compass_backend/pkg/security"
	"course_compass_backend/pkg/tracing"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	bank     *repository.BankRepository
	catalog  *repository.CatalogRepository
	sessions repository.SessionRepository
}

type services struct {
	session        *service.SessionService
	catalog        *service.CatalogService
	recommendation *service.RecommendationService
}

type controllers struct {
	session        *controller.SessionController
	catalog        *controller.CatalogController
	recommendation *controller.RecommendationController
	health         *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// OnConfigReload 配置热更新入口：清空内容缓存，下次访问时按新配置重载
func (a *App) OnConfigReload(cfg *config.Config) {
	if a.services != nil {
		a.services.session.ReloadBank()
		a.services.catalog.Reload()
	}
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	logger.Log.Info("config reloaded, content caches cleared")
}

// contentSource 按配置选择内容来源：本地目录或对象存储。
// database 来源不经过 ContentSource，仓储层直接查文档表
func contentSource(cfg *config.Config) (repository.ContentSource, error) {
	if cfg.Content.Source == util.ContentSourceMinio {
		client, err := minio.New(cfg.Content.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Content.MinioAccessID, cfg.Content.MinioSecret, ""),
			Secure: cfg.Content.MinioUseSSL,
		})
		if err != nil {
			return nil, err
		}
		return repository.NewMinioContentSource(client, cfg.Content.MinioBucket), nil
	}
	return repository.NewLocalContentSource(cfg.Content.LocalPath), nil
}

func (a *App) initRepositories(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*repositories, error) {
	source, err := contentSource(cfg)
	if err != nil {
		return nil, err
	}

	var sessions repository.SessionRepository
	if rdb != nil {
		ttl := time.Duration(cfg.Assessment.SessionTTLMinutes) * time.Minute
		sessions = repository.NewRedisSessionRepository(rdb, ttl)
	} else {
		sessions = repository.NewMemorySessionRepository()
	}

	return &repositories{
		bank:     repository.NewBankRepository(source, db),
		catalog:  repository.NewCatalogRepository(source, db),
		sessions: sessions,
	}, nil
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}
	s.session = service.NewSessionService(repos.bank, repos.sessions, cfg)
	s.catalog = service.NewCatalogService(repos.catalog, cfg)
	s.recommendation = service.NewRecommendationService(s.catalog)
	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		session:        controller.NewSessionController(s.session),
		catalog:        controller.NewCatalogController(s.catalog),
		recommendation: controller.NewRecommendationController(s.recommendation, s.session),
		health:         controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	var db *gorm.DB
	if cfg.Database.Enabled {
		var err error
		db, err = database.InitDB(&cfg.Database)
		if err != nil {
			logger.Log.Fatal("Failed to initialize database", zap.Error(err))
			log.Fatalf("Failed to initialize database: %v", err)
		}
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		var err error
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
			log.Fatalf("Failed to initialize redis: %v", err)
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos, err := app.initRepositories(cfg, db, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize content source", zap.Error(err))
		log.Fatalf("Failed to initialize content source: %v", err)
	}
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("course-compass", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
