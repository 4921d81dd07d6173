package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"course_compass_backend/docs"
	"course_compass_backend/internal/config"
	"course_compass_backend/internal/middleware"
	"course_compass_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由：建会话与无会话态的浏览、推荐、整卷计分
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/assessment/sessions", c.session.Start)
		public.POST("/assessment/fixed-score", c.session.ScoreFixed)
		public.GET("/courses", c.catalog.List)
		public.POST("/recommendations", c.recommendation.ByPrefs)
	}

	// 会话路由：凭会话令牌续接
	sessions := router.Group("/api/assessment/sessions")
	sessions.Use(middleware.SessionToken(cfg.JWT.Secret))
	{
		sessions.GET("/current", c.session.Current)
		sessions.POST("/answers", c.session.Answer)
		sessions.GET("/results", c.session.Results)
		sessions.GET("/recommendations", c.recommendation.BySession)
		sessions.DELETE("", c.session.Abandon)
	}
}
