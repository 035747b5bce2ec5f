package app

import (
	"edu_catalog_backend/docs"
	"edu_catalog_backend/internal/config"
	"edu_catalog_backend/internal/middleware"
	"edu_catalog_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	if cfg.Swagger.Enabled {
		docs.SwaggerInfo.BasePath = "/api"
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
	}

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.Use(middleware.RequestID(), middleware.AccessLog())
	{
		api.GET("/health", c.health.HealthCheck)
		a.registerCatalogRoutes(api, c)
	}
}

// 目录接口：层级位置全部由路径参数（自然键）确定
func (a *App) registerCatalogRoutes(rg *gin.RouterGroup, c *controllers) {
	classes := rg.Group("/classes")
	{
		classes.GET("", c.catalog.ListClasses)
		classes.GET("/:classNumber/subjects", c.catalog.ListSubjects)
		classes.GET("/:classNumber/subjects/:subjectSlug/chapters", c.catalog.ListChapters)
		classes.GET("/:classNumber/subjects/:subjectSlug/chapters/:chapterNumber/questions", c.catalog.ListQuestions)
	}
}
