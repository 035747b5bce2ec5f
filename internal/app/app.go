package app

import (
	"context"
	"edu_catalog_backend/internal/config"
	"edu_catalog_backend/internal/controller"
	"edu_catalog_backend/internal/repository"
	"edu_catalog_backend/internal/service"
	"edu_catalog_backend/pkg/configwatcher"
	"edu_catalog_backend/pkg/database"
	"edu_catalog_backend/pkg/logger"
	"edu_catalog_backend/pkg/monitoring"
	"edu_catalog_backend/pkg/security"
	"edu_catalog_backend/pkg/tracing"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	ConfigPath      string
	Router          *gin.Engine
	DB              *gorm.DB
	services        *services
	origins         *security.OriginAllowList
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	catalog *repository.CatalogRepository
}

type services struct {
	catalog *service.CatalogService
}

type controllers struct {
	catalog *controller.CatalogController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		catalog: repository.NewCatalogRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	return &services{
		catalog: service.NewCatalogService(repos.catalog, cfg.Database.QueryTimeoutDuration()),
	}
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		catalog: controller.NewCatalogController(s.catalog),
		health:  controller.NewHealthController(s.catalog),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(security.CORS(a.origins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp 初始化日志、数据库以及维护任务（迁移/种子数据），失败直接退出
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	if cfg.Seed {
		if _, err := database.SeedDefaultCatalog(db); err != nil {
			logger.Log.Fatal("Failed to seed catalog", zap.Error(err))
		}
	}

	application := New(cfg, db)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		application.tracerProvider = tp
	}

	return application
}

// New 基于已建立的数据库连接装配路由
func New(cfg *config.Config, db *gorm.DB) *App {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &App{
		Config:  cfg,
		DB:      db,
		origins: security.NewOriginAllowList(cfg.CORS.AllowedOrigins),
	}

	repos := app.initRepositories(db)
	app.services = app.initServices(repos, cfg)
	controllers := app.initControllers(app.services)

	// 监控初始化
	monitoring.Init()

	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	app.RegisterConfigCallback(logger.ApplyConfig)
	app.RegisterConfigCallback(func(c *config.Config) {
		app.origins.Update(c.CORS.AllowedOrigins)
	})

	return app
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

// CheckCounts 只读核对冗余计数，返回进程退出码
func (a *App) CheckCounts(ctx context.Context) int {
	mismatches, err := a.services.catalog.CheckCounts(ctx)
	for _, m := range mismatches {
		logger.Log.Warn("Count mismatch",
			zap.String("scope", m.Scope),
			zap.String("location", m.Location),
			zap.String("field", m.Field),
			zap.Int64("stored", m.Stored),
			zap.Int64("actual", m.Actual),
		)
	}
	if err != nil {
		logger.Log.Error("Count check failed", zap.Error(err))
		return 1
	}
	logger.Log.Info("Count check passed")
	return 0
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if a.ConfigPath != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, filepath.Join(a.ConfigPath, "config.yaml"), a.applyConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
