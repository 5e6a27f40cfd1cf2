package app

import (
	"context"
	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/controller"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"
	"interview_prep_backend/pkg/configwatcher"
	"interview_prep_backend/pkg/database"
	"interview_prep_backend/pkg/logger"
	"interview_prep_backend/pkg/monitoring"
	"interview_prep_backend/pkg/security"
	"interview_prep_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	ConfigPath      string
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)

	ctx    context.Context
	cancel context.CancelFunc
}

type repositories struct {
	user        *repository.UserRepository
	question    *repository.QuestionRepository
	questionSet *repository.QuestionSetRepository
	answer      *repository.AnswerRepository
}

// aiBackend is satisfied by both the OpenAI-compatible client and Gemini.
type aiBackend interface {
	service.Evaluator
	service.QuestionGenerator
	UpdateConfig(cfg config.AIConfig)
}

type services struct {
	ai        aiBackend
	gemini    *service.GeminiService
	storage   *service.StorageService
	answer    *service.AnswerService
	dashboard *service.DashboardService
	question  *service.QuestionService
}

type controllers struct {
	health    *controller.HealthController
	answer    *controller.AnswerController
	dashboard *controller.DashboardController
	question  *controller.QuestionController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) reloadConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		question:    repository.NewQuestionRepository(db),
		questionSet: repository.NewQuestionSetRepository(db),
		answer:      repository.NewAnswerRepository(db),
	}
}

func (a *App) initAI(cfg *config.Config) (aiBackend, *service.GeminiService) {
	if cfg.AI.Provider == util.ProviderGemini {
		gemini, err := service.NewGeminiService(a.ctx, cfg.AI)
		if err == nil {
			return gemini, gemini
		}
		logger.Log.Warn("Gemini unavailable, using OpenAI-compatible endpoint", zap.Error(err))
	}
	return service.NewAIService(cfg.AI), nil
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.ai, s.gemini = a.initAI(cfg)
	a.RegisterConfigCallback(func(c *config.Config) {
		s.ai.UpdateConfig(c.AI)
	})

	s.storage = service.NewStorageService(&cfg.Storage)

	var cache service.SummaryCache
	if rdb != nil {
		cache = service.NewRedisSummaryCache(rdb, cfg.Redis.DashboardTTL())
	}

	s.answer = service.NewAnswerService(repos.answer, repos.question, repos.user, s.ai, s.storage)
	s.answer.Cache = cache
	if cfg.Storage.ProbeMedia {
		s.answer.Probe = util.ProbeMedia
	}

	s.dashboard = service.NewDashboardService(repos.answer, cache)
	s.question = service.NewQuestionService(repos.question, repos.questionSet, s.ai)
	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		health:    controller.NewHealthController(db, rdb),
		answer:    controller.NewAnswerController(s.answer),
		dashboard: controller.NewDashboardController(s.dashboard),
		question:  controller.NewQuestionController(s.question),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.ctx, cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config, configPath string) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// release 模式下默认跳过自动迁移，除非显式指定
	if cfg.Server.Mode != gin.ReleaseMode || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		Config:     cfg,
		ConfigPath: configPath,
		DB:         db,
		ctx:        ctx,
		cancel:     cancel,
	}
	if cfg.MigrateOnly {
		return app
	}

	if cfg.Redis.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			// 缓存仅用于加速仪表盘，连接失败时降级运行
			logger.Log.Warn("Redis unavailable, dashboard cache disabled", zap.Error(err))
		} else {
			app.Redis = rdb
		}
	}

	repos := app.initRepositories(db)
	app.services = app.initServices(repos, cfg, app.Redis)
	controllers := app.initControllers(app.services, db, app.Redis)

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) watchConfig() {
	if a.ConfigPath == "" {
		return
	}
	go func() {
		path := filepath.Join(a.ConfigPath, "config.yaml")
		if err := configwatcher.Watch(a.ctx, path, a.reloadConfig); err != nil {
			logger.Log.Warn("Config watcher stopped", zap.Error(err))
		}
	}()
}

// Close releases resources held outside the HTTP server.
func (a *App) Close() {
	a.cancel()

	if a.tracer != nil {
		if err := a.tracer.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.services != nil && a.services.gemini != nil {
		a.services.gemini.Close()
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.watchConfig()

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// 评估请求可能较慢，留出 AI 超时时间
	ctx, cancel := context.WithTimeout(context.Background(), a.Config.AI.Timeout()+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close()
	log.Println("Server exiting")
}
