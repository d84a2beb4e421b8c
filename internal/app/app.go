package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opiol_backend/internal/config"
	"opiol_backend/internal/controller"
	"opiol_backend/internal/middleware"
	"opiol_backend/internal/repository"
	"opiol_backend/internal/service"
	"opiol_backend/internal/util"
	"opiol_backend/internal/validation"
	"opiol_backend/pkg/configwatcher"
	"opiol_backend/pkg/database"
	"opiol_backend/pkg/i18n"
	"opiol_backend/pkg/logger"
	"opiol_backend/pkg/mockapi"
	"opiol_backend/pkg/monitoring"
	"opiol_backend/pkg/security"
	"opiol_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config     *config.Config
	Router     *gin.Engine
	Redis      *redis.Client
	Transport  *mockapi.Client
	Translator *i18n.Translator

	services        *services
	configCallbacks []func(*config.Config)
	tracer          *sdktrace.TracerProvider

	ctx    context.Context
	cancel context.CancelFunc
}

type repositories struct {
	draft    repository.DraftStore
	fixtures *repository.FixtureRepository
}

type services struct {
	profileSetup *service.ProfileSetupService
	draft        *service.DraftService
	wizard       *service.WizardService
	roadmap      *service.RoadmapService
	archive      *service.ArchiveService
	advisor      *service.AdvisorService
	advisorHub   *service.AdvisorHub
	dashboard    *service.DashboardService
	profile      *service.ProfileService
}

type controllers struct {
	profileSetup *controller.ProfileSetupController
	draft        *controller.DraftController
	wizard       *controller.WizardController
	roadmap      *controller.RoadmapController
	archive      *controller.ArchiveController
	advisor      *controller.AdvisorController
	dashboard    *controller.DashboardController
	profile      *controller.ProfileController
	health       *controller.HealthController
}

type Option func(*options)

type options struct {
	strategy mockapi.Strategy
	redis    *redis.Client
}

// WithTransportStrategy 替换模拟接口的成败策略，测试中用于得到确定的结果
func WithTransportStrategy(s mockapi.Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithRedis 使用外部创建的 Redis 客户端，跳过 InitRedis
func WithRedis(rdb *redis.Client) Option {
	return func(o *options) { o.redis = rdb }
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(rdb *redis.Client) (*repositories, error) {
	fixtures, err := repository.NewFixtureRepository()
	if err != nil {
		return nil, err
	}
	return &repositories{
		draft:    repository.NewDraftStore(&a.Config.Draft, rdb),
		fixtures: fixtures,
	}, nil
}

func (a *App) initServices(repos *repositories) *services {
	cfg := a.Config
	v := validation.New(a.Translator)

	s := &services{}
	s.profileSetup = service.NewProfileSetupService(v, a.Transport)
	s.draft = service.NewDraftService(repos.draft)
	s.wizard = service.NewWizardService(repos.draft, v, s.profileSetup, a.Translator, cfg.Wizard, cfg.Clients.Limits())
	s.roadmap = service.NewRoadmapService(repos.fixtures, cfg.Clients.Limits())
	s.archive = service.NewArchiveService(repos.fixtures)
	s.advisor = service.NewAdvisorService(repos.fixtures, cfg.Advisor.TypingDelay(), cfg.Clients.Limits())
	s.advisorHub = service.NewAdvisorHub(s.advisor, a.Translator)
	s.dashboard = service.NewDashboardService(repos.fixtures)
	s.profile = service.NewProfileService(repos.fixtures, cfg.Clients.Limits())
	return s
}

func (a *App) initControllers(s *services, repos *repositories) *controllers {
	return &controllers{
		profileSetup: controller.NewProfileSetupController(s.profileSetup, a.Translator),
		draft:        controller.NewDraftController(s.draft),
		wizard:       controller.NewWizardController(s.wizard),
		roadmap:      controller.NewRoadmapController(s.roadmap),
		archive:      controller.NewArchiveController(s.archive),
		advisor:      controller.NewAdvisorController(s.advisor, s.advisorHub, a.Translator),
		dashboard:    controller.NewDashboardController(s.dashboard),
		profile:      controller.NewProfileController(s.profile),
		health:       controller.NewHealthController(a.Redis, draftStoreName(repos.draft)),
	}
}

func draftStoreName(store repository.DraftStore) string {
	switch store.(type) {
	case *repository.RedisDraftStore:
		return util.DraftStoreRedis
	case *repository.FileDraftStore:
		return util.DraftStoreFile
	default:
		return util.DraftStoreMemory
	}
}

func (a *App) setupMiddlewares(router *gin.Engine) {
	cfg := a.Config

	router.Use(middleware.Recovery(a.Translator))
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.ctx, cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute, nil))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp 组装各层依赖。Redis 不可用时草稿降级为内存存储，不会中止启动
func NewApp(cfg *config.Config, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	translator, err := i18n.New(cfg.I18n.DefaultLanguage)
	if err != nil {
		return nil, err
	}

	rdb := o.redis
	if rdb == nil && cfg.Draft.Store == util.DraftStoreRedis {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Warn("Failed to initialize redis", zap.Error(err))
			rdb = nil
		}
	}

	transportOpts := []mockapi.Option{
		mockapi.WithDelay(cfg.Transport.Delay()),
		mockapi.WithLogger(logger.Log),
		mockapi.WithDebug(cfg.IsDebug()),
	}
	if o.strategy != nil {
		transportOpts = append(transportOpts, mockapi.WithStrategy(o.strategy))
	} else {
		transportOpts = append(transportOpts, mockapi.WithStrategy(mockapi.NewRandomStrategy(cfg.Transport.FailureRate, time.Now().UnixNano())))
	}

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		Config:     cfg,
		Redis:      rdb,
		Transport:  mockapi.New(transportOpts...),
		Translator: translator,
		ctx:        ctx,
		cancel:     cancel,
	}

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		app.Transport.Reconfigure(newCfg.Transport.Delay(), newCfg.Transport.FailureRate)
		logger.Log.Info("Transport reconfigured",
			zap.Int("delay_ms", newCfg.Transport.DelayMs),
			zap.Float64("failure_rate", newCfg.Transport.FailureRate),
		)
	})

	repos, err := app.initRepositories(rdb)
	if err != nil {
		cancel()
		return nil, err
	}
	app.services = app.initServices(repos)
	controllers := app.initControllers(app.services, repos)

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

	switch cfg.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router)
	app.registerRoutes(router, controllers)

	return app, nil
}

func (a *App) startBackgroundTasks() {
	if a.Config.ConfigPath == "" {
		return
	}

	w := configwatcher.New(a.Config.ConfigPath, func(newCfg *config.Config) {
		for _, cb := range a.configCallbacks {
			cb(newCfg)
		}
	})
	go func() {
		if err := w.Run(a.ctx); err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()
}

// Close 释放后台任务、向导会话和外部连接
func (a *App) Close() {
	a.cancel()

	if a.services != nil {
		a.services.wizard.CloseAll()
		a.services.advisorHub.Stop()
	}

	if a.tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if a.Redis != nil {
		a.Redis.Close()
	}
}

func (a *App) Run() error {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	a.startBackgroundTasks()

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		a.Close()
		return err
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(ctx)
	a.Close()
	if err != nil {
		return err
	}

	logger.Log.Info("Server exiting")
	return nil
}
