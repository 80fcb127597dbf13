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
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/config"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/controller"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/repository"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/service"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/pkg/configwatcher"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/pkg/database"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/pkg/logger"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/pkg/monitoring"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/pkg/security"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/pkg/tracing"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	guardian     *repository.GuardianRepository
	student      *repository.StudentRepository
	course       *repository.CourseRepository
	grade        *repository.GradeRepository
	testScore    *repository.TestScoreRepository
	activity     *repository.ActivityRepository
	subscription *repository.SubscriptionRepository
}

type services struct {
	mailer     service.Mailer
	storage    service.StorageProvider
	auth       *service.AuthService
	student    *service.StudentService
	course     *service.CourseService
	grade      *service.GradeService
	testScore  *service.TestScoreService
	activity   *service.ActivityService
	transcript *service.TranscriptService
	dashboard  *service.DashboardService
	billing    *service.BillingService
}

type controllers struct {
	auth       *controller.AuthController
	student    *controller.StudentController
	course     *controller.CourseController
	grade      *controller.GradeController
	testScore  *controller.TestScoreController
	activity   *controller.ActivityController
	transcript *controller.TranscriptController
	dashboard  *controller.DashboardController
	billing    *controller.BillingController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		guardian:     repository.NewGuardianRepository(db),
		student:      repository.NewStudentRepository(db),
		course:       repository.NewCourseRepository(db),
		grade:        repository.NewGradeRepository(db),
		testScore:    repository.NewTestScoreRepository(db),
		activity:     repository.NewActivityRepository(db),
		subscription: repository.NewSubscriptionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.mailer = service.NewMailer(&cfg.Email)

	storage, err := service.NewStorageProvider(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.guardian, repos.subscription, s.mailer, cfg)
	s.student = service.NewStudentService(repos.student)
	s.course = service.NewCourseService(repos.course, repos.student)
	s.grade = service.NewGradeService(repos.grade, repos.course, repos.student)
	s.testScore = service.NewTestScoreService(repos.testScore, repos.student, s.storage)
	s.activity = service.NewActivityService(repos.activity, repos.student)
	s.transcript = service.NewTranscriptService(repos.student, repos.course, repos.grade, repos.testScore, repos.activity)
	s.dashboard = service.NewDashboardService(repos.student, repos.subscription, s.transcript)
	s.billing = service.NewBillingService(repos.subscription, repos.student, repos.guardian, s.mailer, rdb, cfg)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		student:    controller.NewStudentController(s.student),
		course:     controller.NewCourseController(s.course),
		grade:      controller.NewGradeController(s.grade),
		testScore:  controller.NewTestScoreController(s.testScore),
		activity:   controller.NewActivityController(s.activity),
		transcript: controller.NewTranscriptController(s.transcript),
		dashboard:  controller.NewDashboardController(s.dashboard),
		billing:    controller.NewBillingController(s.billing),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks runs the subscription lapse sweep on an hourly
// ticker.
func (a *App) startBackgroundTasks(s *services) {
	go func() {
		ticker := time.NewTicker(time.Hour)
		for range ticker.C {
			if err := s.billing.ExpireLapsed(); err != nil {
				logger.Log.Error("subscription lapse sweep error", zap.Error(err))
			}
		}
	}()
}

func (a *App) watchConfig() {
	go configwatcher.WatchConfig("configs/config.yaml", a.Config, func(raw interface{}) {
		cfg, ok := raw.(*config.Config)
		if !ok {
			return
		}
		a.Config = cfg
		for _, callback := range a.configCallbacks {
			callback(cfg)
		}
		logger.Log.Info("Configuration reloaded")
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("transcript-tracker", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)
	app.watchConfig()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
