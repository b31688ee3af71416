package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"hospital-admin/config"
	deliveryHttp "hospital-admin/internal/delivery/http"
	"hospital-admin/internal/delivery/http/handler"
	"hospital-admin/internal/delivery/http/middleware"
	"hospital-admin/internal/domain/entity"
	domainRepo "hospital-admin/internal/domain/repository"
	"hospital-admin/internal/infrastructure/cache"
	"hospital-admin/internal/infrastructure/database"
	"hospital-admin/internal/infrastructure/seed"
	"hospital-admin/internal/repository"
	"hospital-admin/internal/service"
	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/jwt"
	"hospital-admin/pkg/validator"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := setupLogger(cfg.App)
	log.Info("Configuration loaded successfully")

	// Postgres is optional; without it the audit trail stays in memory
	if cfg.DB.Enabled() {
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		app.DB = db
		log.Info("Database connected successfully")
	}

	// Redis is optional; without it sessions live in process memory
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		log.Info("Redis connected successfully")
	}

	httpHandler, err := NewHandler(cfg, log, app.DB, app.RedisClient)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// NewHandler wires repositories, use cases and handlers into the HTTP router.
// db and redisClient may be nil.
func NewHandler(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) (http.Handler, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.Admin.PasswordHash == "" {
		return nil, errors.New("ADMIN_PASSWORD_HASH is required")
	}

	now, err := clockFor(cfg.Scheduling.Today)
	if err != nil {
		return nil, err
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	data := seed.Load()
	doctorRepo := repository.NewDoctorRepository(data.Doctors)
	slotRepo := repository.NewSlotRepository(data.Slots)
	appointmentRepo := repository.NewAppointmentRepository(data.Appointments)
	patientRepo := repository.NewPatientRepository(data.Patients)
	notificationRepo := repository.NewNotificationRepository(data.Notifications)
	profileRepo := repository.NewHospitalProfileRepository(data.Profile)

	var auditLogRepo domainRepo.AuditLogRepository
	if db != nil {
		auditLogRepo = repository.NewAuditLogRepository(db)
	} else {
		auditLogRepo = repository.NewMemoryAuditLogRepository()
	}

	var sessionRepo domainRepo.SessionRepository
	if redisClient != nil {
		sessionRepo = repository.NewRedisSessionRepository(redisClient)
	} else {
		sessionRepo = repository.NewMemorySessionRepository(cfg.JWT.AccessExpiry, time.Minute)
	}

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	policy := usecase.StatusPolicyFree
	if cfg.Scheduling.StrictTransitions {
		policy = usecase.StatusPolicyStrict
	}

	admin := entity.Admin{
		ID:           adminID(cfg.Admin.Email),
		Email:        cfg.Admin.Email,
		FullName:     cfg.Admin.FullName,
		PasswordHash: cfg.Admin.PasswordHash,
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, admin, jwtService, sessionRepo, auditService)
	dashboardUsecase := usecase.NewDashboardUsecase(log, doctorRepo, slotRepo, appointmentRepo, patientRepo, data.Charts, now)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, auditService)
	slotUsecase := usecase.NewSlotUsecase(log, slotRepo, doctorRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, doctorRepo, patientRepo, auditService, policy)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo)
	notificationUsecase := usecase.NewNotificationUsecase(log, notificationRepo, auditService)
	profileUsecase := usecase.NewHospitalProfileUsecase(log, profileRepo, auditService, seed.Facilities(), cfg.Scheduling.ProfileSaveDelay)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	slotHandler := handler.NewSlotHandler(slotUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase, customValidator)
	profileHandler := handler.NewHospitalProfileHandler(profileUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessionRepo)
	corsMiddleware := middleware.NewCORSMiddleware()
	loggerMiddleware := middleware.NewLoggerMiddleware(log)
	metricsMiddleware := middleware.NewMetricsMiddleware()
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  rate.Limit(cfg.RateLimit.RPS),
		Burst: cfg.RateLimit.Burst,
	})

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		dashboardHandler,
		doctorHandler,
		slotHandler,
		appointmentHandler,
		patientHandler,
		notificationHandler,
		profileHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		loggerMiddleware,
		metricsMiddleware,
		rateLimiter,
	)

	return router.Setup(), nil
}

// adminID derives a stable id from the admin email so tokens survive restarts
func adminID(email string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(email)))
}

// clockFor pins the dashboard date when SEED_TODAY is set
func clockFor(today string) (usecase.Clock, error) {
	if today == "" {
		return time.Now, nil
	}
	day, err := time.Parse("2006-01-02", today)
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_TODAY %q: %w", today, err)
	}
	return func() time.Time { return day }, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
