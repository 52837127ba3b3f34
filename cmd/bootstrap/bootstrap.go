package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orthocare-api/config"
	deliveryHttp "orthocare-api/internal/delivery/http"
	"orthocare-api/internal/delivery/http/handler"
	"orthocare-api/internal/delivery/http/middleware"
	"orthocare-api/internal/infrastructure/cache"
	"orthocare-api/internal/infrastructure/database"
	"orthocare-api/internal/infrastructure/ratelimit"
	"orthocare-api/internal/repository"
	"orthocare-api/internal/service"
	"orthocare-api/internal/usecase"
	"orthocare-api/pkg/jwt"
	"orthocare-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server

	memoryStore *ratelimit.MemoryStore
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	log := SetupLogger("info")
	app.Log = log

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	SetLevel(log, cfg.Log.Level)
	log.Info("Configuration loaded successfully")

	// Run migrations before the pool is opened
	if cfg.DB.AutoMigrate {
		if err := migrateUp(cfg.DB, log); err != nil {
			return nil, err
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis, only when configured
	if cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
	}

	// Initialize all layers
	app.Server = app.initializeServer()

	return app, nil
}

// SetupLogger configures the standard logrus logger for JSON output.
func SetupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	SetLevel(log, level)
	return log
}

func SetLevel(log *logrus.Logger, level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
}

func migrateUp(cfg config.DBConfig, log *logrus.Logger) error {
	migrator, err := database.NewMigrator(database.URL(cfg), log)
	if err != nil {
		return err
	}
	defer migrator.Close()

	return migrator.Up()
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() *http.Server {
	cfg, db, log := app.Config, app.DB, app.Log

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	adminRepo := repository.NewAdminRepository()
	profileRepo := repository.NewProfileRepository()
	permissionRepo := repository.NewPermissionRepository()
	patientRepo := repository.NewPatientRepository()
	supplierRepo := repository.NewSupplierRepository()
	categoryRepo := repository.NewCategoryRepository()
	stockRepo := repository.NewStockRepository()
	schedulingRepo := repository.NewSchedulingRepository()
	consultationRepo := repository.NewConsultationRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, adminRepo, jwtService, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, adminRepo, profileRepo, auditService)
	profileUsecase := usecase.NewProfileUsecase(db, log, profileRepo, permissionRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService)
	supplierUsecase := usecase.NewSupplierUsecase(db, log, supplierRepo, auditService)
	stockUsecase := usecase.NewStockUsecase(db, log, stockRepo, supplierRepo, categoryRepo, auditService)
	schedulingUsecase := usecase.NewSchedulingUsecase(db, log, schedulingRepo, patientRepo, adminRepo, auditService)
	consultationUsecase := usecase.NewConsultationUsecase(db, log, consultationRepo, schedulingRepo, adminRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Auth: handler.NewAuthHandler(authUsecase, customValidator, handler.CookieConfig{
			Name:   cfg.JWT.CookieName,
			Secure: cfg.App.IsProduction(),
			MaxAge: cfg.JWT.AccessExpiry,
		}, log),
		Doctor:       handler.NewDoctorHandler(doctorUsecase, customValidator, log),
		Profile:      handler.NewProfileHandler(profileUsecase, log),
		Patient:      handler.NewPatientHandler(patientUsecase, customValidator, log),
		Supplier:     handler.NewSupplierHandler(supplierUsecase, customValidator, log),
		Stock:        handler.NewStockHandler(stockUsecase, customValidator, log),
		Scheduling:   handler.NewSchedulingHandler(schedulingUsecase, customValidator, log),
		Consultation: handler.NewConsultationHandler(consultationUsecase, customValidator, log),
		AuditLog:     handler.NewAuditLogHandler(auditLogUsecase, log),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(middleware.CookieAuthenticator(jwtService, cfg.JWT.CookieName))
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins)

	var rateLimitMiddleware *middleware.RateLimitMiddleware
	if cfg.RateLimit.Enabled {
		rateLimitMiddleware = middleware.NewRateLimitMiddleware(app.rateLimitStore(), cfg.RateLimit.TrustedProxies, log)
	}

	// Initialize router
	router := deliveryHttp.NewRouter(log, handlers, authMiddleware, corsMiddleware, rateLimitMiddleware, authUsecase.Permissions)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// rateLimitStore picks the shared Redis window when Redis is available and
// falls back to the per-process limiter otherwise.
func (app *App) rateLimitStore() ratelimit.Store {
	cfg := app.Config.RateLimit
	if cfg.Store == "redis" {
		if app.RedisClient != nil {
			return ratelimit.NewRedisStore(app.RedisClient, cfg.Requests, cfg.Window)
		}
		app.Log.Warn("RATE_LIMIT_STORE is redis but Redis is not configured, using the in-memory store")
	}

	app.memoryStore = ratelimit.NewMemoryStore(cfg.Requests, cfg.Window)
	return app.memoryStore
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.Fatalf("Failed to start server: %v", err)
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

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close releases the rate limiter, database pool and Redis client.
func (app *App) Close() {
	if app.memoryStore != nil {
		app.memoryStore.Stop()
	}

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
