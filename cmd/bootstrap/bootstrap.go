package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-registration/config"
	"doctor-registration/internal/catalog"
	deliveryHttp "doctor-registration/internal/delivery/http"
	"doctor-registration/internal/delivery/http/handler"
	"doctor-registration/internal/delivery/http/middleware"
	"doctor-registration/internal/infrastructure/cache"
	"doctor-registration/internal/infrastructure/database"
	"doctor-registration/internal/infrastructure/messaging"
	"doctor-registration/internal/registration"
	"doctor-registration/internal/repository"
	"doctor-registration/internal/service"
	"doctor-registration/internal/usecase"
	"doctor-registration/pkg/validator"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const janitorInterval = time.Minute

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	NATSConn    *nats.Conn
	Server      *http.Server

	stopJanitor context.CancelFunc
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

	// Setup logger
	setupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	if err := app.connect(); err != nil {
		app.Close()
		return nil, err
	}

	server, err := app.initializeServer()
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// connect opens only the connections the configured components use.
func (app *App) connect() error {
	cfg := app.Config.Registration

	switch cfg.SubmissionTransport {
	case config.TransportLog:
	case config.TransportPostgres:
		db, err := database.NewPostgresConnection(app.Config.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		if err := database.Migrate(db); err != nil {
			return err
		}
		logrus.Info("Database connected successfully")
	case config.TransportNATS:
		conn, err := messaging.NewNATSConnection(app.Config.NATS)
		if err != nil {
			return err
		}
		app.NATSConn = conn
	default:
		return fmt.Errorf("unknown submission transport %q", cfg.SubmissionTransport)
	}

	switch cfg.PhoneVerifier {
	case config.VerifierFixed:
	case config.VerifierRedis:
		redisClient, err := cache.NewRedisClient(app.Config.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		logrus.Info("Redis connected successfully")
	default:
		return fmt.Errorf("unknown phone verifier %q", cfg.PhoneVerifier)
	}

	return nil
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() (*http.Server, error) {
	cfg := app.Config

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize validator
	customValidator := validator.NewValidator()

	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	policy := registration.Policy{
		RequireMobileVerification: cfg.Registration.RequireMobileVerification,
		RequireClinicSelection:    cfg.Registration.RequireClinicSelection,
		Currency:                  cfg.Registration.Currency,
		AllowedCurrencies:         cfg.Registration.AllowedCurrencies,
	}
	checker, err := registration.NewChecker(customValidator, policy)
	if err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	// Initialize repositories
	submissionRepo := repository.NewSubmissionRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	deps := registration.Dependencies{
		Resolver: service.NewMapLinkResolver(),
	}
	switch {
	case app.DB != nil:
		auditService := service.NewAuditService(log, auditLogRepo)
		deps.Transport = service.NewPostgresTransport(app.DB, log, submissionRepo, auditService)
	case app.NATSConn != nil:
		deps.Transport = service.NewNATSTransport(app.NATSConn, log)
	default:
		deps.Transport = service.NewLogTransport(log)
	}
	if app.RedisClient != nil {
		deps.Verifier = service.NewRedisVerifier(app.RedisClient, cfg.Registration.OTPTTL, log)
	} else {
		deps.Verifier = service.NewFixedCodeVerifier(cfg.Registration.OTPFixedCode, log)
	}

	// Initialize usecases
	registrationUsecase := usecase.NewRegistrationUsecase(log, checker, cat, policy, deps, cfg.Registration.SessionTTL)

	ctx, cancel := context.WithCancel(context.Background())
	app.stopJanitor = cancel
	registrationUsecase.StartJanitor(ctx, janitorInterval)

	// Initialize handlers
	registrationHandler := handler.NewRegistrationHandler(registrationUsecase, customValidator, log)
	var submissionHandler *handler.SubmissionHandler
	var auditLogHandler *handler.AuditLogHandler
	if app.DB != nil {
		submissionHandler = handler.NewSubmissionHandler(usecase.NewSubmissionUsecase(app.DB, log, submissionRepo))
		auditLogHandler = handler.NewAuditLogHandler(usecase.NewAuditLogUsecase(app.DB, log, auditLogRepo))
	}

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(registrationHandler, submissionHandler, auditLogHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		logrus.Infof("Submission transport: %s", app.Config.Registration.SubmissionTransport)
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

// Close stops background work and closes all connections
func (app *App) Close() {
	if app.stopJanitor != nil {
		app.stopJanitor()
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

	// Flush pending publishes before closing NATS
	if app.NATSConn != nil {
		if err := app.NATSConn.Drain(); err != nil {
			app.NATSConn.Close()
		}
	}
}
