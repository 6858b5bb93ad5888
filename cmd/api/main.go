package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/meetsync-team/meetsync/internal/adapter/handler"
	"github.com/meetsync-team/meetsync/internal/adapter/repository"
	"github.com/meetsync-team/meetsync/internal/infrastructure/cache"
	"github.com/meetsync-team/meetsync/internal/infrastructure/database"
	"github.com/meetsync-team/meetsync/internal/infrastructure/events"
	"github.com/meetsync-team/meetsync/internal/infrastructure/metrics"
	"github.com/meetsync-team/meetsync/internal/infrastructure/storage"
	"github.com/meetsync-team/meetsync/internal/usecase/analytics"
	"github.com/meetsync-team/meetsync/internal/usecase/auth"
	"github.com/meetsync-team/meetsync/internal/usecase/meeting"
	"github.com/meetsync-team/meetsync/internal/usecase/notification"
	syncengine "github.com/meetsync-team/meetsync/internal/usecase/sync"
	"github.com/meetsync-team/meetsync/internal/usecase/task"
	"github.com/meetsync-team/meetsync/internal/usecase/team"
	pkgai "github.com/meetsync-team/meetsync/pkg/ai"
	"github.com/meetsync-team/meetsync/pkg/config"
	"github.com/meetsync-team/meetsync/pkg/jwt"
	pkglogger "github.com/meetsync-team/meetsync/pkg/logger"
	pkgvalidator "github.com/meetsync-team/meetsync/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize Database
	logger.Info("connecting to database")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	// Schema migrations run from the binary only when explicitly enabled.
	// Production deployments manage schema through the migrate script.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			logger.Fatal("DB_AUTO_MIGRATE must be disabled in production; run migrations via the migrate script")
		}
		logger.Info("applying schema migrations")
		if err := database.Migrate(db); err != nil {
			logger.Fatal("failed to apply migrations", zap.Error(err))
		}
	}

	// Initialize Redis and the change event bus
	logger.Info("connecting to redis")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()
	bus := events.NewRedisBus(redisClient, logger)

	// Transcript archive is optional; the service runs without it
	var archiver meeting.Archiver
	archive, err := storage.NewTranscriptArchive(&cfg.Storage)
	if err != nil {
		logger.Warn("transcript archive unavailable, raw transcripts will not be archived", zap.Error(err))
	} else {
		archiver = archive
	}

	reg := metrics.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	meetingRepo := repository.NewMeetingRepository(db, bus, logger)
	teamRepo := repository.NewTeamRepository(db, bus, logger)
	notifRepo := repository.NewNotificationRepository(db, bus, logger)

	// JWT manager and auth service
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)
	authService := auth.NewService(userRepo, jwtManager, logger)

	// Domain services
	notifService := notification.NewService(notifRepo, userRepo, reg, logger)
	taskService := task.NewService(meetingRepo, teamRepo, userRepo, task.NewNameMatcher(), notifService, logger)
	teamService := team.NewService(teamRepo, userRepo, notifService, logger)

	geminiClient := pkgai.NewGeminiClient(&cfg.Gemini)
	meetingService := meeting.NewService(meetingRepo, geminiClient, archiver, reg, logger)

	analyticsService := analytics.NewService(meetingRepo, teamRepo, taskService, cache.NewMemoryStore(), logger)

	engine := syncengine.NewEngine(meetingRepo, teamRepo, taskService, notifService, bus, reg, logger)
	defer engine.Cleanup()

	// Handlers and routes
	router := handler.NewRouter(
		cfg,
		jwtManager,
		handler.NewAuth(authService, logger),
		handler.NewMeeting(meetingService, logger),
		handler.NewTask(taskService, logger),
		handler.NewTeam(teamService, logger),
		handler.NewNotification(notifService, logger),
		handler.NewAnalytics(analyticsService, logger),
		handler.NewSync(engine, logger),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}
