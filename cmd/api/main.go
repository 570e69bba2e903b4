package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/edupulse/internal/api/http"
	"github.com/spec-kit/edupulse/internal/api/http/handlers"
	"github.com/spec-kit/edupulse/internal/auth"
	"github.com/spec-kit/edupulse/internal/config"
	"github.com/spec-kit/edupulse/internal/events"
	"github.com/spec-kit/edupulse/internal/observability"
	"github.com/spec-kit/edupulse/internal/persistence"
	"github.com/spec-kit/edupulse/internal/repository"
	"github.com/spec-kit/edupulse/internal/service"
	"github.com/spec-kit/edupulse/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	activityRepo := repository.NewActivityLogRepository(pool)
	academicRepo := repository.NewAcademicRepository(pool)
	placementRepo := repository.NewPlacementRepository(pool)
	alertRepo := repository.NewAlertRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo, dispatcher, redis)
	userService := service.NewUserService(userRepo, dispatcher, cfg.Auth.BcryptCost)
	reportService := service.NewReportService(userRepo, academicRepo, placementRepo, redis)
	academicService := service.NewAcademicService(academicRepo, placementRepo, alertRepo)
	auditService := service.NewAuditService(dispatcher, activityRepo, logger)

	worker.StartAuditWorker(auditService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(userService, reportService, auditService)
	academicHandler := handlers.NewAcademicHandler(academicService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         healthHandler,
		Auth:           authHandler,
		Admin:          adminHandler,
		Academic:       academicHandler,
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
