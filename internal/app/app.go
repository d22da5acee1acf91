package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"droughtwatch/internal/config"
	"droughtwatch/internal/database"
	"droughtwatch/internal/handler"
	"droughtwatch/internal/middleware"
	"droughtwatch/internal/repository"
	"droughtwatch/internal/router"
	"droughtwatch/internal/service"
)

type App struct {
	server       *http.Server
	db           *database.DB
	cleanupFuncs []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	farmRepo := repository.NewFarmRepository(pool)
	predictionRepo := repository.NewPredictionRepository(pool)
	planRepo := repository.NewRecoveryPlanRepository(pool)
	alertRepo := repository.NewAlertRepository(pool)
	satelliteRepo := repository.NewSatelliteRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)
	slog.Info("database ready")

	authService, err := service.NewAuthService(cfg.JWTSecret, userRepo)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := middleware.NewAuthMiddleware(authService)

	farmService := service.NewFarmService(farmRepo)
	predictionService := service.NewPredictionService(predictionRepo)
	planService := service.NewRecoveryPlanService(planRepo)
	alertService := service.NewAlertService(alertRepo, cfg.AlertsDefaultLimit)
	satelliteService := service.NewSatelliteService(satelliteRepo, cfg.SatelliteMaxLimit)
	dashboardService := service.NewDashboardService(dashboardRepo)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Farm:       handler.NewFarmHandler(farmService),
		Prediction: handler.NewPredictionHandler(predictionService),
		Plan:       handler.NewRecoveryPlanHandler(planService),
		Alert:      handler.NewAlertHandler(alertService),
		Satellite:  handler.NewSatelliteHandler(satelliteService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Health:     handler.NewHealthHandler(db),
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{
		server: server,
		db:     db,
		cleanupFuncs: []func(){
			func() {
				db.Close()
			},
		},
	}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	// Run cleanup functions
	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	slog.Info("server stopped")
	return nil
}
