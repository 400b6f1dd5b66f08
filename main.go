package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"landing-platform/config"
	"landing-platform/database"
	landingapi "landing-platform/internal/api/landing"
	"landing-platform/internal/api/policies"
	routes "landing-platform/internal/app/http"
	"landing-platform/internal/app/task"
	"landing-platform/internal/infra/cache"
	"landing-platform/internal/infra/media"
	"landing-platform/internal/repository"
	"landing-platform/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.LoadEnv()

	db, err := database.Open(cfg.DBURL)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A nil interface disables caching; never pass a typed nil.
	var pageCache service.PageCache
	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Warn("redis unavailable, page cache disabled", "error", err)
	} else if redisClient != nil {
		defer redisClient.Close()
		pageCache = cache.NewPageCache(redisClient, cfg.PageCacheTTL)
		logger.Info("page cache enabled", "ttl", cfg.PageCacheTTL.String())
	}

	landingService := service.NewLandingService(
		repository.NewLandingPageRepository(db),
		repository.NewBusinessUnitRepository(db),
		pageCache,
		media.NewHTTPProber(5*time.Second),
		logger,
		cfg.DefaultBusinessUnit,
	)

	scheduler := task.NewScheduler(logger)
	if err := scheduler.Register(cfg.IntegrityScanSpec, task.NewIntegrityScanJob(landingService, logger)); err != nil {
		logger.Error("failed to register integrity scan", "spec", cfg.IntegrityScanSpec, "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSOrigin == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	}
	r.Use(cors.New(corsConfig))

	routes.RegisterRoutes(r, routes.Handlers{
		Landing:  landingapi.NewHandler(landingService, logger),
		Policies: policies.NewHandler(service.NewPolicyService()),
	}, cfg.JWTSecret)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
