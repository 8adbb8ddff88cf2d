package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/teacher-eval-api/api/swagger"
	"github.com/noah-isme/teacher-eval-api/internal/handler"
	internalmiddleware "github.com/noah-isme/teacher-eval-api/internal/middleware"
	"github.com/noah-isme/teacher-eval-api/internal/repository"
	"github.com/noah-isme/teacher-eval-api/internal/service"
	"github.com/noah-isme/teacher-eval-api/pkg/cache"
	"github.com/noah-isme/teacher-eval-api/pkg/config"
	"github.com/noah-isme/teacher-eval-api/pkg/database"
	"github.com/noah-isme/teacher-eval-api/pkg/i18n"
	"github.com/noah-isme/teacher-eval-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/teacher-eval-api/pkg/middleware/cors"
	langmiddleware "github.com/noah-isme/teacher-eval-api/pkg/middleware/language"
	reqidmiddleware "github.com/noah-isme/teacher-eval-api/pkg/middleware/requestid"
)

// @title Teacher Evaluation API
// @version 1.0.0
// @description Students rate their teachers; administrators review class leaderboards and yearly totals.
// @BasePath /api/v1
// @schemes http

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := i18n.New(cfg.I18n.DefaultLanguage)
	if err != nil {
		logr.Fatal("failed to build message catalog", zap.Error(err))
	}

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	repoOpts := []repository.Option{repository.WithQueryTimeout(cfg.Database.QueryTimeout)}
	if metrics != nil {
		repoOpts = append(repoOpts, repository.WithQueryObserver(metrics))
	}
	checks := []handler.ReadinessCheck{{Name: "database", Check: db.PingContext}}

	cacheRepo := repository.NewCacheRepository(nil, cfg.Redis.KeyPrefix)
	cacheEnabled := cfg.Stats.CacheEnabled
	if cacheEnabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("stats cache disabled, redis unavailable", zap.Error(err))
			cacheEnabled = false
		} else {
			cacheRepo = repository.NewCacheRepository(client, cfg.Redis.KeyPrefix)
			checks = append(checks, handler.ReadinessCheck{Name: "redis", Check: cacheRepo.Ping})
		}
	}
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Stats.CacheTTL, logr, cacheEnabled)

	var directory *service.DirectoryService
	switch cfg.Directory.Source {
	case config.DirectoryStatic:
		directory = service.NewDirectoryService(repository.NewStaticDirectory(), logr)
	default:
		directory = service.NewDirectoryService(repository.NewSQLDirectory(db, repoOpts...), logr)
	}

	validate := validator.New()
	ratings := service.NewRatingService(service.RatingServiceParams{
		Store:         repository.NewRatingRepository(db, repoOpts...),
		Validator:     validate,
		Cache:         cacheSvc,
		Metrics:       metrics,
		Logger:        logr,
		RecencyWindow: cfg.Stats.RecencyWindow,
	})
	leaderboards := service.NewLeaderboardService(service.LeaderboardServiceParams{
		Ratings:  ratings,
		Teachers: directory,
		Cache:    cacheSvc,
		Metrics:  metrics,
		Logger:   logr,
		CacheTTL: cfg.Stats.CacheTTL,
	})
	totals := service.NewTotalsService(service.TotalsServiceParams{
		Ratings:    ratings,
		Directory:  directory,
		Translator: catalog,
		Cache:      cacheSvc,
		Metrics:    metrics,
		Logger:     logr,
		Location:   cfg.Stats.Location(),
		CacheTTL:   cfg.Stats.CacheTTL,
	})
	votes := service.NewVoteService(service.VoteServiceParams{
		Directory:     directory,
		Ratings:       ratings,
		Translator:    catalog,
		Validator:     validate,
		Logger:        logr,
		MinRatedRatio: cfg.Vote.MinRatedRatio,
	})

	metricsHandler := handler.NewMetricsHandler(metrics, checks...)
	handlers := handler.Handlers{
		Directory:   handler.NewDirectoryHandler(directory),
		Teachers:    handler.NewTeacherHandler(directory, ratings),
		Votes:       handler.NewVoteHandler(votes),
		Ratings:     handler.NewRatingHandler(ratings),
		Admin:       handler.NewAdminHandler(leaderboards, totals),
		Preferences: handler.NewPreferenceHandler(catalog, cfg.I18n.CookieName, cfg.I18n.CookieMaxAge, cfg.Env == config.EnvProduction),
	}
	if metrics != nil {
		handlers.Metrics = metricsHandler
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metrics, "/metrics", "/health", "/ready"))
	r.Use(internalmiddleware.WithResponseMeta())
	r.Use(langmiddleware.Middleware(catalog, cfg.I18n.CookieName))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	if metrics != nil {
		r.GET("/metrics", metricsHandler.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	handler.Register(r.Group(cfg.APIPrefix), handlers)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "directory", cfg.Directory.Source, "cache", cacheEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
