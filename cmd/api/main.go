package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/config"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/controllers"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/services"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/internal/golden"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/internal/matcher"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/internal/scorer"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	logger := initLogger(cfg.App.Env)
	defer logger.Sync()

	logger.Info("starting Golden Source Address Matcher",
		zap.String("env", cfg.App.Env),
		zap.Int("fuzzy_threshold", cfg.Matching.FuzzyThreshold),
		zap.String("default_state", cfg.GoldenSource.DefaultState))

	// The golden source is loaded and indexed exactly once, before any
	// traffic is served. A missing or unreadable source is fatal; no
	// partial index is ever exposed.
	records, err := golden.LoadRecords(cfg.GoldenSource.Path, cfg.GoldenSource.Sheet, logger)
	if err != nil {
		logger.Fatal("failed to load golden source", zap.Error(err))
	}
	index := golden.BuildIndex(records, cfg.GoldenSource.DefaultState)
	if index.Len() == 0 {
		logger.Warn("golden index is empty, every match will be no_match")
	}
	logger.Info("golden index built",
		zap.Int("records", len(records)),
		zap.Int("indexed", index.Len()))

	addressMatcher := matcher.NewAddressMatcher(index, scorer.NewWeightedRatio(), matcher.Config{
		Threshold: cfg.Matching.FuzzyThreshold,
		TopK:      cfg.Matching.TopK,
	}, logger)

	addressService := services.NewAddressService(addressMatcher, index, logger)
	cacheService := initCache(cfg, logger)
	defer cacheService.Close()

	addressController := controllers.NewAddressController(addressService, cacheService, logger)
	adminController := controllers.NewAdminController(addressService, cacheService, logger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.SetupAllRoutes(router, addressController, adminController)

	server := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("port", cfg.App.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server exited")
}

// initLogger khởi tạo structured logger theo môi trường
func initLogger(env string) *zap.Logger {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	return logger
}

// initCache dựng result cache theo config: LRU làm L1, Redis làm L2 khi
// kết nối được. Redis unreachable degrades to LRU-only with a warning;
// the cache fronts a pure function, so availability beats strictness.
func initCache(cfg *config.Config, logger *zap.Logger) services.ICacheService {
	if !cfg.Cache.Enabled {
		logger.Info("result cache disabled")
		return services.NewNoopCacheService()
	}

	l1, err := services.NewLRUCacheService(cfg.Cache.L1Size, logger)
	if err != nil {
		logger.Fatal("failed to create LRU cache", zap.Error(err))
	}

	l2, err := services.NewRedisCacheService(cfg.Cache.RedisURL, cfg.Cache.TTL, logger)
	if err != nil {
		logger.Warn("Redis unavailable, using in-memory cache only", zap.Error(err))
		return l1
	}

	logger.Info("hybrid result cache enabled",
		zap.Int("l1_size", cfg.Cache.L1Size),
		zap.Duration("ttl", cfg.Cache.TTL))
	return services.NewHybridCacheService(l1, l2, logger)
}
