package main

import (
	"StockKeeper/internal/cache"
	"StockKeeper/internal/config"
	"StockKeeper/internal/export"
	"StockKeeper/internal/handlers"
	"StockKeeper/internal/middleware"
	"StockKeeper/internal/repo"
	"StockKeeper/internal/service"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	// кеш листингов: Redis при заданном DSN, иначе память процесса
	var listCache cache.Cache
	if cfg.RedisDSN != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisDSN)
		if err != nil {
			sugar.Fatalw("failed to connect to redis", "dsn", cfg.RedisDSN, "error", err)
		}
		defer func() { _ = redisCache.Close() }()
		listCache = redisCache
	} else {
		listCache = cache.NewMemoryCache(ctx, time.Minute)
	}
	cacheTTL := time.Duration(cfg.CacheTTLSec) * time.Second

	// Repositories
	userRepo := repo.NewUserRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)
	categoryRepo := repo.NewCategoryRepository(gormDB)
	inventoryRepo := repo.NewInventoryRepository(gormDB)
	logRepo := repo.NewLogRepository(gormDB)

	// Services
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(itemRepo, categoryRepo, listCache, cacheTTL, sugar)
	inventoryService := service.NewInventoryService(inventoryRepo, sugar)
	reportService := service.NewReportService(itemRepo)
	logService := service.NewLogService(logRepo)

	exporter := export.NewExporter(ctx, cfg.ExportWorkers, sugar)

	h := handlers.NewHandler(
		userService,
		catalogService,
		inventoryService,
		reportService,
		logService,
		exporter,
		sugar,
		cfg,
	)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"CacheTTLSec", cfg.CacheTTLSec,
		"ExportWorkers", cfg.ExportWorkers,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
