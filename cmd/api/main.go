package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/Sariga-2005/VidhimurAI/internal/api/handlers"
	"github.com/Sariga-2005/VidhimurAI/internal/cache"
	"github.com/Sariga-2005/VidhimurAI/internal/empower"
	"github.com/Sariga-2005/VidhimurAI/internal/ingestion"
	"github.com/Sariga-2005/VidhimurAI/internal/llm"
	"github.com/Sariga-2005/VidhimurAI/internal/metrics"
	"github.com/Sariga-2005/VidhimurAI/internal/middleware/ratelimit"
	"github.com/Sariga-2005/VidhimurAI/internal/middleware/security"
	"github.com/Sariga-2005/VidhimurAI/internal/middleware/validation"
	"github.com/Sariga-2005/VidhimurAI/internal/normalizer"
	"github.com/Sariga-2005/VidhimurAI/internal/ranking"
	"github.com/Sariga-2005/VidhimurAI/internal/search"
	"github.com/Sariga-2005/VidhimurAI/internal/storage/sqlite"
	"github.com/Sariga-2005/VidhimurAI/pkg/config"
	appLogger "github.com/Sariga-2005/VidhimurAI/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting VidhimurAI Legal Research API Server")

	metrics.Init()

	sqliteClient, err := sqlite.NewClient(cfg.Dataset.SQLitePath)
	if err != nil {
		appLogger.Fatal("Failed to create SQLite client", zap.Error(err))
	}
	defer sqliteClient.Close()

	err = sqliteClient.InitSchema()
	if err != nil {
		appLogger.Fatal("Failed to initialize schema", zap.Error(err))
	}

	caseCache := cache.New(time.Duration(cfg.Cache.TTLSeconds) * time.Second)

	processor := ingestion.NewProcessor(sqliteClient, caseCache)
	loaded, err := processor.LoadDataset(cfg.Dataset.KanoonFile)
	if err != nil {
		appLogger.Warn("Failed to load case dataset, serving with existing records",
			zap.String("file", cfg.Dataset.KanoonFile),
			zap.Error(err),
		)
	} else {
		appLogger.Info("Case dataset loaded", zap.Int("cases", loaded))
	}

	var classifier normalizer.DomainClassifier
	if cfg.LLM.Enabled && cfg.LLM.APIKey != "" {
		classifier = llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.TimeoutSec)
		appLogger.Info("Domain classifier enabled", zap.String("model", cfg.LLM.Model))
	}

	currentYear := cfg.Ranking.CurrentYear
	if currentYear == 0 {
		currentYear = time.Now().Year()
	}
	scorer := ranking.NewScorer(currentYear, cfg.Ranking.RecencyMaxBoost, cfg.Ranking.RecencyDecayRate)

	searchEngine := search.NewEngine(sqliteClient, caseCache, scorer, classifier, search.Options{
		RelevanceThreshold:   cfg.Search.RelevanceThreshold,
		RerankRelevanceMin:   cfg.Search.RerankRelevanceMin,
		AuthorityMinHighTier: cfg.Search.AuthorityMinHighTier,
	})
	empowerEngine := empower.NewEngine(sqliteClient, caseCache, scorer, classifier, empower.Options{
		RelevanceThreshold: cfg.Search.RelevanceThreshold,
		MaxPrecedents:      cfg.Search.MaxPrecedents,
	})

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	limiter := ratelimit.New(ratelimit.Config{Logger: appLogger.Log})
	defer limiter.Stop()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	app.Use(security.HeadersMiddleware(security.HeadersConfig{}))
	app.Use(limiter.Middleware())
	app.Use(validation.Middleware(validation.Config{Logger: appLogger.Log}))

	searchHandler := handlers.NewSearchHandler(searchEngine)
	empowerHandler := handlers.NewEmpowerHandler(empowerEngine)
	cacheHandler := handlers.NewCacheHandler(caseCache)

	api := app.Group("/api/v1")

	api.Post("/research/search", searchHandler.HandleSearch)
	api.Post("/empower/analyze", empowerHandler.HandleAnalyze)

	api.Get("/cache/stats", cacheHandler.GetStats)
	api.Post("/cache/clear", cacheHandler.Clear)

	api.Get("/health", func(c *fiber.Ctx) error {
		count, err := sqliteClient.CountCases()
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"error":  "dataset_unavailable",
			})
		}
		return c.JSON(fiber.Map{
			"status":       "healthy",
			"cases_loaded": count,
			"time":         time.Now().Unix(),
		})
	})

	app.Get("/metrics", metrics.MetricsHandler())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("address", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	app.Shutdown()
	appLogger.Info("Server stopped")
}
