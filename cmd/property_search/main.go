package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"

	"github.com/arcturus-labs/property-search/api"
	"github.com/arcturus-labs/property-search/config"
	"github.com/arcturus-labs/property-search/internal/interpret"
	"github.com/arcturus-labs/property-search/internal/search"
	"github.com/arcturus-labs/property-search/internal/session"
	"github.com/arcturus-labs/property-search/services"
	"github.com/arcturus-labs/property-search/store"
)

const maxRequestBodySize = 1 << 20 // 1 MiB

func main() {
	var (
		help    = flag.Bool("help", false, "Show help message")
		version = flag.Bool("version", false, "Show version information")
		envFile = flag.String("env-file", "", "Path to an env file (defaults to ./.env when present)")
	)

	flag.Parse()

	if *help {
		fmt.Printf("Property Search - faceted real estate search with natural language queries\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nConfiguration is read from the environment (PORT, CATALOG_PATH,\n")
		fmt.Printf("CATALOG_SIZE, OPENAI_API_KEY, ...); see config.Load for the full list.\n")
		return
	}

	if *version {
		fmt.Printf("Property Search v1.0.0\n")
		return
	}

	var cfg *config.Config
	var err error
	if *envFile != "" {
		cfg, err = config.Load(*envFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: time.DateTime,
	}))
	slog.SetDefault(logger)

	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		logger.Error("loading catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog ready", "properties", catalog.Len())

	searcher, err := search.NewService(catalog, logger)
	if err != nil {
		logger.Error("creating search service", "error", err)
		os.Exit(1)
	}

	var interpreter services.Interpreter = interpret.Disabled{}
	var summarizer services.Summarizer = interpret.Disabled{}
	if cfg.InterpreterEnabled() {
		openAICfg := interpret.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		}
		interpreter, err = interpret.NewOpenAIInterpreter(openAICfg, logger)
		if err != nil {
			logger.Error("creating interpreter", "error", err)
			os.Exit(1)
		}
		summarizer, err = interpret.NewOpenAISummarizer(openAICfg, logger)
		if err != nil {
			logger.Error("creating summarizer", "error", err)
			os.Exit(1)
		}
		logger.Info("query interpreter enabled", "model", cfg.OpenAIModel)
	} else {
		logger.Info("no OPENAI_API_KEY set, natural language interpretation disabled")
	}

	router := gin.Default()
	router.Use(api.CORSMiddleware())
	router.Use(api.RequestSizeLimitMiddleware(maxRequestBodySize))

	api.SetupRoutes(router, api.NewAPI(searcher, catalog, api.Options{
		Interpreter:      interpreter,
		Summarizer:       summarizer,
		Sessions:         session.NewLRUStore(cfg.SessionCapacity, cfg.SessionTTL),
		Logger:           logger,
		InterpretTimeout: cfg.InterpretTimeout,
		MaxPerPage:       cfg.MaxPerPage,
	}))

	logger.Info("starting server", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadCatalog(cfg *config.Config, logger *slog.Logger) (*store.Catalog, error) {
	if cfg.CatalogPath != "" {
		logger.Info("loading catalog from file", "path", cfg.CatalogPath)
		return store.LoadCatalog(cfg.CatalogPath)
	}
	logger.Info("generating seed catalog", "size", cfg.CatalogSize, "seed", cfg.CatalogSeed)
	return store.GenerateSeedCatalog(cfg.CatalogSize, cfg.CatalogSeed)
}
