package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"family-task-parser/config"
	_ "family-task-parser/docs" // Swagger docs
	"family-task-parser/internal/enhancer"
	"family-task-parser/internal/httpserver"
	"family-task-parser/internal/roster"
	"family-task-parser/internal/task/usecase"
	"family-task-parser/internal/transcript"
	"family-task-parser/pkg/llmprovider"
	"family-task-parser/pkg/log"
)

// @title       Family Task Parser API
// @description Bilingual (Hebrew/English) family task parsing with optional Gemini enhancement.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Family Task Parser...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Reference data
	loc, err := cfg.Parser.Location()
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, err)
		loc = time.UTC
	}

	snap, err := roster.Load(cfg.Roster.Path)
	if err != nil {
		logger.Error(ctx, "Failed to load roster: ", err)
		return
	}
	logger.Infof(ctx, "Roster %s: %d member(s), %d place(s)", snap.Version, len(snap.Roster.Members), len(snap.Roster.Places))

	// 4. Optional model enhancement
	var enh enhancer.Enhancer
	if cfg.Enhancer.Enabled {
		enh, err = newEnhancer(ctx, cfg, logger, snap)
		if err != nil {
			logger.Warnf(ctx, "Enhancement disabled: %v", err)
			enh = nil
		}
	} else {
		logger.Info(ctx, "Enhancement disabled by config")
	}

	// 5. Task use case
	uc := usecase.New(logger, usecase.Config{
		Roster:         snap,
		Location:       loc,
		Corrector:      transcript.New(cfg.Transcript.Corrections),
		Enhancer:       enh,
		EnhanceTimeout: cfg.Enhancer.Timeout,
		MaxRecent:      cfg.Enhancer.MaxRecent,
		CacheSize:      cfg.Parser.CacheSize,
		CacheTTL:       cfg.Parser.CacheTTL,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		TaskUseCase: uc,
		RatePerMin:  cfg.RateLimit.PerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func newEnhancer(ctx context.Context, cfg *config.Config, logger log.Logger, snap roster.Snapshot) (enhancer.Enhancer, error) {
	providers, warnings, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		logger.Warn(ctx, w)
	}
	retryDelay, maxTotal, err := cfg.LLM.Durations()
	if err != nil {
		return nil, err
	}

	manager := llmprovider.NewManager(providers, llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger)
	logger.Infof(ctx, "LLM enhancement enabled with %d provider(s)", len(providers))

	return enhancer.New(logger, manager, snap.Roster), nil
}
