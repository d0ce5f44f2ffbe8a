package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/devpulse-team/devpulse/internal/adapter/console"
	"github.com/devpulse-team/devpulse/internal/adapter/handler"
	"github.com/devpulse-team/devpulse/internal/infrastructure/cache"
	"github.com/devpulse-team/devpulse/internal/infrastructure/storage"
	"github.com/devpulse-team/devpulse/internal/infrastructure/transcriptdir"
	"github.com/devpulse-team/devpulse/internal/usecase/meeting"
	"github.com/devpulse-team/devpulse/internal/usecase/workflow"
	"github.com/devpulse-team/devpulse/pkg/config"
	"github.com/devpulse-team/devpulse/pkg/github"
	"github.com/devpulse-team/devpulse/pkg/jira"
	"github.com/devpulse-team/devpulse/pkg/llm"
	pkgvalidator "github.com/devpulse-team/devpulse/pkg/validator"
)

func main() {
	// Load configuration; only a missing LLM key halts startup
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// LLM completer, optionally wrapped with a response cache
	log.Println("🤖 Initializing LLM client...")
	var completer llm.Completer = llm.NewClient(&cfg.LLM)
	if cfg.HasRedis() {
		log.Println("📦 Connecting to Redis cache...")
		redisStore := cache.NewRedis(&cfg.Redis, logger)
		if err := redisStore.Ping(ctx); err != nil {
			log.Printf("⚠️  Redis unreachable, falling back to in-memory cache: %v", err)
			memStore, memErr := cache.NewMemory(256)
			if memErr == nil {
				completer = llm.NewCached(completer, memStore, cfg.LLM.CacheTTL)
			}
		} else {
			defer redisStore.Close()
			completer = llm.NewCached(completer, redisStore, cfg.LLM.CacheTTL)
		}
	} else {
		memStore, memErr := cache.NewMemory(256)
		if memErr == nil {
			completer = llm.NewCached(completer, memStore, cfg.LLM.CacheTTL)
		}
	}

	analyzer := meeting.NewService(completer, logger)
	orchestrator := workflow.NewOrchestrator(logger)

	// Transcript directory layout and arrival watcher
	log.Println("📁 Preparing transcript directories...")
	store, err := transcriptdir.NewStore(&cfg.Transcript, logger)
	if err != nil {
		log.Fatalf("Failed to prepare transcript directories: %v", err)
	}

	watcher, err := transcriptdir.NewWatcher(store, logger)
	if err != nil {
		log.Printf("⚠️  Transcript watcher unavailable: %v", err)
	} else {
		defer watcher.Stop()
		go func() {
			for filename := range watcher.Files() {
				logger.Info("📬 Transcript arrived, ready for analysis",
					zap.String("file", filename),
				)
			}
		}()
	}

	// Optional integrations degrade to a reduced mode instead of failing
	opts := console.Options{}

	if cfg.HasGitHub() {
		log.Println("🐙 Initializing GitHub client...")
		ghClient, err := github.NewClient(&cfg.GitHub)
		if err != nil {
			log.Printf("⚠️  GitHub disabled: %v", err)
		} else {
			opts.GitHub = ghClient
		}
	}

	if cfg.HasJira() {
		log.Println("🎫 Initializing Jira client...")
		opts.Jira = jira.NewClient(&cfg.Jira, logger)
	}

	if cfg.HasStorage() {
		log.Println("☁️  Initializing object-storage mirror...")
		mirror, err := storage.NewArchiveMirror(&cfg.Storage, logger)
		if err != nil {
			log.Printf("⚠️  Object-storage mirror disabled: %v", err)
		} else {
			opts.Mirror = mirror
		}
	}

	// Optional local report API
	if cfg.Server.Enabled {
		reportHandler := handler.NewReport(analyzer, logger)
		opts.Publish = reportHandler.SetLatest

		e := echo.New()
		e.HideBanner = true
		e.Validator = pkgvalidator.New()
		e.Use(middleware.Recover())

		router := handler.NewRouter(cfg, reportHandler)
		router.Setup(e)

		go func() {
			addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
			log.Printf("🚀 Report API listening on %s", addr)
			if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
				logger.Error("Report API stopped", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
				time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
			defer shutdownCancel()
			if err := e.Shutdown(shutdownCtx); err != nil {
				logger.Error("Report API shutdown failed", zap.Error(err))
			}
		}()
	}

	ui := console.New(cfg, analyzer, orchestrator, store, opts, logger)
	ui.Run(ctx)
}
