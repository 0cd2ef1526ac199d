package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/async"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/common"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/extract"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/ingest"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/pipeline"
	repo "github.com/octadecimal-ai/ai-finances-sub000/internal/repository"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/server"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/textextract"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if len(cfg.Ingest.WatchRoots) == 0 {
		logger.Error("WATCH_ROOTS is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := server.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer server.CloseDB(entc, pool, logger)

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}
	if err := server.PingDB(ctx, pool, logger, 3*time.Second); err != nil {
		os.Exit(1)
	}

	// Wire the pipeline
	texter := textextract.NewExtractor(textextract.Config{
		Pdftotext: cfg.Extract.PdftotextBin,
		MaxBytes:  cfg.Extract.MaxFileBytes,
	}, logger)
	engine := extract.NewEngine(logger)
	jobsRepo := repo.NewImportJobRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	proc := pipeline.NewProcessor(logger, texter, engine, jobsRepo, invoicesRepo)

	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(cfg.Workers.Count),
		async.WithQueueSize(cfg.Workers.QueueSize),
		async.WithProcessTimeout(cfg.Workers.ProcessTimeout),
	)

	defaultFormat := constants.ParseFormat(cfg.Extract.DefaultFormat)
	events, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       cfg.Ingest.WatchRoots,
		InitialScan: cfg.Ingest.InitialScan,
		Debounce:    cfg.Ingest.Debounce,
	})
	if err != nil {
		logger.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}
	go func() {
		for path := range events {
			_ = queue.Enqueue(ctx, async.Job{
				Path:        path,
				Format:      defaultFormat,
				SubmittedAt: time.Now(),
				TraceID:     uuid.NewString(),
			})
		}
	}()
	go func() {
		for err := range watchErrs {
			logger.Error("watch error", "error", err)
		}
	}()

	srv := server.New(cfg.Server.GRPCAddr, logger)
	go srv.WatchDB(ctx, pool, 15*time.Second)
	go func() {
		if err := srv.Serve(); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	srv.Stop()
}
