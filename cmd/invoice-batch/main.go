package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/common"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/export"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/extract"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/ingest"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/pipeline"
	repo "github.com/octadecimal-ai/ai-finances-sub000/internal/repository"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/server"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/textextract"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/utils"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		dir       = flag.String("dir", "", "directory to process invoices from (required)")
		out       = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		formatStr = flag.String("format", "GENERIC", "source format tag for text documents")
		fromStr   = flag.String("from", "", "from date YYYY-MM-DD")
		toStr     = flag.String("to", "", "to date YYYY-MM-DD")
	)
	flag.Parse()

	// Validate required flags
	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	// If output file not specified, use parent directory with default filename
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "invoices.xlsx")
	}

	// Parse date filters
	dateFlags := common.NewValidator().
		Field("from", *fromStr, common.DateYMD).
		Field("to", *toStr, common.DateYMD)
	if err := common.ValidateAndReturnError(dateFlags); err != nil {
		printError("Error: invalid date flag, use YYYY-MM-DD: %v\n", err)
		os.Exit(1)
	}
	var from, to *time.Time
	if *fromStr != "" {
		parsed, err := utils.ParseYMD(*fromStr)
		if err != nil {
			printError("Error: invalid --from date: %v\n", err)
			os.Exit(1)
		}
		from = &parsed
	}
	if *toStr != "" {
		parsed, err := utils.ParseYMD(*toStr)
		if err != nil {
			printError("Error: invalid --to date: %v\n", err)
			os.Exit(1)
		}
		to = &parsed
	}

	_ = godotenv.Load()

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" && cfg.Database.SQLitePath == "" {
		// one-shot run without env setup gets a throwaway database
		cfg.Database.SQLitePath = filepath.Join(os.TempDir(), "invoice-batch.db")
	}

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

	// Wire the pipeline
	texter := textextract.NewExtractor(textextract.Config{
		Pdftotext: cfg.Extract.PdftotextBin,
		MaxBytes:  cfg.Extract.MaxFileBytes,
	}, logger)
	engine := extract.NewEngine(logger)
	jobsRepo := repo.NewImportJobRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	proc := pipeline.NewProcessor(logger, texter, engine, jobsRepo, invoicesRepo)

	format := constants.ParseFormat(*formatStr)

	// Process the directory synchronously
	logger.Info("starting batch import", "dir", *dir, "format", format)
	processed := 0
	invoiceTotal := 0
	results, stats, err := ingest.ScanDirectory(ctx, *dir, nil, cfg.Ingest.SkipHidden, func(ctx context.Context, path string) error {
		_, count, err := proc.ProcessFile(ctx, path, format)
		if err != nil {
			return err
		}
		processed++
		invoiceTotal += count
		return nil
	})
	if err != nil {
		logger.Error("failed to scan directory", "error", err)
		os.Exit(1)
	}
	for _, r := range results {
		if r.Err != "" {
			logger.Warn("file failed", "path", r.Path, "error", r.Err)
		}
	}
	logger.Info("import complete",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"invoices", invoiceTotal)

	// Export to XLSX
	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(invoicesRepo, logger)

	xlsxBytes, err := exportService.ExportInvoicesXLSX(ctx, from, to)
	if err != nil {
		logger.Error("failed to export invoices", "error", err)
		os.Exit(1)
	}

	// Write to file
	err = os.WriteFile(*out, xlsxBytes, 0644)
	if err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	// Log summary
	logger.Info("batch processing complete",
		"files_processed", processed,
		"failures", stats.Failed,
		"invoices", invoiceTotal,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", stats.Failed)
	fmt.Printf("- Invoices stored: %d\n", invoiceTotal)
	fmt.Printf("- Output: %s\n", *out)
}
