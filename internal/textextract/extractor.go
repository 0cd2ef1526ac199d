// Package textextract turns an invoice file on disk into raw bytes for the
// extraction engine: PDFs go through pdftotext with layout preserved, CSV and
// text files are read verbatim.
package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	MaxBytes  int64  // reject files larger than this; 0 = no limit
}

type Result struct {
	Content  []byte
	Pages    int // PDFs only; 1 otherwise
	Kind     constants.DocumentKind
	Method   string // "pdf-text" | "raw"
	Duration time.Duration
	Warnings []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	kind := constants.KindForFile(path)
	e.logger.Debug("starting text extraction", "path", path, "kind", kind)

	if e.cfg.MaxBytes > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return Result{Kind: kind}, fmt.Errorf("stat %s: %w", path, err)
		}
		if info.Size() > e.cfg.MaxBytes {
			return Result{Kind: kind}, fmt.Errorf("%s exceeds size limit (%d > %d bytes)", path, info.Size(), e.cfg.MaxBytes)
		}
	}

	switch kind {
	case constants.KindPDF:
		res, err := e.pdfToText(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	default:
		content, err := os.ReadFile(path)
		if err != nil {
			return Result{Kind: kind}, fmt.Errorf("read %s: %w", path, err)
		}
		return Result{
			Content:  content,
			Pages:    1,
			Kind:     kind,
			Method:   "raw",
			Duration: time.Since(start),
		}, nil
	}
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (Result, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return Result{
			Kind:     constants.KindPDF,
			Warnings: []string{string(errb)},
		}, fmt.Errorf("pdftotext %s: %w", filepath.Base(path), err)
	}
	// A form-feed \f is used as page separator by default
	pages := 1 + strings.Count(string(out), "\f")
	return Result{
		Content: out,
		Pages:   pages,
		Kind:    constants.KindPDF,
		Method:  "pdf-text",
	}, nil
}
