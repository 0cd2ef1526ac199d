package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/extract"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/textextract"
)

// parse-invoice runs the extraction engine on a single file and prints the
// normalized record(s) as JSON. No database involved; useful for checking
// what the patterns resolve on a given document.
func main() {
	var (
		file      = flag.String("file", "", "invoice file to parse (pdf, csv or txt; required)")
		format    = flag.String("format", "GENERIC", "source format tag (CURSOR|ANTHROPIC|OPENAI|GOOGLE|OVH_CSV|GENERIC)")
		pdftotext = flag.String("pdftotext", "pdftotext", "pdftotext binary")
		verbose   = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	texter := textextract.NewExtractor(textextract.Config{Pdftotext: *pdftotext}, logger)
	res, err := texter.Extract(ctx, *file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: text extraction failed: %v\n", err)
		os.Exit(1)
	}

	engine := extract.NewEngine(logger)
	invoices, err := engine.Extract(res.Content, *file, constants.ParseFormat(*format))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: extraction failed: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if len(invoices) == 1 {
		if err := enc.Encode(invoices[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: encode: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := enc.Encode(invoices); err != nil {
		fmt.Fprintf(os.Stderr, "Error: encode: %v\n", err)
		os.Exit(1)
	}
}
