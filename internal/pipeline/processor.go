// Package pipeline coordinates the stages of an import: text extract, field
// extraction, schema validation, and persistence, with the import_job row
// advancing through statuses as the stages run.
package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/common"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/extract"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/repository"
	"github.com/octadecimal-ai/ai-finances-sub000/internal/textextract"
)

// Processor coordinates text extract then field parse for one source file.
type Processor struct {
	logger       *slog.Logger
	texter       *textextract.Extractor
	engine       *extract.Engine
	jobsRepo     repository.ImportJobRepository
	invoicesRepo repository.InvoiceRepository
}

func NewProcessor(
	logger *slog.Logger,
	texter *textextract.Extractor,
	engine *extract.Engine,
	jobsRepo repository.ImportJobRepository,
	invoicesRepo repository.InvoiceRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:       logger,
		texter:       texter,
		engine:       engine,
		jobsRepo:     jobsRepo,
		invoicesRepo: invoicesRepo,
	}
}

// ProcessFile imports one file end to end: creates an import_job, extracts
// text, parses invoices, validates each against the JSON schema, and upserts
// them with their lines. Returns the job ID and the number of invoices
// stored. The job row carries the failure message when any stage fails.
func (p *Processor) ProcessFile(ctx context.Context, path string, format constants.SourceFormat) (uuid.UUID, int, error) {
	format = constants.ParseFormat(string(format))

	res, err := p.texter.Extract(ctx, path)
	if err != nil {
		p.logger.Error("processor.textextract.failed", "path", path, "err", err)
		// no content to hash; record the failure on a fresh job anyway
		job, jobErr := p.jobsRepo.Start(ctx, path, "", format)
		if jobErr != nil {
			return uuid.Nil, 0, jobErr
		}
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, 0, err
	}

	sum := sha256.Sum256(res.Content)
	job, err := p.jobsRepo.Start(ctx, path, hex.EncodeToString(sum[:]), format)
	if err != nil {
		return uuid.Nil, 0, err
	}
	ctx = common.WithJobID(ctx, job.ID.String())
	p.logger.Debug("processor textextract ok",
		"path", path,
		"job_id", job.ID,
		"method", res.Method,
		"pages", res.Pages,
	)

	invoices, err := p.engine.Extract(res.Content, path, format)
	if err != nil {
		p.logger.Error("processor.extract.failed", "job_id", job.ID, "err", err)
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, 0, err
	}

	stored := 0
	for _, inv := range invoices {
		data, err := json.Marshal(inv)
		if err != nil {
			_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
			return job.ID, stored, err
		}
		if err := extract.ValidateInvoiceJSON(data); err != nil {
			p.logger.Error("processor.validate.failed", "job_id", job.ID, "err", err)
			_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
			return job.ID, stored, err
		}
		if _, err := p.invoicesRepo.Upsert(ctx, job.ID, inv); err != nil {
			_ = p.jobsRepo.FinishFailure(ctx, job.ID, fmt.Sprintf("store invoice: %v", err))
			return job.ID, stored, err
		}
		stored++
	}

	extracted, err := json.Marshal(invoices)
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, stored, err
	}
	rawText := ""
	if res.Kind != constants.KindCSV {
		rawText = string(res.Content)
	}
	if err := p.jobsRepo.FinishSuccess(ctx, job.ID, stored, rawText, extracted); err != nil {
		return job.ID, stored, err
	}

	p.logger.Info("processed file",
		"job_id", common.JobIDFromContext(ctx),
		"request_id", common.RequestIDFromContext(ctx),
		"path", path,
		"format", format,
		"invoices", stored,
	)
	return job.ID, stored, nil
}
