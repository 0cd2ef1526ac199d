package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
	"github.com/octadecimal-ai/ai-finances-sub000/gen/ent"
)

type ImportJobRepository interface {
	Start(ctx context.Context, sourcePath, contentHash string, format constants.SourceFormat) (*ent.ImportJob, error)
	FinishSuccess(ctx context.Context, jobID uuid.UUID, invoiceCount int, rawText string, extracted []byte) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type importJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewImportJobRepository(entc *ent.Client, log *slog.Logger) ImportJobRepository {
	return &importJobRepo{ent: entc, log: log}
}

func (r *importJobRepo) Start(ctx context.Context, sourcePath, contentHash string, format constants.SourceFormat) (*ent.ImportJob, error) {
	builder := r.ent.ImportJob.
		Create().
		SetSourcePath(sourcePath).
		SetSourceFormat(string(format)).
		SetStatus(string(constants.JobStatusRunning))
	if contentHash != "" {
		builder = builder.SetContentHash(contentHash)
	}
	job, err := builder.Save(ctx)
	if err != nil {
		r.log.Error("import_job start failed", "path", sourcePath, "err", err)
		return nil, err
	}
	r.log.Info("import_job started", "job_id", job.ID, "path", sourcePath, "format", format)
	return job, nil
}

func (r *importJobRepo) FinishSuccess(ctx context.Context, jobID uuid.UUID, invoiceCount int, rawText string, extracted []byte) error {
	builder := r.ent.ImportJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParsed)).
		SetInvoiceCount(invoiceCount)
	if rawText != "" {
		builder = builder.SetRawText(rawText)
	}
	if extracted != nil {
		builder = builder.SetExtractedJSON(extracted)
	}
	_, err := builder.Save(ctx)
	if err != nil {
		r.log.Error("import_job finish(PARSED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("import_job finished (PARSED)", "job_id", jobID, "invoices", invoiceCount)
	return nil
}

func (r *importJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ImportJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("import_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("import_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
