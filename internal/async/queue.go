package async

import (
	"context"
	"time"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
)

// Job is the smallest useful unit. Extend as needed later (retry, priority, etc).
type Job struct {
	Path        string
	Format      constants.SourceFormat
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
