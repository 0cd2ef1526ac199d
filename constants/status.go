package constants

// JobStatus is the canonical status for rows in import_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"  // waiting for a worker
	JobStatusRunning JobStatus = "RUNNING" // in progress
	JobStatusParsed  JobStatus = "PARSED"  // invoice(s) extracted and stored
	JobStatusFailed  JobStatus = "FAILED"  // terminal failure
)

// JobStatuses holds the allowed values for the import_job status field.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusParsed),
	string(JobStatusFailed),
}

// PaymentStatus classifies the settlement state reported by a structured
// feed. Text documents do not carry one.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
	PaymentStatusPending PaymentStatus = "pending"
)

// PaymentStatuses holds the allowed values for the payment_status field.
var PaymentStatuses = []string{
	string(PaymentStatusPaid),
	string(PaymentStatusOverdue),
	string(PaymentStatusPending),
}
