// Package sagalog is the append-only audit trail of saga executions. Each
// state transition of a saga becomes one row, correlated to the active trace.
package sagalog

import "time"

type Status string

const (
	StatusStarted      Status = "STARTED"
	StatusStepDone     Status = "STEP_DONE"
	StatusCompleted    Status = "COMPLETED"
	StatusCompensating Status = "COMPENSATING"
	StatusFailed       Status = "FAILED"
)

// SagaLog is one recorded transition.
type SagaLog struct {
	SagaID      string
	Status      Status
	CurrentStep string
	// Payload is only set on STARTED rows.
	Payload string
	// ErrorMessages is a JSON array of failure details.
	ErrorMessages string
	TraceID       string
	SpanID        string
	UpdatedAt     time.Time
}
