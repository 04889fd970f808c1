package ports

import (
	"context"
	"time"

	"github.com/bnema/docassist-cli/internal/domain"
)

// SessionPublisher receives every snapshot the session store commits, in version order.
type SessionPublisher interface {
	PublishSession(ctx context.Context, snapshot domain.Session) error
}

type WorkflowOutcome string

const (
	OutcomeSuccess  WorkflowOutcome = "success"
	OutcomeRejected WorkflowOutcome = "rejected"
	OutcomeFailed   WorkflowOutcome = "failed"
)

// WorkflowRecorder observes settled workflow operations.
type WorkflowRecorder interface {
	RecordWorkflow(op domain.Operation, outcome WorkflowOutcome, elapsed time.Duration)
}

type NopWorkflowRecorder struct{}

func (NopWorkflowRecorder) RecordWorkflow(domain.Operation, WorkflowOutcome, time.Duration) {}
