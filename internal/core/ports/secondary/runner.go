package secondary

import (
	"context"

	"gitlab.com/algoarena.net/internal/domain"
)

// RunnerClient talks to the external batch code-execution service.
type RunnerClient interface {
	// SubmitBatch queues the batch and returns one handle per unit, in unit
	// order. Transport failure surfaces errs.RunnerUnavailable; the runner
	// may have partially accepted the batch, so callers must not retry
	// blindly.
	SubmitBatch(ctx context.Context, req domain.BatchRequest) ([]domain.ExecutionHandle, error)

	// PollBatch returns the runner's current view of each handle, in handle
	// order. Polling is stateless and idempotent; completed executions keep
	// reporting their final result.
	PollBatch(ctx context.Context, handles []domain.ExecutionHandle) ([]domain.RawResult, error)
}
