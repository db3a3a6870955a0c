package judging

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/algoarena.net/internal/domain"
)

// IJudgingService coordinates the submission judging pipeline: dispatching
// batches to the runner and folding poll results back into submissions.
type IJudgingService interface {
	// Dispatch encodes and queues a batch on the runner and persists a new
	// Judging submission. No record is created when any precondition fails.
	Dispatch(ctx context.Context, userID uuid.UUID, problemSlug, language, code string) (*domain.Submission, error)

	// DispatchContest is Dispatch scoped to an open contest the user is
	// registered for, targeting a problem in the contest's set.
	DispatchContest(ctx context.Context, userID uuid.UUID, contestSlug, problemSlug, language, code string) (*domain.Submission, error)

	// Refresh re-polls an in-flight submission and persists the re-derived
	// verdict. Terminal submissions are returned as stored, without runner
	// contact. When the runner is unreachable the stored record is returned
	// alongside errs.RunnerUnavailable and nothing is persisted.
	Refresh(ctx context.Context, submissionID, userID uuid.UUID) (*domain.Submission, error)

	// ListForProblem lists the user's plain submissions for a problem,
	// newest first.
	ListForProblem(ctx context.Context, userID uuid.UUID, problemSlug string) ([]*domain.SubmissionSummary, error)

	// ListForContestProblem is ListForProblem scoped to one contest.
	ListForContestProblem(ctx context.Context, userID uuid.UUID, contestSlug, problemSlug string) ([]*domain.SubmissionSummary, error)
}
