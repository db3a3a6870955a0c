package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/algoarena.net/internal/domain"
)

type SubmissionPort interface {
	// Save persists the submission and its cases. Saving an existing id
	// overwrites the stored record (last write wins).
	Save(ctx context.Context, submission *domain.Submission) error

	// Get returns the submission with its cases in dispatch order, or nil
	// when the id is unknown.
	Get(ctx context.Context, id uuid.UUID) (*domain.Submission, error)

	// FindSummaries lists a user's submissions for a problem, newest first.
	// A nil contestID restricts to plain submissions; a non-nil one to that
	// contest's submissions.
	FindSummaries(ctx context.Context, problemID, userID uuid.UUID, contestID *uuid.UUID) ([]*domain.SubmissionSummary, error)
}
