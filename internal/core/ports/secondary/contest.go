package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/algoarena.net/internal/domain"
)

type ContestPort interface {
	// GetBySlug returns the contest or nil when no such slug exists.
	GetBySlug(ctx context.Context, slug string) (*domain.Contest, error)
	IsRegistered(ctx context.Context, contestID, userID uuid.UUID) (bool, error)
	HasProblem(ctx context.Context, contestID, problemID uuid.UUID) (bool, error)
}
