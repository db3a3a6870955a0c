package secondary

import (
	"context"

	"gitlab.com/algoarena.net/internal/domain"
)

type ProblemPort interface {
	// GetBySlug returns the problem or nil when no such slug exists.
	GetBySlug(ctx context.Context, slug string) (*domain.Problem, error)
	List(ctx context.Context) ([]*domain.Problem, error)
}
