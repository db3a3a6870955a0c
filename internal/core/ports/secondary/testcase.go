package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/algoarena.net/internal/domain"
)

type TestCasePort interface {
	// FindByProblem returns the problem's test cases in their stored order.
	// The judging pipeline never writes through this port.
	FindByProblem(ctx context.Context, problemID uuid.UUID) ([]*domain.TestCase, error)
}
