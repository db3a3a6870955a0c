package testcaserepository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/algoarena.net/internal/core/ports/primary"
	"gitlab.com/algoarena.net/internal/core/ports/secondary"
	"gitlab.com/algoarena.net/internal/domain"
)

var _ secondary.TestCasePort = (*testCaseRepo)(nil)

type testCaseRepo struct {
	db     *sqlx.DB
	logger primary.Logger
}

func New(db *sqlx.DB, logger primary.Logger) secondary.TestCasePort {
	return &testCaseRepo{
		db:     db,
		logger: logger,
	}
}

// FindByProblem returns the problem's cases in their stored order. The
// position column fixes the order the judging pipeline aligns handles and
// outcomes against.
func (r *testCaseRepo) FindByProblem(ctx context.Context, problemID uuid.UUID) ([]*domain.TestCase, error) {
	query := `
		SELECT id, problem_id, input, expected_output, is_sample, position
		FROM test_cases
		WHERE problem_id = $1
		ORDER BY position, id
	`

	var testCases []*domain.TestCase
	if err := r.db.SelectContext(ctx, &testCases, query, problemID); err != nil {
		r.logger.Error("Failed to find test cases", "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to find test cases: %w", err)
	}

	return testCases, nil
}
