package contestrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/algoarena.net/internal/core/ports/primary"
	"gitlab.com/algoarena.net/internal/core/ports/secondary"
	"gitlab.com/algoarena.net/internal/domain"
)

var _ secondary.ContestPort = (*contestRepo)(nil)

type contestRepo struct {
	db     *sqlx.DB
	logger primary.Logger
}

func New(db *sqlx.DB, logger primary.Logger) secondary.ContestPort {
	return &contestRepo{
		db:     db,
		logger: logger,
	}
}

func (r *contestRepo) GetBySlug(ctx context.Context, slug string) (*domain.Contest, error) {
	query := `
		SELECT id, title, slug, description, start_time, end_time, created_at
		FROM contests
		WHERE slug = $1
	`

	var contest domain.Contest
	err := r.db.GetContext(ctx, &contest, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get contest", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get contest: %w", err)
	}

	return &contest, nil
}

func (r *contestRepo) IsRegistered(ctx context.Context, contestID, userID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM contest_registrations
			WHERE contest_id = $1 AND user_id = $2
		)
	`

	var registered bool
	if err := r.db.GetContext(ctx, &registered, query, contestID, userID); err != nil {
		r.logger.Error("Failed to check registration",
			"contestId", contestID, "userId", userID, "error", err)
		return false, fmt.Errorf("failed to check registration: %w", err)
	}

	return registered, nil
}

func (r *contestRepo) HasProblem(ctx context.Context, contestID, problemID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM contest_problems
			WHERE contest_id = $1 AND problem_id = $2
		)
	`

	var hasProblem bool
	if err := r.db.GetContext(ctx, &hasProblem, query, contestID, problemID); err != nil {
		r.logger.Error("Failed to check contest problem",
			"contestId", contestID, "problemId", problemID, "error", err)
		return false, fmt.Errorf("failed to check contest problem: %w", err)
	}

	return hasProblem, nil
}
