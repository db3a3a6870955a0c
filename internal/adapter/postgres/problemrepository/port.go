package problemrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/algoarena.net/internal/core/ports/primary"
	"gitlab.com/algoarena.net/internal/core/ports/secondary"
	"gitlab.com/algoarena.net/internal/domain"
)

var _ secondary.ProblemPort = (*problemRepo)(nil)

type problemRepo struct {
	db     *sqlx.DB
	logger primary.Logger
}

func New(db *sqlx.DB, logger primary.Logger) secondary.ProblemPort {
	return &problemRepo{
		db:     db,
		logger: logger,
	}
}

func (r *problemRepo) GetBySlug(ctx context.Context, slug string) (*domain.Problem, error) {
	query := `
		SELECT id, title, slug, description, difficulty, created_at
		FROM problems
		WHERE slug = $1
	`

	var problem domain.Problem
	err := r.db.GetContext(ctx, &problem, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get problem", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}

	return &problem, nil
}

func (r *problemRepo) List(ctx context.Context) ([]*domain.Problem, error) {
	query := `
		SELECT id, title, slug, description, difficulty, created_at
		FROM problems
		ORDER BY created_at DESC
	`

	var problems []*domain.Problem
	if err := r.db.SelectContext(ctx, &problems, query); err != nil {
		r.logger.Error("Failed to list problems", "error", err)
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}

	return problems, nil
}
