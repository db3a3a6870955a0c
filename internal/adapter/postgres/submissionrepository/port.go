package submissionrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/algoarena.net/internal/core/ports/primary"
	"gitlab.com/algoarena.net/internal/core/ports/secondary"
	"gitlab.com/algoarena.net/internal/domain"
)

var _ secondary.SubmissionPort = (*submissionRepo)(nil)

type submissionRepo struct {
	db     *sqlx.DB
	logger primary.Logger
}

func New(db *sqlx.DB, logger primary.Logger) secondary.SubmissionPort {
	return &submissionRepo{
		db:     db,
		logger: logger,
	}
}

// Save upserts the submission row and all of its case rows in one
// transaction. Concurrent refreshes of the same submission race benignly:
// the verdict is a pure function of the runner snapshot, so last write wins.
func (r *submissionRepo) Save(ctx context.Context, submission *domain.Submission) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	submissionQuery := `
		INSERT INTO submissions (
			id, user_id, problem_id, contest_id, code, language, verdict,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			verdict = EXCLUDED.verdict,
			updated_at = EXCLUDED.updated_at
	`

	_, err = tx.ExecContext(ctx, submissionQuery,
		submission.ID,
		submission.UserID,
		submission.ProblemID,
		submission.ContestID,
		submission.Code,
		submission.Language,
		submission.Verdict,
		submission.CreatedAt,
		time.Now(),
	)
	if err != nil {
		r.logger.Error("Failed to save submission", "submissionId", submission.ID, "error", err)
		return fmt.Errorf("failed to save submission: %w", err)
	}

	caseQuery := `
		INSERT INTO submission_cases (
			submission_id, position, test_case_id, token, state, category, output
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (submission_id, position) DO UPDATE SET
			state = EXCLUDED.state,
			category = EXCLUDED.category,
			output = EXCLUDED.output
	`

	for i, c := range submission.Cases {
		_, err = tx.ExecContext(ctx, caseQuery,
			submission.ID,
			i,
			c.TestCaseID,
			c.Token,
			c.State,
			c.Category,
			c.Output,
		)
		if err != nil {
			r.logger.Error("Failed to save submission case",
				"submissionId", submission.ID, "position", i, "error", err)
			return fmt.Errorf("failed to save submission case: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit submission: %w", err)
	}

	return nil
}

func (r *submissionRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	submissionQuery := `
		SELECT id, user_id, problem_id, contest_id, code, language, verdict,
		       created_at, updated_at
		FROM submissions
		WHERE id = $1
	`

	var submission domain.Submission
	err := r.db.GetContext(ctx, &submission, submissionQuery, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get submission", "submissionId", id, "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	caseQuery := `
		SELECT test_case_id, token, state, category, output
		FROM submission_cases
		WHERE submission_id = $1
		ORDER BY position
	`

	if err := r.db.SelectContext(ctx, &submission.Cases, caseQuery, id); err != nil {
		r.logger.Error("Failed to get submission cases", "submissionId", id, "error", err)
		return nil, fmt.Errorf("failed to get submission cases: %w", err)
	}

	return &submission, nil
}

func (r *submissionRepo) FindSummaries(ctx context.Context, problemID, userID uuid.UUID, contestID *uuid.UUID) ([]*domain.SubmissionSummary, error) {
	query := `
		SELECT id, verdict, language, created_at
		FROM submissions
		WHERE problem_id = $1 AND user_id = $2 AND contest_id IS NOT DISTINCT FROM $3
		ORDER BY created_at DESC
	`

	var summaries []*domain.SubmissionSummary
	if err := r.db.SelectContext(ctx, &summaries, query, problemID, userID, contestID); err != nil {
		r.logger.Error("Failed to list submissions",
			"problemId", problemID, "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return summaries, nil
}
