// package userrepository contains the PostgreSQL implementation of the user port
package userrepository

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

var _ secondary.UserPort = (*userRepo)(nil)

type userRepo struct {
	db     *sqlx.DB
	logger primary.Logger
}

func New(db *sqlx.DB, logger primary.Logger) secondary.UserPort {
	return &userRepo{
		db:     db,
		logger: logger,
	}
}

func (u *userRepo) Create(ctx context.Context, user *domain.Users) error {
	query := `
		INSERT INTO users (id, user_name, password_hash, email, auth_provider, google_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	_, err := u.db.ExecContext(ctx, query,
		user.ID,
		user.UserName,
		user.PasswordHash,
		user.Email,
		user.AuthProvider,
		user.GoogleID,
	)
	if err != nil {
		u.logger.Error("Failed to create user", "userName", user.UserName, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (u *userRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Users, error) {
	return u.getOne(ctx, `SELECT * FROM users WHERE id = $1`, id)
}

func (u *userRepo) GetByUserName(ctx context.Context, userName string) (*domain.Users, error) {
	return u.getOne(ctx, `SELECT * FROM users WHERE user_name = $1`, userName)
}

func (u *userRepo) GetByEmail(ctx context.Context, email string) (*domain.Users, error) {
	return u.getOne(ctx, `SELECT * FROM users WHERE email = $1`, email)
}

func (u *userRepo) GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error) {
	return u.getOne(ctx, `SELECT * FROM users WHERE google_id = $1`, googleID)
}

func (u *userRepo) getOne(ctx context.Context, query string, arg interface{}) (*domain.Users, error) {
	var user domain.Users
	err := u.db.GetContext(ctx, &user, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		u.logger.Error("Failed to get user", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
