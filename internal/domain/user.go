package domain

import (
	"time"

	"github.com/google/uuid"
)

type Users struct {
	ID           uuid.UUID `db:"id"`
	UserName     string    `db:"user_name"`
	PasswordHash *string   `db:"password_hash"`
	Email        *string   `db:"email"`
	AuthProvider string    `db:"auth_provider"`
	GoogleID     *string   `db:"google_id"`
	CreatedAt    time.Time `db:"created_at"`
}
