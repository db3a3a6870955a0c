package domain

import (
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Problem is a judgeable task, addressed by slug on the API surface.
type Problem struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Slug        string     `db:"slug" json:"slug"`
	Description string     `db:"description" json:"description"`
	Difficulty  Difficulty `db:"difficulty" json:"difficulty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
}
