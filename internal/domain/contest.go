package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contest scopes submissions to a timed window and a fixed problem set.
type Contest struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Slug        string    `db:"slug" json:"slug"`
	Description string    `db:"description" json:"description"`
	StartTime   time.Time `db:"start_time" json:"startTime"`
	EndTime     time.Time `db:"end_time" json:"endTime"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// OpenAt reports whether the contest accepts submissions at the given
// instant. The window is [StartTime, EndTime).
func (c *Contest) OpenAt(now time.Time) bool {
	return !now.Before(c.StartTime) && now.Before(c.EndTime)
}
