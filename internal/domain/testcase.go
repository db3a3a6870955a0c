package domain

import "github.com/google/uuid"

// TestCase is one input/expected-output pair owned by a problem. Sample
// cases are publicly visible; hidden cases are only used for judging.
type TestCase struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ProblemID      uuid.UUID `db:"problem_id" json:"problemId"`
	Input          string    `db:"input" json:"input"`
	ExpectedOutput string    `db:"expected_output" json:"expectedOutput"`
	IsSample       bool      `db:"is_sample" json:"isSample"`
	Position       int       `db:"position" json:"-"`
}
