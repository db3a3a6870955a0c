package domain

import (
	"time"

	"github.com/google/uuid"
)

// Verdict is the submission-level outcome of a judging run.
type Verdict string

const (
	VerdictPending             Verdict = "Pending"
	VerdictJudging             Verdict = "Judging"
	VerdictAccepted            Verdict = "Accepted"
	VerdictWrongAnswer         Verdict = "Wrong Answer"
	VerdictTimeLimitExceeded   Verdict = "Time Limit Exceeded"
	VerdictCompilationError    Verdict = "Compilation Error"
	VerdictMemoryLimitExceeded Verdict = "Memory Limit Exceeded"
	VerdictRuntimeError        Verdict = "Runtime Error"
)

// Terminal reports whether the verdict is absorbing. A terminal submission
// is never re-polled against the runner.
func (v Verdict) Terminal() bool {
	return v != VerdictPending && v != VerdictJudging
}

// CaseState is the per-test-case execution state.
type CaseState string

const (
	CaseQueued  CaseState = "QUEUED"
	CaseRunning CaseState = "RUNNING"
	CasePassed  CaseState = "PASSED"
	CaseFailed  CaseState = "FAILED"
	CaseError   CaseState = "ERROR"
)

// Decided reports whether the runner has finished with this case.
func (s CaseState) Decided() bool {
	return s != CaseQueued && s != CaseRunning
}

// ExecutionHandle identifies one queued execution on the runner.
type ExecutionHandle struct {
	Token string `json:"token"`
}

// SubmissionCase bundles a test case, its runner handle and its latest
// outcome in a single record. Creating the triple together at dispatch time
// keeps case/handle/outcome alignment structural instead of relying on three
// parallel lists staying in step.
type SubmissionCase struct {
	TestCaseID uuid.UUID `db:"test_case_id" json:"testCaseId"`
	Token      string    `db:"token" json:"-"`
	State      CaseState `db:"state" json:"state"`
	// Category is the verdict this case maps to when it failed; empty while
	// the case is undecided or has passed.
	Category Verdict `db:"category" json:"category,omitempty"`
	Output   *string `db:"output" json:"output,omitempty"`
}

// Submission is a persisted judging run of one user's code against one
// problem. Contest submissions carry a non-nil ContestID and are otherwise
// identical in lifecycle.
type Submission struct {
	ID        uuid.UUID        `db:"id" json:"id"`
	UserID    uuid.UUID        `db:"user_id" json:"userId"`
	ProblemID uuid.UUID        `db:"problem_id" json:"problemId"`
	ContestID *uuid.UUID       `db:"contest_id" json:"contestId,omitempty"`
	Code      string           `db:"code" json:"code"`
	Language  string           `db:"language" json:"language"`
	Verdict   Verdict          `db:"verdict" json:"verdict"`
	Cases     []SubmissionCase `json:"results"`
	CreatedAt time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time        `db:"updated_at" json:"updatedAt"`
}

// Handles returns the ordered runner handles stored on the submission.
func (s *Submission) Handles() []ExecutionHandle {
	handles := make([]ExecutionHandle, len(s.Cases))
	for i, c := range s.Cases {
		handles[i] = ExecutionHandle{Token: c.Token}
	}
	return handles
}

// SubmissionSummary is the list-view projection of a submission.
type SubmissionSummary struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Verdict   Verdict   `db:"verdict" json:"verdict"`
	Language  string    `db:"language" json:"language"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
