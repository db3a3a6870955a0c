package judging

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/algoarena.net/internal/domain"
)

func casesFromStatuses(statusIDs []int) []domain.SubmissionCase {
	cases := make([]domain.SubmissionCase, len(statusIDs))
	for i, id := range statusIDs {
		state, category := caseOutcomeOf(domain.RawResult{StatusID: id})
		cases[i] = domain.SubmissionCase{State: state, Category: category}
	}
	return cases
}

func TestReduceScenarios(t *testing.T) {
	tests := []struct {
		name      string
		statusIDs []int
		want      domain.Verdict
	}{
		{"all passed", []int{3, 3, 3}, domain.VerdictAccepted},
		{"one still running", []int{3, 2, 3}, domain.VerdictJudging},
		{"first failure wins", []int{3, 4, 5}, domain.VerdictWrongAnswer},
		{"compile error on every case", []int{6, 6}, domain.VerdictCompilationError},
		{"time limit before wrong answer", []int{5, 4}, domain.VerdictTimeLimitExceeded},
		{"queued case hides later failure", []int{1, 4}, domain.VerdictJudging},
		{"unknown status degrades to runtime error", []int{3, 42}, domain.VerdictRuntimeError},
		{"single passed case", []int{3}, domain.VerdictAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(casesFromStatuses(tt.statusIDs)))
		})
	}
}

func TestCaseOutcomeOf(t *testing.T) {
	tests := []struct {
		statusID int
		state    domain.CaseState
		category domain.Verdict
	}{
		{1, domain.CaseQueued, ""},
		{2, domain.CaseRunning, ""},
		{3, domain.CasePassed, ""},
		{4, domain.CaseFailed, domain.VerdictWrongAnswer},
		{5, domain.CaseFailed, domain.VerdictTimeLimitExceeded},
		{6, domain.CaseFailed, domain.VerdictCompilationError},
		{7, domain.CaseFailed, domain.VerdictRuntimeError},
		{11, domain.CaseFailed, domain.VerdictRuntimeError},
		{0, domain.CaseFailed, domain.VerdictRuntimeError},
		{99, domain.CaseFailed, domain.VerdictRuntimeError},
	}

	for _, tt := range tests {
		state, category := caseOutcomeOf(domain.RawResult{StatusID: tt.statusID})
		assert.Equal(t, tt.state, state, "status %d", tt.statusID)
		assert.Equal(t, tt.category, category, "status %d", tt.statusID)
	}
}

// referenceVerdict is an independent oracle for the reduction rule: Judging
// while anything is undecided, Accepted only when everything passed, else
// the category of the first non-passed case.
func referenceVerdict(statusIDs []int) domain.Verdict {
	for _, id := range statusIDs {
		if id == 1 || id == 2 {
			return domain.VerdictJudging
		}
	}
	for _, id := range statusIDs {
		switch id {
		case 3:
			continue
		case 4:
			return domain.VerdictWrongAnswer
		case 5:
			return domain.VerdictTimeLimitExceeded
		case 6:
			return domain.VerdictCompilationError
		default:
			return domain.VerdictRuntimeError
		}
	}
	return domain.VerdictAccepted
}

func TestReduceMatchesReferenceOnRandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pool := []int{1, 2, 3, 4, 5, 6, 7, 13, 42}

	for i := 0; i < 2000; i++ {
		n := 1 + rng.Intn(8)
		statusIDs := make([]int, n)
		for j := range statusIDs {
			statusIDs[j] = pool[rng.Intn(len(pool))]
		}

		got := Reduce(casesFromStatuses(statusIDs))
		want := referenceVerdict(statusIDs)
		if got != want {
			t.Fatalf("statuses %v: got %q, want %q", statusIDs, got, want)
		}
	}
}

func TestReduceIsDeterministic(t *testing.T) {
	cases := casesFromStatuses([]int{3, 5, 4, 3})
	first := Reduce(cases)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Reduce(cases))
	}
}
