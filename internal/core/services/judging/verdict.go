package judging

import "gitlab.com/algoarena.net/internal/domain"

// Runner status codes (Judge0 CE).
const (
	statusInQueue      = 1
	statusProcessing   = 2
	statusAccepted     = 3
	statusWrongAnswer  = 4
	statusTimeLimit    = 5
	statusCompileError = 6
)

// caseOutcomeOf maps one raw runner status to a case state and, for failed
// cases, the verdict category it contributes. Codes this service has never
// seen degrade to Runtime Error; an unknown code must never break a poll.
func caseOutcomeOf(res domain.RawResult) (domain.CaseState, domain.Verdict) {
	switch res.StatusID {
	case statusInQueue:
		return domain.CaseQueued, ""
	case statusProcessing:
		return domain.CaseRunning, ""
	case statusAccepted:
		return domain.CasePassed, ""
	case statusWrongAnswer:
		return domain.CaseFailed, domain.VerdictWrongAnswer
	case statusTimeLimit:
		return domain.CaseFailed, domain.VerdictTimeLimitExceeded
	case statusCompileError:
		return domain.CaseFailed, domain.VerdictCompilationError
	default:
		return domain.CaseFailed, domain.VerdictRuntimeError
	}
}

// Reduce derives the submission verdict from the full case list, from
// scratch on every call:
//
//  1. any undecided case means the submission is still Judging, regardless
//     of failures at later indexes;
//  2. all cases passed means Accepted;
//  3. otherwise the verdict is the category of the first failing case in
//     index order.
func Reduce(cases []domain.SubmissionCase) domain.Verdict {
	for _, c := range cases {
		if !c.State.Decided() {
			return domain.VerdictJudging
		}
	}

	for _, c := range cases {
		if c.State == domain.CasePassed {
			continue
		}
		if c.Category != "" {
			return c.Category
		}
		return domain.VerdictRuntimeError
	}

	return domain.VerdictAccepted
}
