package judging

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gitlab.com/algoarena.net/internal/core/ports/primary"
	"gitlab.com/algoarena.net/internal/core/ports/secondary"
	"gitlab.com/algoarena.net/internal/domain"
	"gitlab.com/algoarena.net/internal/static/errs"
)

var _ IJudgingService = (*Service)(nil)

// Service implements the judging pipeline over injected ports. It holds no
// state of its own; every dispatch/refresh call is independent and the
// submission record is the only thing it mutates.
type Service struct {
	problems    secondary.ProblemPort
	testCases   secondary.TestCasePort
	submissions secondary.SubmissionPort
	contests    secondary.ContestPort
	runner      secondary.RunnerClient
	logger      primary.Logger
	now         func() time.Time
}

func NewJudgingService(
	problems secondary.ProblemPort,
	testCases secondary.TestCasePort,
	submissions secondary.SubmissionPort,
	contests secondary.ContestPort,
	runner secondary.RunnerClient,
	logger primary.Logger,
) *Service {
	return &Service{
		problems:    problems,
		testCases:   testCases,
		submissions: submissions,
		contests:    contests,
		runner:      runner,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *Service) Dispatch(ctx context.Context, userID uuid.UUID, problemSlug, language, code string) (*domain.Submission, error) {
	return s.dispatch(ctx, userID, problemSlug, language, code, nil)
}

func (s *Service) DispatchContest(ctx context.Context, userID uuid.UUID, contestSlug, problemSlug, language, code string) (*domain.Submission, error) {
	contest, err := s.contests.GetBySlug(ctx, contestSlug)
	if err != nil {
		return nil, err
	}
	if contest == nil {
		return nil, errs.NotFound
	}

	if !contest.OpenAt(s.now()) {
		return nil, errs.ContestNotOpen
	}

	registered, err := s.contests.IsRegistered(ctx, contest.ID, userID)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, errs.NotRegistered
	}

	return s.dispatch(ctx, userID, problemSlug, language, code, contest)
}

// dispatch is the single dispatch state machine; contest submissions only
// add the membership precondition and the contest id on the record. All
// preconditions are checked before the runner is contacted, so a failed
// dispatch never leaves a partial record or an orphaned batch.
func (s *Service) dispatch(ctx context.Context, userID uuid.UUID, problemSlug, language, code string, contest *domain.Contest) (*domain.Submission, error) {
	languageID, ok := LanguageID(language)
	if !ok {
		return nil, errs.UnsupportedLanguage
	}

	problem, err := s.problems.GetBySlug(ctx, problemSlug)
	if err != nil {
		return nil, err
	}
	if problem == nil {
		return nil, errs.NotFound
	}

	var contestID *uuid.UUID
	if contest != nil {
		inContest, err := s.contests.HasProblem(ctx, contest.ID, problem.ID)
		if err != nil {
			return nil, err
		}
		if !inContest {
			return nil, errs.ProblemNotInContest
		}
		contestID = &contest.ID
	}

	testCases, err := s.testCases.FindByProblem(ctx, problem.ID)
	if err != nil {
		return nil, err
	}
	if len(testCases) == 0 {
		return nil, errs.NoTestCases
	}

	handles, err := s.runner.SubmitBatch(ctx, buildBatch(code, languageID, testCases))
	if err != nil {
		return nil, err
	}
	if len(handles) != len(testCases) {
		s.logger.Error("Runner handle count mismatch",
			"handles", len(handles), "testCases", len(testCases))
		return nil, fmt.Errorf("%w: handle count mismatch", errs.RunnerUnavailable)
	}

	// Case rows are created together with their handles so that index i's
	// test case, handle and outcome can never drift apart.
	cases := make([]domain.SubmissionCase, len(testCases))
	for i, tc := range testCases {
		cases[i] = domain.SubmissionCase{
			TestCaseID: tc.ID,
			Token:      handles[i].Token,
			State:      domain.CaseQueued,
		}
	}

	submission := &domain.Submission{
		ID:        uuid.New(),
		UserID:    userID,
		ProblemID: problem.ID,
		ContestID: contestID,
		Code:      code,
		Language:  strings.ToLower(strings.TrimSpace(language)),
		Verdict:   domain.VerdictJudging,
		Cases:     cases,
		CreatedAt: s.now(),
	}

	if err := s.submissions.Save(ctx, submission); err != nil {
		return nil, err
	}

	s.logger.Info("Submission dispatched",
		"submissionId", submission.ID,
		"problemId", problem.ID,
		"cases", len(cases))

	return submission, nil
}

func (s *Service) Refresh(ctx context.Context, submissionID, userID uuid.UUID) (*domain.Submission, error) {
	submission, err := s.submissions.Get(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	// Cross-user access reads as not found.
	if submission == nil || submission.UserID != userID {
		return nil, errs.NotFound
	}

	// Terminal verdicts are absorbing: return the stored record without
	// touching the runner.
	if submission.Verdict.Terminal() {
		return submission, nil
	}

	if len(submission.Cases) == 0 {
		s.logger.Error("Submission has no runner handles", "submissionId", submission.ID)
		return nil, errs.InternalError
	}

	results, err := s.runner.PollBatch(ctx, submission.Handles())
	if err != nil {
		// The stored record stays untouched; the caller may retry later.
		return submission, err
	}
	if len(results) != len(submission.Cases) {
		s.logger.Error("Runner result count mismatch",
			"submissionId", submission.ID,
			"results", len(results), "cases", len(submission.Cases))
		return submission, fmt.Errorf("%w: result count mismatch", errs.RunnerUnavailable)
	}

	// Outcomes and verdict are re-derived from the full snapshot on every
	// poll rather than patched incrementally.
	for i, res := range results {
		state, category := caseOutcomeOf(res)
		submission.Cases[i].State = state
		submission.Cases[i].Category = category
		submission.Cases[i].Output = res.Stdout
	}
	submission.Verdict = Reduce(submission.Cases)

	if err := s.submissions.Save(ctx, submission); err != nil {
		return nil, err
	}

	if submission.Verdict.Terminal() {
		s.logger.Info("Submission judged",
			"submissionId", submission.ID, "verdict", submission.Verdict)
	}

	return submission, nil
}

func (s *Service) ListForProblem(ctx context.Context, userID uuid.UUID, problemSlug string) ([]*domain.SubmissionSummary, error) {
	problem, err := s.problems.GetBySlug(ctx, problemSlug)
	if err != nil {
		return nil, err
	}
	if problem == nil {
		return nil, errs.NotFound
	}

	return s.submissions.FindSummaries(ctx, problem.ID, userID, nil)
}

func (s *Service) ListForContestProblem(ctx context.Context, userID uuid.UUID, contestSlug, problemSlug string) ([]*domain.SubmissionSummary, error) {
	contest, err := s.contests.GetBySlug(ctx, contestSlug)
	if err != nil {
		return nil, err
	}
	if contest == nil {
		return nil, errs.NotFound
	}

	problem, err := s.problems.GetBySlug(ctx, problemSlug)
	if err != nil {
		return nil, err
	}
	if problem == nil {
		return nil, errs.NotFound
	}

	return s.submissions.FindSummaries(ctx, problem.ID, userID, &contest.ID)
}
