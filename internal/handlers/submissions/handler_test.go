package submissions

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/algoarena.net/internal/domain"
	"gitlab.com/algoarena.net/internal/handlers"
	"gitlab.com/algoarena.net/internal/handlers/response"
	"gitlab.com/algoarena.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type stubJudgingService struct {
	submission *domain.Submission
	summaries  []*domain.SubmissionSummary
	err        error
}

func (s *stubJudgingService) Dispatch(_ context.Context, _ uuid.UUID, _, _, _ string) (*domain.Submission, error) {
	return s.submission, s.err
}

func (s *stubJudgingService) DispatchContest(_ context.Context, _ uuid.UUID, _, _, _, _ string) (*domain.Submission, error) {
	return s.submission, s.err
}

func (s *stubJudgingService) Refresh(_ context.Context, _, _ uuid.UUID) (*domain.Submission, error) {
	return s.submission, s.err
}

func (s *stubJudgingService) ListForProblem(_ context.Context, _ uuid.UUID, _ string) ([]*domain.SubmissionSummary, error) {
	return s.summaries, s.err
}

func (s *stubJudgingService) ListForContestProblem(_ context.Context, _ uuid.UUID, _, _ string) ([]*domain.SubmissionSummary, error) {
	return s.summaries, s.err
}

func newRouter(svc *stubJudgingService) *mux.Router {
	router := mux.NewRouter()
	NewSubmissionHandler(svc, nopLogger{}).RegisterRoutes(router)
	return router
}

func doRequest(router *mux.Router, method, target string, body []byte, userID *uuid.UUID) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if userID != nil {
		req = req.WithContext(handlers.WithUserID(req.Context(), *userID))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateSubmission(t *testing.T) {
	userID := uuid.New()
	sub := &domain.Submission{
		ID:      uuid.New(),
		UserID:  userID,
		Verdict: domain.VerdictJudging,
	}
	router := newRouter(&stubJudgingService{submission: sub})

	body, _ := json.Marshal(CreateSubmissionRequest{Slug: "two-sum", Language: "python", Code: "print(1)"})
	rec := doRequest(router, http.MethodPost, "/api/submissions", body, &userID)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, sub.ID, got.ID)
	assert.Equal(t, domain.VerdictJudging, got.Verdict)
}

func TestCreateSubmissionRequiresAuth(t *testing.T) {
	router := newRouter(&stubJudgingService{})

	body, _ := json.Marshal(CreateSubmissionRequest{Slug: "two-sum", Language: "python", Code: "x"})
	rec := doRequest(router, http.MethodPost, "/api/submissions", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateSubmissionValidatesBody(t *testing.T) {
	userID := uuid.New()
	router := newRouter(&stubJudgingService{})

	for name, body := range map[string][]byte{
		"malformed json": []byte("{"),
		"missing code":   mustJSON(t, CreateSubmissionRequest{Slug: "two-sum", Language: "python"}),
		"missing slug":   mustJSON(t, CreateSubmissionRequest{Language: "python", Code: "x"}),
	} {
		t.Run(name, func(t *testing.T) {
			rec := doRequest(router, http.MethodPost, "/api/submissions", body, &userID)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, response.KindValidation, decodeKind(t, rec))
		})
	}
}

func TestCreateSubmissionErrorMapping(t *testing.T) {
	userID := uuid.New()
	body := mustJSON(t, CreateSubmissionRequest{Slug: "two-sum", Language: "cobol", Code: "x"})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"unsupported language", errs.UnsupportedLanguage, http.StatusBadRequest, response.KindPreconditionFailed},
		{"no test cases", errs.NoTestCases, http.StatusBadRequest, response.KindPreconditionFailed},
		{"unknown problem", errs.NotFound, http.StatusNotFound, response.KindNotFound},
		{"runner down", errs.RunnerUnavailable, http.StatusBadGateway, response.KindUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&stubJudgingService{err: tt.err})
			rec := doRequest(router, http.MethodPost, "/api/submissions", body, &userID)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantKind, decodeKind(t, rec))
		})
	}
}

func TestGetSubmissionStatus(t *testing.T) {
	userID := uuid.New()
	sub := &domain.Submission{ID: uuid.New(), UserID: userID, Verdict: domain.VerdictAccepted}
	router := newRouter(&stubJudgingService{submission: sub})

	rec := doRequest(router, http.MethodGet, "/api/submissions/status/"+sub.ID.String(), nil, &userID)
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, domain.VerdictAccepted, got.Verdict)
}

func TestGetSubmissionStatusBadID(t *testing.T) {
	userID := uuid.New()
	router := newRouter(&stubJudgingService{})

	rec := doRequest(router, http.MethodGet, "/api/submissions/status/not-a-uuid", nil, &userID)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.KindValidation, decodeKind(t, rec))
}

func TestGetSubmissionStatusNotFound(t *testing.T) {
	userID := uuid.New()
	router := newRouter(&stubJudgingService{err: errs.NotFound})

	rec := doRequest(router, http.MethodGet, "/api/submissions/status/"+uuid.NewString(), nil, &userID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSubmissionsForProblem(t *testing.T) {
	userID := uuid.New()
	router := newRouter(&stubJudgingService{summaries: []*domain.SubmissionSummary{
		{ID: uuid.New(), Verdict: domain.VerdictAccepted, Language: "python"},
		{ID: uuid.New(), Verdict: domain.VerdictWrongAnswer, Language: "cpp"},
	}})

	rec := doRequest(router, http.MethodGet, "/api/submissions/problem/two-sum", nil, &userID)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []*domain.SubmissionSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func decodeKind(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var msg response.ErrorMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	return msg.Kind
}
