package problems

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/algoarena.net/internal/core/ports/primary"
	"gitlab.com/algoarena.net/internal/core/ports/secondary"
	"gitlab.com/algoarena.net/internal/domain"
	"gitlab.com/algoarena.net/internal/handlers/response"
	"gitlab.com/algoarena.net/internal/static/errs"
)

// ProblemHandler serves the problem read side. Only sample test cases are
// ever exposed; hidden cases stay server-side.
type ProblemHandler struct {
	problems  secondary.ProblemPort
	testCases secondary.TestCasePort
	logger    primary.Logger
}

func NewProblemHandler(problems secondary.ProblemPort, testCases secondary.TestCasePort, logger primary.Logger) *ProblemHandler {
	return &ProblemHandler{
		problems:  problems,
		testCases: testCases,
		logger:    logger,
	}
}

func (h *ProblemHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/problems", h.ListProblems).Methods("GET")
	router.HandleFunc("/api/problems/{slug}", h.GetProblem).Methods("GET")
}

// ProblemResponse is a problem plus its public sample cases.
type ProblemResponse struct {
	*domain.Problem
	SampleTestCases []*domain.TestCase `json:"sampleTestCases"`
}

func (h *ProblemHandler) ListProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := h.problems.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list problems", "error", err)
		response.WriteErr(w, err)
		return
	}

	response.WriteSuccess(w, map[string][]*domain.Problem{"problems": problems})
}

func (h *ProblemHandler) GetProblem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	problem, err := h.problems.GetBySlug(r.Context(), vars["slug"])
	if err != nil {
		h.logger.Error("Failed to get problem", "slug", vars["slug"], "error", err)
		response.WriteErr(w, err)
		return
	}
	if problem == nil {
		response.WriteErr(w, errs.NotFound)
		return
	}

	testCases, err := h.testCases.FindByProblem(r.Context(), problem.ID)
	if err != nil {
		h.logger.Error("Failed to load test cases", "slug", vars["slug"], "error", err)
		response.WriteErr(w, err)
		return
	}

	samples := make([]*domain.TestCase, 0, len(testCases))
	for _, tc := range testCases {
		if tc.IsSample {
			samples = append(samples, tc)
		}
	}

	response.WriteSuccess(w, ProblemResponse{
		Problem:         problem,
		SampleTestCases: samples,
	})
}
