package contests

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/algoarena.net/internal/core/ports/primary"
	"gitlab.com/algoarena.net/internal/core/services/judging"
	"gitlab.com/algoarena.net/internal/handlers"
	"gitlab.com/algoarena.net/internal/handlers/response"
	"gitlab.com/algoarena.net/internal/static/errs"
)

// ContestSubmissionHandler handles contest-scoped submission requests.
// Contest submissions share the judging state machine with plain ones; only
// the preconditions differ.
type ContestSubmissionHandler struct {
	judgingService judging.IJudgingService
	logger         primary.Logger
}

func NewContestSubmissionHandler(judgingService judging.IJudgingService, logger primary.Logger) *ContestSubmissionHandler {
	return &ContestSubmissionHandler{
		judgingService: judgingService,
		logger:         logger,
	}
}

func (h *ContestSubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/contests/{slug}/submissions", h.CreateSubmission).Methods("POST")
	router.HandleFunc("/api/contests/submissions/status/{submissionId}", h.GetSubmissionStatus).Methods("GET")
	router.HandleFunc("/api/contests/{slug}/submissions/problem/{problemSlug}", h.GetSubmissionsForProblem).Methods("GET")
}

type CreateContestSubmissionRequest struct {
	ProblemSlug string `json:"problemSlug"`
	Language    string `json:"language"`
	Code        string `json:"code"`
}

func (h *ContestSubmissionHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateContestSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteErr(w, errs.Validation)
		return
	}

	if req.ProblemSlug == "" || req.Language == "" || req.Code == "" {
		response.WriteErr(w, errs.Validation)
		return
	}

	vars := mux.Vars(r)
	submission, err := h.judgingService.DispatchContest(r.Context(), userID, vars["slug"], req.ProblemSlug, req.Language, req.Code)
	if err != nil {
		h.logger.Error("Failed to dispatch contest submission",
			"contest", vars["slug"], "problem", req.ProblemSlug, "error", err)
		response.WriteErr(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, submission)
}

func (h *ContestSubmissionHandler) GetSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	submissionID, err := uuid.Parse(vars["submissionId"])
	if err != nil {
		response.WriteErr(w, errs.Validation)
		return
	}

	submission, err := h.judgingService.Refresh(r.Context(), submissionID, userID)
	if err != nil {
		h.logger.Error("Failed to refresh contest submission", "submissionId", submissionID, "error", err)
		response.WriteErr(w, err)
		return
	}

	response.WriteSuccess(w, submission)
}

func (h *ContestSubmissionHandler) GetSubmissionsForProblem(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	summaries, err := h.judgingService.ListForContestProblem(r.Context(), userID, vars["slug"], vars["problemSlug"])
	if err != nil {
		h.logger.Error("Failed to list contest submissions",
			"contest", vars["slug"], "problem", vars["problemSlug"], "error", err)
		response.WriteErr(w, err)
		return
	}

	response.WriteSuccess(w, summaries)
}
