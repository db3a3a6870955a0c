package submissions

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

// SubmissionHandler handles submission API requests
type SubmissionHandler struct {
	judgingService judging.IJudgingService
	logger         primary.Logger
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(judgingService judging.IJudgingService, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		judgingService: judgingService,
		logger:         logger,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/submissions", h.CreateSubmission).Methods("POST")
	router.HandleFunc("/api/submissions/status/{submissionId}", h.GetSubmissionStatus).Methods("GET")
	router.HandleFunc("/api/submissions/problem/{slug}", h.GetSubmissionsForProblem).Methods("GET")
}

// CreateSubmissionRequest represents a request to judge code against a problem
type CreateSubmissionRequest struct {
	Slug     string `json:"slug"`
	Language string `json:"language"`
	Code     string `json:"code"`
}

// CreateSubmission dispatches a new judging run
func (h *SubmissionHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteErr(w, errs.Validation)
		return
	}

	if req.Slug == "" || req.Language == "" || req.Code == "" {
		response.WriteErr(w, errs.Validation)
		return
	}

	submission, err := h.judgingService.Dispatch(r.Context(), userID, req.Slug, req.Language, req.Code)
	if err != nil {
		h.logger.Error("Failed to dispatch submission", "slug", req.Slug, "error", err)
		response.WriteErr(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, submission)
}

// GetSubmissionStatus refreshes and returns one submission
func (h *SubmissionHandler) GetSubmissionStatus(w http.ResponseWriter, r *http.Request) {
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
		h.logger.Error("Failed to refresh submission", "submissionId", submissionID, "error", err)
		response.WriteErr(w, err)
		return
	}

	response.WriteSuccess(w, submission)
}

// GetSubmissionsForProblem lists the caller's submissions, newest first
func (h *SubmissionHandler) GetSubmissionsForProblem(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	summaries, err := h.judgingService.ListForProblem(r.Context(), userID, vars["slug"])
	if err != nil {
		h.logger.Error("Failed to list submissions", "slug", vars["slug"], "error", err)
		response.WriteErr(w, err)
		return
	}

	response.WriteSuccess(w, summaries)
}
