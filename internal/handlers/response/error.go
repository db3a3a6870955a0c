package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.com/algoarena.net/internal/static/errs"
)

// ErrorMessage is the error envelope every handler writes. Kind is the
// stable machine-readable classification; Message is for humans.
type ErrorMessage struct {
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

const (
	KindValidation          = "validation"
	KindNotFound            = "not_found"
	KindPreconditionFailed  = "precondition_failed"
	KindUnauthorized        = "unauthorized"
	KindConflict            = "conflict"
	KindUpstreamUnavailable = "upstream_unavailable"
	KindInternal            = "internal"
)

// FromErr maps a service error onto the wire envelope. Unknown errors
// deliberately collapse to an opaque internal error.
func FromErr(err error) ErrorMessage {
	switch {
	case errors.Is(err, errs.Validation):
		return ErrorMessage{Kind: KindValidation, Message: err.Error(), StatusCode: http.StatusBadRequest}
	case errors.Is(err, errs.NotFound):
		return ErrorMessage{Kind: KindNotFound, Message: err.Error(), StatusCode: http.StatusNotFound}
	case errors.Is(err, errs.UnsupportedLanguage),
		errors.Is(err, errs.NoTestCases),
		errors.Is(err, errs.ContestNotOpen),
		errors.Is(err, errs.ProblemNotInContest):
		return ErrorMessage{Kind: KindPreconditionFailed, Message: err.Error(), StatusCode: http.StatusBadRequest}
	case errors.Is(err, errs.NotRegistered):
		return ErrorMessage{Kind: KindPreconditionFailed, Message: err.Error(), StatusCode: http.StatusForbidden}
	case errors.Is(err, errs.RunnerUnavailable):
		return ErrorMessage{Kind: KindUpstreamUnavailable, Message: errs.RunnerUnavailable.Error(), StatusCode: http.StatusBadGateway}
	case errors.Is(err, errs.InvalidCredentials):
		return ErrorMessage{Kind: KindUnauthorized, Message: err.Error(), StatusCode: http.StatusUnauthorized}
	case errors.Is(err, errs.UserNameTaken):
		return ErrorMessage{Kind: KindConflict, Message: err.Error(), StatusCode: http.StatusConflict}
	default:
		return ErrorMessage{Kind: KindInternal, Message: "internal error", StatusCode: http.StatusInternalServerError}
	}
}

func WriteError(w http.ResponseWriter, err ErrorMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	_ = json.NewEncoder(w).Encode(err)
}

func WriteErr(w http.ResponseWriter, err error) {
	WriteError(w, FromErr(err))
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}
