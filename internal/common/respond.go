package common

import (
	"encoding/json"
	"errors"
	"net/http"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// WriteError maps the core error taxonomy onto HTTP status codes. Business
// rule rejections come back as 409 so clients can tell "rejected" apart from
// "network failed, outcome unknown".
func WriteError(w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, ErrUnauthenticated):
		status, code = http.StatusUnauthorized, "unauthenticated"
	case errors.Is(err, ErrForbidden):
		status, code = http.StatusForbidden, "forbidden"
	case errors.Is(err, ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, ErrEmptyBody):
		status, code = http.StatusBadRequest, "empty_body"
	case errors.Is(err, ErrMentorUnavailable):
		status, code = http.StatusConflict, "mentor_unavailable"
	case errors.Is(err, ErrDuplicateActiveRequest):
		status, code = http.StatusConflict, "duplicate_active_request"
	case errors.Is(err, ErrInvalidTransition):
		status, code = http.StatusConflict, "invalid_transition"
	case errors.Is(err, ErrConversationNotApproved):
		status, code = http.StatusConflict, "conversation_not_approved"
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	WriteJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: msg}})
}
