package request

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"venturelink/internal/common"
	"venturelink/internal/dbmysql"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/mentor/requests", h.listForMentor).Methods(http.MethodGet)
	r.HandleFunc("/mentor/requests/{id:[0-9]+}/decision", h.decide).Methods(http.MethodPost)
	r.HandleFunc("/mentor/requests/{id:[0-9]+}/revoke", h.revoke).Methods(http.MethodPost)
	r.HandleFunc("/startup/requests", h.listForStartup).Methods(http.MethodGet)
	r.HandleFunc("/startup/mentor-requests", h.create).Methods(http.MethodPost)
}

type createRequestBody struct {
	MentorID uint64 `json:"mentor_id"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	session, ok := common.SessionFrom(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}

	var body createRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.MentorID == 0 {
		http.Error(w, "mentor_id is required", http.StatusBadRequest)
		return
	}

	req, err := h.service.Create(r.Context(), session, body.MentorID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	h.logger.Info("mentorship request created",
		zap.Uint64("request_id", req.ID),
		zap.Uint64("startup_id", req.StartupID),
		zap.Uint64("mentor_id", req.MentorID),
	)
	common.WriteJSON(w, http.StatusCreated, req)
}

type decisionBody struct {
	Outcome string `json:"outcome"`
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request) {
	session, ok := common.SessionFrom(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}

	requestID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid request id", http.StatusBadRequest)
		return
	}

	var body decisionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "outcome is required", http.StatusBadRequest)
		return
	}

	req, err := h.service.Decide(r.Context(), session, requestID, body.Outcome)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	h.logger.Info("mentorship request decided",
		zap.Uint64("request_id", req.ID),
		zap.String("status", req.Status),
	)
	common.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) revoke(w http.ResponseWriter, r *http.Request) {
	session, ok := common.SessionFrom(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}

	requestID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid request id", http.StatusBadRequest)
		return
	}

	req, err := h.service.Revoke(r.Context(), session, requestID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	h.logger.Info("mentorship revoked", zap.Uint64("request_id", req.ID))
	common.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) listForMentor(w http.ResponseWriter, r *http.Request) {
	session, ok := common.SessionFrom(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}

	status := r.URL.Query().Get("state")
	if !validStatusFilter(status) {
		http.Error(w, "unknown state filter", http.StatusBadRequest)
		return
	}

	requests, err := h.service.ListForMentor(r.Context(), session, status)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, requests)
}

func (h *Handler) listForStartup(w http.ResponseWriter, r *http.Request) {
	session, ok := common.SessionFrom(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}

	status := r.URL.Query().Get("state")
	if !validStatusFilter(status) {
		http.Error(w, "unknown state filter", http.StatusBadRequest)
		return
	}

	requests, err := h.service.ListForStartup(r.Context(), session, status)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, requests)
}

func validStatusFilter(status string) bool {
	switch status {
	case "", dbmysql.RequestPending, dbmysql.RequestApproved, dbmysql.RequestDeclined, dbmysql.RequestRevoked:
		return true
	}
	return false
}
