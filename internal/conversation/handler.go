package conversation

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"venturelink/internal/common"
)

type Handler struct {
	service Service
	router  *Router
	logger  *zap.Logger
}

func NewHandler(service Service, router *Router, logger *zap.Logger) *Handler {
	return &Handler{service: service, router: router, logger: logger}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/conversations/{startupID:[0-9]+}/messages", h.fetch).Methods(http.MethodGet)
	r.HandleFunc("/conversations/{startupID:[0-9]+}/messages", h.send).Methods(http.MethodPost)
	r.HandleFunc("/startup/mentors", h.mentorsWithStatus).Methods(http.MethodGet)
	r.HandleFunc("/mentor/startups", h.roster).Methods(http.MethodGet)
}

type sendBody struct {
	Body        string `json:"body"`
	ClientMsgID string `json:"client_msg_id"`
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	session, ok := common.SessionFrom(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}

	startupID, err := strconv.ParseUint(mux.Vars(r)["startupID"], 10, 64)
	if err != nil {
		http.Error(w, "invalid startup id", http.StatusBadRequest)
		return
	}

	var body sendBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	msg, err := h.service.Send(r.Context(), session, startupID, body.Body, body.ClientMsgID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, msg)
}

// fetch reads messages ascending by (sent_at, id). Clients resume with
// since=<last sent_at>&after_id=<last id>; the cursor stays correct under
// concurrent writers.
func (h *Handler) fetch(w http.ResponseWriter, r *http.Request) {
	session, ok := common.SessionFrom(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}

	startupID, err := strconv.ParseUint(mux.Vars(r)["startupID"], 10, 64)
	if err != nil {
		http.Error(w, "invalid startup id", http.StatusBadRequest)
		return
	}

	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		since, err = time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			http.Error(w, "since must be RFC3339", http.StatusBadRequest)
			return
		}
	}

	var afterID uint64
	if raw := r.URL.Query().Get("after_id"); raw != "" {
		afterID, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid after_id", http.StatusBadRequest)
			return
		}
	}

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}

	messages, err := h.service.Fetch(r.Context(), session, startupID, since, afterID, limit)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, messages)
}

func (h *Handler) mentorsWithStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := common.SessionFrom(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}
	if !session.IsStartup() {
		common.WriteError(w, common.ErrForbidden)
		return
	}

	pairings, err := h.router.MentorsWithStatus(r.Context(), session.StartupID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, pairings)
}

func (h *Handler) roster(w http.ResponseWriter, r *http.Request) {
	session, ok := common.SessionFrom(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}
	if !session.IsMentor() {
		common.WriteError(w, common.ErrForbidden)
		return
	}

	startups, err := h.router.ListStartupsForMentor(r.Context(), session.MentorID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, startups)
}
