package mentor

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"venturelink/internal/common"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/mentor/overview", h.overview).Methods(http.MethodGet)
	r.HandleFunc("/mentor/availability", h.toggleAvailability).Methods(http.MethodPost)
	r.HandleFunc("/mentors/{id:[0-9]+}", h.profile).Methods(http.MethodGet)
	r.HandleFunc("/mentors/{id:[0-9]+}/availability", h.availability).Methods(http.MethodGet)
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	session, ok := common.SessionFrom(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}

	overview, err := h.service.GetOverview(r.Context(), session)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, overview)
}

// toggleAvailability takes no body; it flips the current flag and echoes the
// new state so a retried toggle is observable to the client.
func (h *Handler) toggleAvailability(w http.ResponseWriter, r *http.Request) {
	session, ok := common.SessionFrom(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}

	available, err := h.service.ToggleAvailability(r.Context(), session)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	h.logger.Info("availability toggled",
		zap.Uint64("mentor_id", session.MentorID),
		zap.Bool("available", available),
	)
	common.WriteJSON(w, http.StatusOK, map[string]bool{"available": available})
}

// profile lets a startup inspect a mentor before requesting mentorship.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	mentorID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid mentor id", http.StatusBadRequest)
		return
	}

	m, err := h.service.GetProfile(r.Context(), mentorID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) availability(w http.ResponseWriter, r *http.Request) {
	mentorID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid mentor id", http.StatusBadRequest)
		return
	}

	available, err := h.service.GetAvailability(r.Context(), mentorID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]bool{"available": available})
}
