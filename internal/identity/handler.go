package identity

import (
	"encoding/json"
	"net/http"

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

// Register mounts the public routes; login happens before a session exists.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/auth/login", h.login).Methods(http.MethodPost)
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	MentorID  uint64 `json:"mentor_id,omitempty"`
	StartupID uint64 `json:"startup_id,omitempty"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	token, account, err := h.service.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	h.logger.Info("login", zap.Uint64("account_id", account.ID), zap.String("role", account.Role))
	common.WriteJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		Role:      account.Role,
		MentorID:  account.MentorID,
		StartupID: account.StartupID,
	})
}
