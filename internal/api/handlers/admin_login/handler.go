package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PitchBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PitchBooking/internal/service/adminauth"
)

const (
	msgInvalidRequestBody = "Geçersiz istek gövdesi"
	msgPasswordRequired   = "Şifre gerekli"
	msgInvalidCredentials = "Şifre hatalı"
	msgNotConfigured      = "Yönetici girişi yapılandırılmamış"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Password == "" {
		handlers.RespondBadRequest(w, msgPasswordRequired)
		return
	}

	token, err := h.service.Login(r.Context(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, adminauth.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, adminauth.ErrNotConfigured):
			h.logger.Error("POST /admin/login - Admin access is not configured")
			handlers.RespondBadRequest(w, msgNotConfigured)

		default:
			h.logger.Error("POST /admin/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in, token expires at %s", token.ExpiresAt)
	handlers.RespondJSON(w, http.StatusOK, token)
}
