package list_blocked_slots

import (
	"net/http"

	"github.com/m04kA/SMC-PitchBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

const (
	msgDateRequired = "Tarih gerekli (YYYY-AA-GG)"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/blocked-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /admin/blocked-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	result, err := h.service.ListBlockedSlots(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/blocked-slots - Failed to list blocked slots: date=%s, error=%v",
			date.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/blocked-slots - Blocked slots retrieved: date=%s, count=%d",
		date.Format(domain.DateFormat), len(result.BlockedSlots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
