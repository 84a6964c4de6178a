package get_opening_hours

import (
	"net/http"

	"github.com/m04kA/SMC-PitchBooking/internal/api/handlers"
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

// Handle GET /api/v1/admin/opening-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListOpeningHours(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/opening-hours - Failed to list opening hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/opening-hours - Opening hours retrieved: days=%d", len(result.OpeningHours))
	handlers.RespondJSON(w, http.StatusOK, result)
}
