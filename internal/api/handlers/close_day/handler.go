package close_day

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PitchBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PitchBooking/internal/service/schedule"
)

const (
	msgInvalidDayOfWeek = "Geçersiz gün (0-6)"
	msgAlreadyClosed    = "Bu gün için çalışma saati tanımlı değil"
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

// Handle DELETE /api/v1/admin/opening-hours/{dayOfWeek}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dayOfWeek, err := strconv.Atoi(mux.Vars(r)["dayOfWeek"])
	if err != nil {
		h.logger.Warn("DELETE /admin/opening-hours/{day} - Invalid day of week: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	if err := h.service.CloseDay(r.Context(), dayOfWeek); err != nil {
		switch {
		case errors.Is(err, schedule.ErrDayAlreadyClosed):
			handlers.RespondNotFound(w, msgAlreadyClosed)

		case errors.Is(err, schedule.ErrInvalidDayOfWeek):
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		default:
			h.logger.Error("DELETE /admin/opening-hours/{day} - Failed to close day: day=%d, error=%v", dayOfWeek, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/opening-hours/{day} - Day closed: day=%d", dayOfWeek)
	w.WriteHeader(http.StatusNoContent)
}
