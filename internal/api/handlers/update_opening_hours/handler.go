package update_opening_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PitchBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PitchBooking/internal/service/schedule"
)

const (
	msgInvalidDayOfWeek   = "Geçersiz gün (0-6)"
	msgInvalidRequestBody = "Geçersiz istek gövdesi"
	msgInvalidTime        = "Saat formatı SS:DD olmalıdır"
	msgInvalidSlotMinutes = "Geçersiz slot süresi"
	msgInvalidData        = "Geçersiz çalışma saatleri"
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

// Handle PUT /api/v1/admin/opening-hours/{dayOfWeek}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем dayOfWeek из URL
	dayOfWeek, err := strconv.Atoi(mux.Vars(r)["dayOfWeek"])
	if err != nil {
		h.logger.Warn("PUT /admin/opening-hours/{day} - Invalid day of week: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	// Декодируем body
	var req UpdateOpeningHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/opening-hours/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateOpeningHours(r.Context(), dayOfWeek, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDayOfWeek):
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		case errors.Is(err, schedule.ErrInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, schedule.ErrInvalidSlotMinutes):
			handlers.RespondBadRequest(w, msgInvalidSlotMinutes)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /admin/opening-hours/{day} - Invalid data: day=%d, error=%v", dayOfWeek, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /admin/opening-hours/{day} - Failed to update opening hours: day=%d, error=%v", dayOfWeek, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/opening-hours/{day} - Opening hours updated: day=%d, %s-%s",
		dayOfWeek, result.OpenTime, result.CloseTime)
	handlers.RespondJSON(w, http.StatusOK, result)
}
