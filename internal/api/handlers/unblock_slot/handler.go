package unblock_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PitchBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	"github.com/m04kA/SMC-PitchBooking/internal/service/schedule"
)

const (
	msgInvalidDate = "Geçersiz tarih formatı"
	msgInvalidTime = "Saat formatı SS:DD olmalıdır"
	msgNotFound    = "Kapalı saat bulunamadı"
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

// Handle DELETE /api/v1/admin/blocked-slots/{date}/{start}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := domain.ParseDate(vars["date"])
	if err != nil {
		h.logger.Warn("DELETE /admin/blocked-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	start := vars["start"]

	if err := h.service.UnblockSlot(r.Context(), date, start); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockedSlotNotFound):
			h.logger.Warn("DELETE /admin/blocked-slots - Not found: date=%s, start=%s", vars["date"], start)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("DELETE /admin/blocked-slots - Failed to unblock: date=%s, start=%s, error=%v",
				vars["date"], start, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-slots - Slot unblocked: date=%s, start=%s", vars["date"], start)
	w.WriteHeader(http.StatusNoContent)
}
