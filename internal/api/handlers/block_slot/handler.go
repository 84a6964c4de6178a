package block_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PitchBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PitchBooking/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "Geçersiz istek gövdesi"
	msgInvalidDate        = "Geçersiz tarih formatı"
	msgInvalidTime        = "Saat formatı SS:DD olmalıdır"
	msgNotOnGrid          = "Bu saat bir slot başlangıcı değil"
	msgReasonTooLong      = "Açıklama çok uzun"
	msgAlreadyBlocked     = "Bu saat zaten kapalı"
	msgInvalidData        = "Geçersiz veri"
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

// Handle POST /api/v1/admin/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /admin/blocked-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.BlockSlot(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAlreadyBlocked):
			h.logger.Warn("POST /admin/blocked-slots - Already blocked: date=%s, start=%s", req.Date, req.Start)
			handlers.RespondConflict(w, msgAlreadyBlocked)

		case errors.Is(err, schedule.ErrNotOnGrid):
			handlers.RespondBadRequest(w, msgNotOnGrid)

		case errors.Is(err, schedule.ErrInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, schedule.ErrReasonTooLong):
			handlers.RespondBadRequest(w, msgReasonTooLong)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocked-slots - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /admin/blocked-slots - Failed to block slot: date=%s, start=%s, error=%v",
				req.Date, req.Start, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-slots - Slot blocked: id=%d, date=%s, start=%s", result.ID, result.Date, result.Start)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
