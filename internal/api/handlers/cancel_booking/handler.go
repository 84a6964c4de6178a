package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PitchBooking/internal/api/handlers"
	cancelBooking "github.com/m04kA/SMC-PitchBooking/internal/usecase/cancel_booking"
)

const (
	msgInvalidRequestBody = "Geçersiz veri"
	msgMissingIdentifier  = "Rezervasyon ID veya tarih/saat bilgisi gerekli"
	msgNotFound           = "Rezervasyon bulunamadı."
	msgCanceled           = "Rezervasyon başarıyla iptal edildi."
	msgAlreadyCanceled    = "Bu rezervasyon zaten iptal edilmiş."
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/cancel
// Повторная отмена отвечает 200 с alreadyCanceled=true.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgMissingIdentifier)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/cancel - Missing identifier: %v", err)
			handlers.RespondBadRequest(w, msgMissingIdentifier)

		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/cancel - Booking not found: id=%q, date=%q, start=%q", req.BookingID, req.Date, req.Start)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /bookings/cancel - Failed to cancel booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := CancelBookingResponse{OK: true, AlreadyCanceled: result.AlreadyCanceled, Message: msgCanceled}
	if result.AlreadyCanceled {
		response.Message = msgAlreadyCanceled
	}

	h.logger.Info("POST /bookings/cancel - Done: booking_id=%s, already_canceled=%t", result.Booking.ID, result.AlreadyCanceled)
	handlers.RespondJSON(w, http.StatusOK, response)
}
