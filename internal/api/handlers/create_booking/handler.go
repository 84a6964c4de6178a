package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PitchBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-PitchBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "Geçersiz veri"
	msgInvalidDate         = "Geçersiz tarih formatı, YYYY-MM-DD bekleniyor."
	msgInvalidTime         = "Geçersiz saat formatı, HH:MM bekleniyor."
	msgInvalidName         = "Ad soyad 2-50 karakter olmalıdır."
	msgInvalidPhone        = "Geçerli bir telefon numarası girin."
	msgNoteTooLong         = "Not en fazla 500 karakter olabilir."
	msgOutsideHorizon      = "Geçersiz tarih. Sadece bugünden itibaren 15 gün içindeki tarihler için rezervasyon yapılabilir."
	msgSlotInPast          = "Geçmiş saatler için rezervasyon yapılamaz."
	msgNoOpeningHours      = "Bu gün için çalışma saati tanımlanmamış."
	msgOutsideOpeningHours = "Seçilen saat çalışma saatleri dışında."
	msgInvalidTimeSlot     = "Seçilen saat aralığı geçerli bir zaman dilimi değil."
	msgSlotBlocked         = "Bu saat dilimi bloke edilmiş."
	msgSlotNotAvailable    = "Bu saat dilimi zaten rezerve edilmiş."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, &req, err)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s, slot=%s-%s",
		result.Booking.ID, req.Date, req.Start, req.End)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, req *CreateBookingRequest, err error) {
	switch {
	case errors.Is(err, createBooking.ErrSlotNotAvailable):
		h.logger.Warn("POST /bookings - Slot not available: date=%s, slot=%s", req.Date, req.Start)
		handlers.RespondConflict(w, msgSlotNotAvailable)

	case errors.Is(err, createBooking.ErrInvalidName):
		handlers.RespondBadRequest(w, msgInvalidName)

	case errors.Is(err, createBooking.ErrInvalidPhone):
		handlers.RespondBadRequest(w, msgInvalidPhone)

	case errors.Is(err, createBooking.ErrInvalidTime):
		handlers.RespondBadRequest(w, msgInvalidTime)

	case errors.Is(err, createBooking.ErrNoteTooLong):
		handlers.RespondBadRequest(w, msgNoteTooLong)

	case errors.Is(err, createBooking.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	case errors.Is(err, createBooking.ErrOutsideHorizon):
		handlers.RespondBadRequest(w, msgOutsideHorizon)

	case errors.Is(err, createBooking.ErrSlotInPast):
		handlers.RespondBadRequest(w, msgSlotInPast)

	case errors.Is(err, createBooking.ErrNoOpeningHours):
		handlers.RespondBadRequest(w, msgNoOpeningHours)

	case errors.Is(err, createBooking.ErrOutsideOpeningHours):
		handlers.RespondBadRequest(w, msgOutsideOpeningHours)

	case errors.Is(err, createBooking.ErrInvalidTimeSlot):
		handlers.RespondBadRequest(w, msgInvalidTimeSlot)

	case errors.Is(err, createBooking.ErrSlotBlocked):
		handlers.RespondBadRequest(w, msgSlotBlocked)

	default:
		h.logger.Error("POST /bookings - Failed to create booking: date=%s, slot=%s, error=%v", req.Date, req.Start, err)
		handlers.RespondInternalError(w)
	}
}
