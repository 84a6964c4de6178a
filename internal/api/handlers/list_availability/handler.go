package list_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PitchBooking/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-PitchBooking/internal/usecase/get_availability"
)

const (
	msgInvalidParams = "Geçersiz parametreler"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: from (optional, YYYY-MM-DD, default today), days (optional, 1-30, default 15)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(query.Get("from"), query.Get("days"))
	if err != nil {
		h.logger.Warn("GET /slots - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDays):
			h.logger.Warn("GET /slots - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /slots - Failed to get availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Availability retrieved successfully: days=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
