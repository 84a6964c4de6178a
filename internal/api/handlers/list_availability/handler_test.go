package list_availability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	getAvailability "github.com/m04kA/SMC-PitchBooking/internal/usecase/get_availability"
	"github.com/m04kA/SMC-PitchBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailability.Response), args.Error(1)
}

func TestHandle_OK(t *testing.T) {
	uc := new(mockUseCase)
	date, err := domain.ParseDate("2026-10-20")
	require.NoError(t, err)

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *getAvailability.Request) bool {
		return r.From.Equal(date) && r.Days == 1
	})).Return(&getAvailability.Response{Days: []domain.DayAvailability{{
		Date: date,
		Slots: []domain.Slot{
			{Start: "09:00", End: "10:00", Status: domain.SlotPast},
			{Start: "10:00", End: "11:00", Status: domain.SlotAvailable},
		},
	}}}, nil).Once()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/slots?from=2026-10-20&days=1", nil)
	NewHandler(uc, logger.NewNop()).Handle(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"date":"2026-10-20","slots":[
		{"start":"09:00","end":"10:00","status":"past"},
		{"start":"10:00","end":"11:00","status":"available"}
	]}]`, w.Body.String())
}

func TestHandle_Defaults(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, &getAvailability.Request{}).
		Return(&getAvailability.Response{Days: []domain.DayAvailability{}}, nil).Once()

	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/slots", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandle_BadParams(t *testing.T) {
	for _, query := range []string{"?days=0", "?days=31", "?days=abc", "?from=20-10-2026"} {
		t.Run(query, func(t *testing.T) {
			uc := new(mockUseCase)

			w := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/slots"+query, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/slots", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Sunucu hatası"}`, w.Body.String())
}
