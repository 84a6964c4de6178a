package update_opening_hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-PitchBooking/internal/service/schedule"
	"github.com/m04kA/SMC-PitchBooking/internal/service/schedule/models"
	"github.com/m04kA/SMC-PitchBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UpdateOpeningHours(ctx context.Context, day int, req *models.UpdateOpeningHoursRequest) (*models.OpeningHoursResponse, error) {
	args := m.Called(ctx, day, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OpeningHoursResponse), args.Error(1)
}

func serve(svc ScheduleService, day, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/opening-hours/{dayOfWeek}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPut)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/v1/admin/opening-hours/"+day, strings.NewReader(body)))
	return w
}

func TestHandle(t *testing.T) {
	svc := new(mockService)
	svc.On("UpdateOpeningHours", mock.Anything, 6, &models.UpdateOpeningHoursRequest{
		OpenTime: "10:00", CloseTime: "02:00", SlotMinutes: 90,
	}).Return(&models.OpeningHoursResponse{
		DayOfWeek: 6, OpenTime: "10:00", CloseTime: "02:00", SlotMinutes: 90, WrapsMidnight: true,
	}, nil).Once()

	w := serve(svc, "6", `{"openTime":"10:00","closeTime":"02:00","slotMinutes":90}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"wrapsMidnight":true`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		day  string
		body string
		err  error
		code int
	}{
		{name: "day not a number", day: "mon", body: `{}`, code: http.StatusBadRequest},
		{name: "broken body", day: "1", body: `{"openTime":`, code: http.StatusBadRequest},
		{name: "day out of range", day: "7", body: `{"openTime":"09:00","closeTime":"17:00","slotMinutes":60}`, err: schedule.ErrInvalidDayOfWeek, code: http.StatusBadRequest},
		{name: "bad time", day: "1", body: `{"openTime":"9","closeTime":"17:00","slotMinutes":60}`, err: schedule.ErrInvalidTime, code: http.StatusBadRequest},
		{name: "bad slot", day: "1", body: `{"openTime":"09:00","closeTime":"17:00","slotMinutes":1}`, err: schedule.ErrInvalidSlotMinutes, code: http.StatusBadRequest},
		{name: "internal", day: "1", body: `{"openTime":"09:00","closeTime":"17:00","slotMinutes":60}`, err: schedule.ErrInternal, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.err != nil {
				svc.On("UpdateOpeningHours", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err).Once()
			}

			w := serve(svc, tt.day, tt.body)
			assert.Equal(t, tt.code, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
