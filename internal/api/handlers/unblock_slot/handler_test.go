package unblock_slot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	"github.com/m04kA/SMC-PitchBooking/internal/service/schedule"
	"github.com/m04kA/SMC-PitchBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UnblockSlot(ctx context.Context, date time.Time, slotStart string) error {
	return m.Called(ctx, date, slotStart).Error(0)
}

func del(svc ScheduleService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/blocked-slots/{date}/{start}", NewHandler(svc, logger.NewNop()).Handle).
		Methods(http.MethodDelete)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, path, nil))
	return w
}

func onDate(s string) interface{} {
	return mock.MatchedBy(func(d time.Time) bool { return d.Format(domain.DateFormat) == s })
}

func TestHandle(t *testing.T) {
	svc := new(mockService)
	svc.On("UnblockSlot", mock.Anything, onDate("2026-10-25"), "20:00").Return(nil).Once()

	w := del(svc, "/api/v1/admin/blocked-slots/2026-10-25/20:00")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	svc := new(mockService)
	svc.On("UnblockSlot", mock.Anything, onDate("2026-10-25"), "21:00").Return(schedule.ErrBlockedSlotNotFound).Once()
	svc.On("UnblockSlot", mock.Anything, onDate("2026-10-25"), "9pm").Return(schedule.ErrInvalidTime).Once()
	svc.On("UnblockSlot", mock.Anything, onDate("2026-10-26"), "21:00").Return(schedule.ErrInternal).Once()

	assert.Equal(t, http.StatusNotFound, del(svc, "/api/v1/admin/blocked-slots/2026-10-25/21:00").Code)
	assert.Equal(t, http.StatusBadRequest, del(svc, "/api/v1/admin/blocked-slots/2026-10-25/9pm").Code)
	assert.Equal(t, http.StatusInternalServerError, del(svc, "/api/v1/admin/blocked-slots/2026-10-26/21:00").Code)
	assert.Equal(t, http.StatusBadRequest, del(svc, "/api/v1/admin/blocked-slots/tomorrow/21:00").Code)
}
