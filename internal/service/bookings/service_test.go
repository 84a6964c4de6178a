package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PitchBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PitchBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-PitchBooking/pkg/logger"
	"github.com/m04kA/SMC-PitchBooking/pkg/metrics"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) TransitionStatus(
	ctx context.Context,
	id string,
	from []domain.BookingStatus,
	to domain.BookingStatus,
) (*domain.Booking, error) {
	args := m.Called(ctx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) UpdateDetails(ctx context.Context, id string, details domain.BookingDetails) (*domain.Booking, error) {
	args := m.Called(ctx, id, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Dispatch(ctx context.Context, eventType domain.BookingEventType, booking *domain.Booking) {
	m.Called(ctx, eventType, booking)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) BookingOutcome(outcome string) {
	m.Called(outcome)
}

func strPtr(s string) *string {
	return &s
}

func booking(status domain.BookingStatus) *domain.Booking {
	date, _ := domain.ParseDate("2026-10-20")
	return &domain.Booking{
		ID:          "b-1",
		BookingDate: date,
		SlotStart:   "21:00",
		SlotEnd:     "22:00",
		Name:        "Ali Veli",
		Phone:       "05551234567",
		Status:      status,
	}
}

func newService() (*Service, *mockBookingRepo, *mockDispatcher, *mockMetrics) {
	repo := new(mockBookingRepo)
	dispatcher := new(mockDispatcher)
	m := new(mockMetrics)
	return NewService(repo, dispatcher, m, logger.NewNop()), repo, dispatcher, m
}

func TestGetByID(t *testing.T) {
	svc, repo, _, _ := newService()
	repo.On("GetByID", mock.Anything, "b-1").Return(booking(domain.StatusPending), nil).Once()
	repo.On("GetByID", mock.Anything, "missing").Return(nil, bookingRepo.ErrBookingNotFound).Once()

	resp, err := svc.GetByID(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-20", resp.Date)
	assert.Equal(t, "21:00", resp.Start)
	assert.Equal(t, "pending", resp.Status)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_PassesFilter(t *testing.T) {
	svc, repo, _, _ := newService()

	date, err := domain.ParseDate("2026-10-20")
	require.NoError(t, err)

	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return f.Date != nil && f.Date.Equal(date) &&
			f.Phone != nil && *f.Phone == "555" &&
			f.Name != nil && *f.Name == "ali"
	})).Return([]*domain.Booking{booking(domain.StatusPending), booking(domain.StatusCanceled)}, nil).Once()

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Date:  &date,
		Phone: strPtr("555"),
		Name:  strPtr("ali"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
	repo.AssertExpectations(t)
}

func TestList_EmptyIsNotNil(t *testing.T) {
	svc, repo, _, _ := newService()
	repo.On("List", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil).Once()

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
}

func TestUpdate_Confirm(t *testing.T) {
	svc, repo, dispatcher, _ := newService()
	confirmed := booking(domain.StatusConfirmed)

	repo.On("GetByID", mock.Anything, "b-1").Return(booking(domain.StatusPending), nil).Once()
	repo.On("TransitionStatus", mock.Anything, "b-1", []domain.BookingStatus{domain.StatusPending}, domain.StatusConfirmed).
		Return(confirmed, nil).Once()
	dispatcher.On("Dispatch", mock.Anything, domain.EventBookingConfirmed, confirmed).Return().Once()

	resp, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{Status: strPtr("confirmed")})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	dispatcher.AssertExpectations(t)
}

func TestUpdate_CancelRecordsOutcome(t *testing.T) {
	svc, repo, dispatcher, m := newService()
	canceled := booking(domain.StatusCanceled)

	repo.On("GetByID", mock.Anything, "b-1").Return(booking(domain.StatusPending), nil).Once()
	repo.On("TransitionStatus", mock.Anything, "b-1", mock.Anything, domain.StatusCanceled).Return(canceled, nil).Once()
	dispatcher.On("Dispatch", mock.Anything, domain.EventBookingCanceled, canceled).Return().Once()
	m.On("BookingOutcome", metrics.OutcomeCanceled).Return().Once()

	_, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{Status: strPtr("canceled")})
	require.NoError(t, err)
	m.AssertExpectations(t)
}

func TestUpdate_SameStatusIsNoop(t *testing.T) {
	svc, repo, dispatcher, _ := newService()
	repo.On("GetByID", mock.Anything, "b-1").Return(booking(domain.StatusConfirmed), nil).Once()

	resp, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{Status: strPtr("confirmed")})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	repo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_ForbiddenTransitions(t *testing.T) {
	tests := []struct {
		name string
		from domain.BookingStatus
		to   string
	}{
		{name: "confirmed to canceled", from: domain.StatusConfirmed, to: "canceled"},
		{name: "confirmed to pending", from: domain.StatusConfirmed, to: "pending"},
		{name: "canceled to pending", from: domain.StatusCanceled, to: "pending"},
		{name: "canceled to confirmed", from: domain.StatusCanceled, to: "confirmed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newService()
			repo.On("GetByID", mock.Anything, "b-1").Return(booking(tt.from), nil).Once()

			_, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
				Status: strPtr(tt.to),
				Name:   strPtr("Yeni İsim"),
			})

			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.ErrorIs(t, err, domain.ErrConflict)
			repo.AssertNotCalled(t, "UpdateDetails", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpdate_ConcurrentTransition(t *testing.T) {
	svc, repo, dispatcher, _ := newService()

	repo.On("GetByID", mock.Anything, "b-1").Return(booking(domain.StatusPending), nil).Once()
	repo.On("TransitionStatus", mock.Anything, "b-1", mock.Anything, domain.StatusConfirmed).
		Return(nil, bookingRepo.ErrStatusConflict).Once()
	repo.On("GetByID", mock.Anything, "b-1").Return(booking(domain.StatusCanceled), nil).Once()

	_, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{Status: strPtr("confirmed")})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_Details(t *testing.T) {
	svc, repo, _, _ := newService()
	updated := booking(domain.StatusPending)
	updated.Name = "Mehmet"
	updated.Phone = "05321112233"

	repo.On("GetByID", mock.Anything, "b-1").Return(booking(domain.StatusPending), nil).Once()
	repo.On("UpdateDetails", mock.Anything, "b-1", mock.MatchedBy(func(d domain.BookingDetails) bool {
		return d.Name != nil && *d.Name == "Mehmet" &&
			d.Phone != nil && *d.Phone == "05321112233" &&
			d.Note != nil && *d.Note == ""
	})).Return(updated, nil).Once()

	resp, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
		Name:  strPtr(" Mehmet "),
		Phone: strPtr("0532 111 22 33"),
		Note:  strPtr("   "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Mehmet", resp.Name)
	repo.AssertExpectations(t)
}

func TestUpdate_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.UpdateBookingRequest
		wantErr error
	}{
		{name: "empty", req: &models.UpdateBookingRequest{}, wantErr: ErrInvalidInput},
		{name: "unknown status", req: &models.UpdateBookingRequest{Status: strPtr("done")}, wantErr: ErrInvalidStatus},
		{name: "short name", req: &models.UpdateBookingRequest{Name: strPtr("A")}, wantErr: ErrInvalidName},
		{name: "bad phone", req: &models.UpdateBookingRequest{Phone: strPtr("12-34")}, wantErr: ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newService()

			_, err := svc.Update(context.Background(), "b-1", tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
			repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdate_RepositoryError(t *testing.T) {
	svc, repo, _, _ := newService()
	repo.On("GetByID", mock.Anything, "b-1").Return(nil, errors.New("boom")).Once()

	_, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{Status: strPtr("confirmed")})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdate_LostRaceLeavesDetailsUntouched(t *testing.T) {
	svc, repo, dispatcher, _ := newService()

	repo.On("GetByID", mock.Anything, "b-1").Return(booking(domain.StatusPending), nil).Once()
	repo.On("TransitionStatus", mock.Anything, "b-1", mock.Anything, domain.StatusConfirmed).
		Return(nil, bookingRepo.ErrStatusConflict).Once()
	repo.On("GetByID", mock.Anything, "b-1").Return(booking(domain.StatusCanceled), nil).Once()

	_, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
		Status: strPtr("confirmed"),
		Name:   strPtr("Mehmet"),
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	repo.AssertNotCalled(t, "UpdateDetails", mock.Anything, mock.Anything, mock.Anything)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_StatusThenDetails(t *testing.T) {
	svc, repo, dispatcher, _ := newService()

	confirmed := booking(domain.StatusConfirmed)
	final := booking(domain.StatusConfirmed)
	final.Name = "Mehmet"

	var order []string
	repo.On("GetByID", mock.Anything, "b-1").Return(booking(domain.StatusPending), nil).Once()
	repo.On("TransitionStatus", mock.Anything, "b-1", mock.Anything, domain.StatusConfirmed).
		Run(func(mock.Arguments) { order = append(order, "status") }).
		Return(confirmed, nil).Once()
	repo.On("UpdateDetails", mock.Anything, "b-1", mock.Anything).
		Run(func(mock.Arguments) { order = append(order, "details") }).
		Return(final, nil).Once()
	dispatcher.On("Dispatch", mock.Anything, domain.EventBookingConfirmed, final).Return().Once()

	resp, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
		Status: strPtr("confirmed"),
		Name:   strPtr("Mehmet"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"status", "details"}, order)
	assert.Equal(t, "Mehmet", resp.Name)
	assert.Equal(t, "confirmed", resp.Status)
	dispatcher.AssertExpectations(t)
}

func TestUpdate_ConcurrentSameTransitionSkipsEvent(t *testing.T) {
	svc, repo, dispatcher, _ := newService()

	repo.On("GetByID", mock.Anything, "b-1").Return(booking(domain.StatusPending), nil).Once()
	repo.On("TransitionStatus", mock.Anything, "b-1", mock.Anything, domain.StatusConfirmed).
		Return(nil, bookingRepo.ErrStatusConflict).Once()
	repo.On("GetByID", mock.Anything, "b-1").Return(booking(domain.StatusConfirmed), nil).Once()

	resp, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{Status: strPtr("confirmed")})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
}
