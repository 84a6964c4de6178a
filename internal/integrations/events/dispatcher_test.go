package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	"github.com/m04kA/SMC-PitchBooking/pkg/logger"
)

type mockSink struct {
	mock.Mock
	name string
}

func (m *mockSink) Name() string { return m.name }

func (m *mockSink) Publish(ctx context.Context, event domain.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *mockWriter) Close() error {
	return m.Called().Error(0)
}

type recordingMetrics struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingMetrics) EventDispatched(sink, eventType string, ok bool) {
	status := "ok"
	if !ok {
		status = "error"
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, sink+":"+eventType+":"+status)
}

func (r *recordingMetrics) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// funcSink получатель с произвольной функцией доставки
type funcSink struct {
	name    string
	publish func(ctx context.Context, event domain.BookingEvent) error
}

func (f *funcSink) Name() string { return f.name }

func (f *funcSink) Publish(ctx context.Context, event domain.BookingEvent) error {
	return f.publish(ctx, event)
}

func stalledSink(name string) *funcSink {
	return &funcSink{name: name, publish: func(ctx context.Context, _ domain.BookingEvent) error {
		<-ctx.Done()
		return ctx.Err()
	}}
}

func closeDispatcher(t *testing.T, d *Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))
}

func sampleBooking() *domain.Booking {
	date, _ := domain.ParseDate("2026-10-20")
	return &domain.Booking{
		ID:          "b-1",
		BookingDate: date,
		SlotStart:   "21:00",
		SlotEnd:     "22:00",
		Name:        "Ali",
		Phone:       "05551234567",
		Status:      domain.StatusPending,
	}
}

func TestDispatcher_DeliversToAllSinksDespiteFailures(t *testing.T) {
	failing := &mockSink{name: "kafka"}
	failing.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	ok := &mockSink{name: "telegram"}
	ok.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.Type == domain.EventBookingCreated && e.Booking.ID == "b-1" && e.ID != ""
	})).Return(nil).Once()

	metrics := &recordingMetrics{}
	d := NewDispatcher([]Sink{failing, ok}, time.Second, metrics, logger.NewNop())

	d.Dispatch(context.Background(), domain.EventBookingCreated, sampleBooking())
	closeDispatcher(t, d)

	failing.AssertExpectations(t)
	ok.AssertExpectations(t)
	assert.ElementsMatch(t, []string{"kafka:booking.created:error", "telegram:booking.created:ok"}, metrics.snapshot())
}

func TestDispatcher_IgnoresCanceledRequestContext(t *testing.T) {
	sink := &mockSink{name: "kafka"}
	sink.On("Publish", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), mock.Anything).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDispatcher([]Sink{sink}, time.Second, nil, logger.NewNop())
	d.Dispatch(ctx, domain.EventBookingCanceled, sampleBooking())
	closeDispatcher(t, d)

	sink.AssertExpectations(t)
}

func TestDispatcher_StalledSinksDoNotBlockCaller(t *testing.T) {
	metrics := &recordingMetrics{}
	d := NewDispatcher([]Sink{stalledSink("kafka"), stalledSink("telegram")}, 300*time.Millisecond, metrics, logger.NewNop())

	started := time.Now()
	d.Dispatch(context.Background(), domain.EventBookingCreated, sampleBooking())
	assert.Less(t, time.Since(started), 50*time.Millisecond, "Dispatch must not wait for delivery")

	// получатели ждут параллельно, таймауты не складываются
	closeDispatcher(t, d)
	assert.Less(t, time.Since(started), 550*time.Millisecond)
	assert.ElementsMatch(t, []string{"kafka:booking.created:error", "telegram:booking.created:error"}, metrics.snapshot())
}

func TestDispatcher_DropsWhenQueueIsFull(t *testing.T) {
	release := make(chan struct{})
	var delivered atomic.Int64
	blocking := &funcSink{name: "kafka", publish: func(context.Context, domain.BookingEvent) error {
		<-release
		delivered.Add(1)
		return nil
	}}

	metrics := &recordingMetrics{}
	d := NewDispatcher([]Sink{blocking}, 5*time.Second, metrics, logger.NewNop())

	// одно событие у обработчика и DefaultQueueSize в очереди, остальное отбрасывается
	total := DefaultQueueSize + 2
	for i := 0; i < total; i++ {
		d.Dispatch(context.Background(), domain.EventBookingCreated, sampleBooking())
	}

	dropped := 0
	for _, call := range metrics.snapshot() {
		if call == "queue:booking.created:error" {
			dropped++
		}
	}
	assert.GreaterOrEqual(t, dropped, 1)

	close(release)
	closeDispatcher(t, d)
	assert.Equal(t, int64(total-dropped), delivered.Load())
}

func TestDispatcher_CloseWaitsAndRejectsLateEvents(t *testing.T) {
	sink := &mockSink{name: "telegram"}
	sink.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	d := NewDispatcher([]Sink{sink}, time.Second, nil, logger.NewNop())
	d.Dispatch(context.Background(), domain.EventBookingConfirmed, sampleBooking())
	closeDispatcher(t, d)

	d.Dispatch(context.Background(), domain.EventBookingCanceled, sampleBooking())
	closeDispatcher(t, d)

	sink.AssertExpectations(t)
}

func TestDispatcher_CloseHonorsDeadline(t *testing.T) {
	d := NewDispatcher([]Sink{stalledSink("kafka")}, 5*time.Second, nil, logger.NewNop())
	d.Dispatch(context.Background(), domain.EventBookingCreated, sampleBooking())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, d.Close(ctx), context.DeadlineExceeded)
}

func TestDispatcher_NilBookingIgnored(t *testing.T) {
	sink := &mockSink{name: "kafka"}

	d := NewDispatcher([]Sink{sink}, time.Second, nil, logger.NewNop())
	d.Dispatch(context.Background(), domain.EventBookingCreated, nil)
	closeDispatcher(t, d)

	sink.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestKafkaSink_Publish(t *testing.T) {
	writer := new(mockWriter)
	writer.On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kafka.Message) bool {
		if len(msgs) != 1 {
			return false
		}
		msg := msgs[0]

		var payload EventMessage
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			return false
		}

		return string(msg.Key) == "b-1" &&
			payload.EventType == "booking.confirmed" &&
			payload.Booking.Date == "2026-10-20" &&
			payload.Booking.SlotStart == "21:00" &&
			len(msg.Headers) == 2 &&
			msg.Headers[1].Key == headerEventType
	})).Return(nil).Once()

	sink := NewKafkaSinkWithWriter(writer)
	err := sink.Publish(context.Background(), domain.BookingEvent{
		ID:         "evt-1",
		Type:       domain.EventBookingConfirmed,
		Booking:    *sampleBooking(),
		OccurredAt: time.Now(),
	})

	require.NoError(t, err)
	writer.AssertExpectations(t)
}

func TestKafkaSink_WriteError(t *testing.T) {
	writer := new(mockWriter)
	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("timeout")).Once()

	err := NewKafkaSinkWithWriter(writer).Publish(context.Background(), domain.BookingEvent{
		ID:      "evt-1",
		Type:    domain.EventBookingCreated,
		Booking: *sampleBooking(),
	})

	assert.ErrorContains(t, err, "timeout")
}
