package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

const (
	// DefaultSinkTimeout ограничение времени доставки в один получатель
	DefaultSinkTimeout = 5 * time.Second

	// DefaultQueueSize емкость очереди событий, ожидающих доставки
	DefaultQueueSize = 256

	// queueSinkName метка метрики для событий, отброшенных из-за переполнения очереди
	queueSinkName = "queue"
)

type queuedEvent struct {
	ctx   context.Context
	event domain.BookingEvent
}

// Dispatcher рассылает события бронирований по всем получателям.
// Dispatch только ставит событие в очередь; доставку выполняет фоновый обработчик,
// поэтому медленный получатель не задерживает HTTP запрос.
// Ошибки получателей логируются и не возвращаются: бронирование уже сохранено.
type Dispatcher struct {
	sinks   []Sink
	timeout time.Duration
	metrics Metrics
	logger  Logger
	now     func() time.Time

	mu     sync.RWMutex
	closed bool
	queue  chan queuedEvent
	done   chan struct{}
}

// NewDispatcher создает диспетчер и запускает обработчик очереди.
// Пустой список получателей допустим. Остановка через Close.
func NewDispatcher(sinks []Sink, timeout time.Duration, metrics Metrics, logger Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultSinkTimeout
	}

	d := &Dispatcher{
		sinks:   sinks,
		timeout: timeout,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
		queue:   make(chan queuedEvent, DefaultQueueSize),
		done:    make(chan struct{}),
	}

	go d.run()
	return d
}

// Dispatch формирует событие и ставит его в очередь без ожидания.
// При переполненной очереди или после Close событие отбрасывается с записью в лог.
func (d *Dispatcher) Dispatch(ctx context.Context, eventType domain.BookingEventType, booking *domain.Booking) {
	if booking == nil {
		return
	}

	event := domain.BookingEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Booking:    *booking,
		OccurredAt: d.now().UTC(),
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("Dispatch: dispatcher is closed, event=%s type=%s booking=%s dropped", event.ID, eventType, booking.ID)
		return
	}

	// отмена контекста запроса не прерывает доставку
	select {
	case d.queue <- queuedEvent{ctx: context.WithoutCancel(ctx), event: event}:
	default:
		d.recordDelivery(queueSinkName, eventType, false)
		d.logger.Error("Dispatch: queue is full, event=%s type=%s booking=%s dropped", event.ID, eventType, booking.ID)
	}
}

// Close прекращает прием событий и ждет доставки уже поставленных в очередь.
// Возвращает ctx.Err(), если очередь не успела опустеть.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for item := range d.queue {
		d.deliver(item.ctx, item.event)
	}
}

// deliver отправляет событие всем получателям параллельно,
// каждому со своим таймаутом
func (d *Dispatcher) deliver(ctx context.Context, event domain.BookingEvent) {
	var wg sync.WaitGroup

	for _, sink := range d.sinks {
		wg.Add(1)
		go func(sink Sink) {
			defer wg.Done()

			sinkCtx, cancel := context.WithTimeout(ctx, d.timeout)
			err := sink.Publish(sinkCtx, event)
			cancel()

			d.recordDelivery(sink.Name(), event.Type, err == nil)
			if err != nil {
				d.logger.Error("Dispatch: sink=%s failed to deliver event=%s type=%s booking=%s: %v",
					sink.Name(), event.ID, event.Type, event.Booking.ID, err)
			}
		}(sink)
	}

	wg.Wait()
}

func (d *Dispatcher) recordDelivery(sink string, eventType domain.BookingEventType, ok bool) {
	if d.metrics != nil {
		d.metrics.EventDispatched(sink, string(eventType), ok)
	}
}
