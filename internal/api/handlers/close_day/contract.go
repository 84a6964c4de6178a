package close_day

import "context"

type ScheduleService interface {
	CloseDay(ctx context.Context, dayOfWeek int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
