package unblock_slot

import (
	"context"
	"time"
)

type ScheduleService interface {
	UnblockSlot(ctx context.Context, date time.Time, slotStart string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
