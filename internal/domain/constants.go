package domain

// Значения по умолчанию и ограничения
const (
	BookingHorizonDays   = 15 // бронирование доступно на [сегодня, сегодня+15]
	DefaultAvailableDays = 15
	MinAvailableDays     = 1
	MaxAvailableDays     = 30
)

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 240
	MinNameLength          = 2
	MaxNameLength          = 50
	MinPhoneDigits         = 10
	MaxPhoneDigits         = 11
	MaxNoteLength          = 500
	MaxBlockReasonLength   = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, которые занимают слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
