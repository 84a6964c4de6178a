package domain

import (
	"time"
	_ "time/tzdata"
)

// FacilityTimezone часовой пояс площадки; вся логика дат и времени привязана к нему
const FacilityTimezone = "Europe/Istanbul"

var facilityLocation = mustLoadLocation(FacilityTimezone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// FacilityLocation возвращает *time.Location площадки
func FacilityLocation() *time.Location {
	return facilityLocation
}

// StartOfDay возвращает полночь календарного дня t в часовом поясе площадки
func StartOfDay(t time.Time) time.Time {
	t = t.In(facilityLocation)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, facilityLocation)
}

// ParseDate разбирает "YYYY-MM-DD" как календарный день площадки
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, facilityLocation)
}

// AtOffset возвращает момент времени: полночь дня date плюс offset.
// offset может превышать 24 часа (ночные слоты после полуночи).
func AtOffset(date time.Time, offset time.Duration) time.Time {
	day := StartOfDay(date)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, int(offset/time.Minute), 0, 0, facilityLocation)
}

// CalendarDate переносит календарную дату t (год, месяц, день в ее собственной зоне)
// на полночь площадки. Используется для значений SQL DATE, которые драйвер отдает в UTC.
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, facilityLocation)
}
