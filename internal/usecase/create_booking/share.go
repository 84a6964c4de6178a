package create_booking

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

const (
	shareBaseURL = "https://wa.me/?text="

	icsDateTime  = "20060102T150405"
	icsTimestamp = "20060102T150405Z"
	icsNewline   = "\r\n"
)

// ShareConfig данные площадки для текстов подтверждения
type ShareConfig struct {
	FacilityName   string // "Halısaha"
	Location       string // адрес для LOCATION в календаре
	CalendarDomain string // домен UID события
}

var icsEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, "\r\n", `\n`, "\n", `\n`)

// buildSummary формирует однострочное описание бронирования
func buildSummary(cfg ShareConfig, b *domain.Booking) string {
	return fmt.Sprintf("%s Randevunuz: %s %s-%s - %s - %s",
		cfg.FacilityName,
		b.BookingDate.Format(domain.DateFormat),
		b.SlotStart,
		b.SlotEnd,
		b.Name,
		b.Phone,
	)
}

// buildShareLink формирует ссылку wa.me; пробелы кодируются как %20
func buildShareLink(summary string) string {
	return shareBaseURL + strings.ReplaceAll(url.QueryEscape(summary), "+", "%20")
}

// buildCalendar формирует VCALENDAR с одним VEVENT.
// start и end моменты слота; end может приходиться на следующие сутки.
func buildCalendar(cfg ShareConfig, b *domain.Booking, summary string, start, end time.Time) string {
	loc := domain.FacilityLocation()
	tz := domain.FacilityTimezone

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		fmt.Sprintf("PRODID:-//%s Randevu//TR", cfg.FacilityName),
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%s@%s", b.ID, cfg.CalendarDomain),
		"DTSTAMP:" + b.CreatedAt.UTC().Format(icsTimestamp),
		fmt.Sprintf("DTSTART;TZID=%s:%s", tz, start.In(loc).Format(icsDateTime)),
		fmt.Sprintf("DTEND;TZID=%s:%s", tz, end.In(loc).Format(icsDateTime)),
		"SUMMARY:" + icsEscaper.Replace(summary),
		"DESCRIPTION:" + icsEscaper.Replace(fmt.Sprintf("%s Randevusu - %s", cfg.FacilityName, b.Name)),
	}
	if cfg.Location != "" {
		lines = append(lines, "LOCATION:"+icsEscaper.Replace(cfg.Location))
	}
	lines = append(lines,
		"STATUS:TENTATIVE",
		"END:VEVENT",
		"END:VCALENDAR",
	)

	return strings.Join(lines, icsNewline) + icsNewline
}
