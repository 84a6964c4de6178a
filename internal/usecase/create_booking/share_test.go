package create_booking

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

func sampleBooking(t *testing.T) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:          "abc",
		BookingDate: mustDate(t, "2026-10-20"),
		SlotStart:   "23:00",
		SlotEnd:     "00:00",
		Name:        "Ayşe, Can",
		Phone:       "05551234567",
		CreatedAt:   time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
	}
}

func TestBuildShareLink_RoundTrips(t *testing.T) {
	summary := buildSummary(testShare, sampleBooking(t))
	link := buildShareLink(summary)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, summary, u.Query().Get("text"))
	assert.Contains(t, link, "%20")
}

func TestBuildCalendar(t *testing.T) {
	b := sampleBooking(t)
	start := domain.AtOffset(b.BookingDate, 23*time.Hour)
	end := domain.AtOffset(b.BookingDate, 24*time.Hour)

	ics := buildCalendar(testShare, b, buildSummary(testShare, b), start, end)

	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\nVERSION:2.0\r\n"))
	assert.True(t, strings.HasSuffix(ics, "END:VEVENT\r\nEND:VCALENDAR\r\n"))
	assert.Contains(t, ics, "UID:abc@halisaha\r\n")
	assert.Contains(t, ics, "DTSTAMP:20261019T093000Z\r\n")
	assert.Contains(t, ics, "DTSTART;TZID=Europe/Istanbul:20261020T230000\r\n")
	assert.Contains(t, ics, "DTEND;TZID=Europe/Istanbul:20261021T000000\r\n", "end rolls over to the next day")
	assert.Contains(t, ics, `DESCRIPTION:Halısaha Randevusu - Ayşe\, Can`)
	assert.Contains(t, ics, "LOCATION:Ardıçlı Mah. Halı Saha\r\n")
	assert.NotContains(t, strings.ReplaceAll(ics, "\r\n", ""), "\n", "only CRLF line breaks")
}

func TestBuildCalendar_NoLocation(t *testing.T) {
	b := sampleBooking(t)
	cfg := testShare
	cfg.Location = ""

	ics := buildCalendar(cfg, b, "x", time.Now(), time.Now())
	assert.NotContains(t, ics, "LOCATION:")
}
