package queries

import (
	"time"

	"github.com/felixgeelhaar/luna/internal/calendar/domain"
)

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date           time.Time
	IsCurrentMonth bool
	IsToday        bool
	DayOfMonth     int
	DayOfWeek      time.Weekday
}

// MonthGrid returns the Sunday-aligned grid of days covering the given month:
// from the Sunday on or before the 1st through the Saturday on or after the
// last day. now supplies the "today" marker and the location.
func MonthGrid(month time.Month, year int, now time.Time) []CalendarDay {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	gridStart := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	gridEnd := lastOfMonth.AddDate(0, 0, int(time.Saturday-lastOfMonth.Weekday()))

	days := make([]CalendarDay, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		days = append(days, CalendarDay{
			Date:           day,
			IsCurrentMonth: day.Month() == month && day.Year() == year,
			IsToday:        domain.SameDay(day, now),
			DayOfMonth:     day.Day(),
			DayOfWeek:      day.Weekday(),
		})
	}

	return days
}
