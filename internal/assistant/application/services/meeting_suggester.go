package services

import (
	"time"

	assistantDomain "github.com/felixgeelhaar/luna/internal/assistant/domain"
	calendarDomain "github.com/felixgeelhaar/luna/internal/calendar/domain"
)

// MeetingLookaheadDays is the fixed search horizon for meeting suggestions.
const MeetingLookaheadDays = 5

// TimeRange is a suggested meeting start/end pair.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// SuggestMeetingTime searches the next MeetingLookaheadDays calendar days
// beginning at startDate for the first free working-hours slot of the given
// duration. Days are tried in order and the first day with any opening wins;
// within a day the first slot wins. Returns nil when every day in the horizon
// is fully booked.
//
// participantCount is accepted for callers that track attendance but does not
// influence the search.
func SuggestMeetingTime(
	events []*calendarDomain.Event,
	settings assistantDomain.Settings,
	duration time.Duration,
	startDate time.Time,
	participantCount int,
) *TimeRange {
	_ = participantCount

	for dayOffset := 0; dayOffset < MeetingLookaheadDays; dayOffset++ {
		targetDate := startDate.AddDate(0, 0, dayOffset)

		workStart := assistantDomain.OnDate(settings.WorkingHours.Start, targetDate)
		workEnd := assistantDomain.OnDate(settings.WorkingHours.End, targetDate)

		dayEvents := calendarDomain.EventsForDay(events, targetDate)
		slots := FindAvailableSlots(dayEvents, workStart, workEnd, duration)

		if len(slots) > 0 {
			return &TimeRange{Start: slots[0].Start, End: slots[0].End}
		}
	}

	return nil
}
