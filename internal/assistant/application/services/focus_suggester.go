package services

import (
	"time"

	assistantDomain "github.com/felixgeelhaar/luna/internal/assistant/domain"
	calendarDomain "github.com/felixgeelhaar/luna/internal/calendar/domain"
)

const (
	focusBlockDuration = 120 * time.Minute
	focusEdgeMargin    = 30 * time.Minute
)

// FocusBlockTitle is the display title for suggested focus blocks.
const FocusBlockTitle = "Focus Time"

// SuggestFocusBlocks computes at most one focus block for startDate's
// calendar day. The candidate interval follows the configured preference:
// morning starts 30 minutes into the working day, afternoon ends 30 minutes
// before it closes, custom uses the first configured range, and anything else
// falls back to a fixed 13:00-15:00 midday block.
//
// A candidate that overlaps any existing same-day event is suppressed
// entirely; there is no retry at an alternative time. Returns an empty slice
// when focus time is disabled or the candidate conflicts.
func SuggestFocusBlocks(
	events []*calendarDomain.Event,
	settings assistantDomain.Settings,
	startDate time.Time,
) []*calendarDomain.TimeBlock {
	if !settings.EnableFocusTime {
		return []*calendarDomain.TimeBlock{}
	}

	workStart := assistantDomain.OnDate(settings.WorkingHours.Start, startDate)
	workEnd := assistantDomain.OnDate(settings.WorkingHours.End, startDate)

	dayEvents := calendarDomain.EventsForDay(events, startDate)

	var focusStart, focusEnd time.Time
	switch {
	case settings.FocusTimePreference == assistantDomain.FocusPreferenceMorning:
		focusStart = workStart.Add(focusEdgeMargin)
		focusEnd = focusStart.Add(focusBlockDuration)
	case settings.FocusTimePreference == assistantDomain.FocusPreferenceAfternoon:
		focusEnd = workEnd.Add(-focusEdgeMargin)
		focusStart = focusEnd.Add(-focusBlockDuration)
	case len(settings.CustomFocusTimes) > 0:
		custom := settings.CustomFocusTimes[0]
		focusStart = assistantDomain.OnDate(custom.Start, startDate)
		focusEnd = assistantDomain.OnDate(custom.End, startDate)
	default:
		focusStart = assistantDomain.OnDate("13:00", startDate)
		focusEnd = focusStart.Add(focusBlockDuration)
	}

	for _, event := range dayEvents {
		if event.Overlaps(focusStart, focusEnd) {
			return []*calendarDomain.TimeBlock{}
		}
	}

	block, err := calendarDomain.NewTimeBlock(calendarDomain.BlockTypeFocus, FocusBlockTitle, focusStart, focusEnd)
	if err != nil {
		return []*calendarDomain.TimeBlock{}
	}

	return []*calendarDomain.TimeBlock{block}
}
