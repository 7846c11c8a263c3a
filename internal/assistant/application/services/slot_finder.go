// Package services implements the assistant heuristics: free-slot search,
// meeting and focus suggestion, priority inference, and quick-add parsing.
// Every function here is a pure computation over its inputs.
package services

import (
	"time"

	calendarDomain "github.com/felixgeelhaar/luna/internal/calendar/domain"
)

// TimeSlot is a candidate free interval of exactly the requested duration.
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// Duration returns the slot length.
func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// FindAvailableSlots computes free slots of exactly duration within
// [dayStart, dayEnd] around the given events.
//
// Preconditions the caller must satisfy: events are filtered to the target
// calendar day and sorted ascending by start time. The finder neither filters
// nor sorts.
//
// Each gap yields at most one slot, placed at the gap's start rather than
// filling it. The cursor only moves forward, so overlapping or nested events
// merge into a single busy interval.
func FindAvailableSlots(events []*calendarDomain.Event, dayStart, dayEnd time.Time, duration time.Duration) []TimeSlot {
	slots := make([]TimeSlot, 0)
	cursor := dayStart

	for _, event := range events {
		if event.Start().Sub(cursor) >= duration {
			slots = append(slots, TimeSlot{Start: cursor, End: cursor.Add(duration)})
		}
		if event.End().After(cursor) {
			cursor = event.End()
		}
	}

	if dayEnd.Sub(cursor) >= duration {
		slots = append(slots, TimeSlot{Start: cursor, End: cursor.Add(duration)})
	}

	return slots
}
