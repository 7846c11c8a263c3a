package cli

import (
	"fmt"

	calendarDomain "github.com/felixgeelhaar/luna/internal/calendar/domain"
)

// formatEventTime renders an event's time range the way the calendar grid
// shows it.
func formatEventTime(event *calendarDomain.Event) string {
	if event.IsAllDay() {
		return "All day"
	}
	return fmt.Sprintf("%s - %s", event.Start().Format("3:04 PM"), event.End().Format("3:04 PM"))
}

// printEvent writes one event line: time range, title, and markers.
func printEvent(event *calendarDomain.Event) {
	marker := ""
	switch event.Type() {
	case calendarDomain.EventTypeSuggestion:
		marker = " [suggested]"
	case calendarDomain.EventTypeFocus:
		marker = " [focus]"
	}
	fmt.Printf("  %-19s  %s (%s)%s\n", formatEventTime(event), event.Title(), event.Priority(), marker)
}
