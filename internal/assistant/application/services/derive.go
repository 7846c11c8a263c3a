package services

import (
	"time"

	assistantDomain "github.com/felixgeelhaar/luna/internal/assistant/domain"
	calendarDomain "github.com/felixgeelhaar/luna/internal/calendar/domain"
)

// SuggestedMeetingTitle is the display title for derived meeting suggestions.
const SuggestedMeetingTitle = "Suggested Meeting"

const suggestedMeetingDescription = "AI suggested optimal meeting time"

// Derived is the complete assistant output for one derivation pass.
type Derived struct {
	Suggestions []*calendarDomain.Event
	FocusBlocks []*calendarDomain.TimeBlock
}

// Derive recomputes all suggestions from scratch. The host replaces its
// previous derived state wholesale with the result; suggestions are never
// merged or diffed against earlier ones, so stale entries cannot linger.
func Derive(events []*calendarDomain.Event, settings assistantDomain.Settings, now time.Time) Derived {
	derived := Derived{
		Suggestions: make([]*calendarDomain.Event, 0),
		FocusBlocks: make([]*calendarDomain.TimeBlock, 0),
	}

	if settings.EnableMeetingSuggestions {
		duration := time.Duration(settings.PreferredMeetingDuration) * time.Minute
		if slot := SuggestMeetingTime(events, settings, duration, now, 1); slot != nil {
			suggestion, err := calendarDomain.NewEvent(
				SuggestedMeetingTitle,
				slot.Start,
				slot.End,
				calendarDomain.PriorityMedium,
				calendarDomain.EventTypeSuggestion,
			)
			if err == nil {
				suggestion.SetDescription(suggestedMeetingDescription)
				derived.Suggestions = append(derived.Suggestions, suggestion)
			}
		}
	}

	derived.FocusBlocks = SuggestFocusBlocks(events, settings, now)

	return derived
}
