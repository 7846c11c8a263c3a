// Package queries exposes the assistant heuristics as query handlers over the
// event repository.
package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/luna/internal/assistant/application/services"
	assistantDomain "github.com/felixgeelhaar/luna/internal/assistant/domain"
	calendarDomain "github.com/felixgeelhaar/luna/internal/calendar/domain"
)

// SuggestMeetingQuery contains the parameters for a meeting suggestion.
type SuggestMeetingQuery struct {
	Settings         assistantDomain.Settings
	Duration         time.Duration // zero means the configured preferred duration
	StartDate        time.Time
	ParticipantCount int
}

// SuggestMeetingHandler handles the SuggestMeetingQuery.
type SuggestMeetingHandler struct {
	eventRepo calendarDomain.EventRepository
}

// NewSuggestMeetingHandler creates a new SuggestMeetingHandler.
func NewSuggestMeetingHandler(eventRepo calendarDomain.EventRepository) *SuggestMeetingHandler {
	return &SuggestMeetingHandler{eventRepo: eventRepo}
}

// Handle executes the SuggestMeetingQuery. A nil result with a nil error
// means the search horizon is fully booked.
func (h *SuggestMeetingHandler) Handle(ctx context.Context, query SuggestMeetingQuery) (*services.TimeRange, error) {
	events, err := h.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	duration := query.Duration
	if duration == 0 {
		duration = time.Duration(query.Settings.PreferredMeetingDuration) * time.Minute
	}

	return services.SuggestMeetingTime(events, query.Settings, duration, query.StartDate, query.ParticipantCount), nil
}
