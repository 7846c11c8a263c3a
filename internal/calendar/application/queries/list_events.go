// Package queries contains read operations over the calendar event store.
package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/luna/internal/calendar/domain"
)

// ListEventsQuery lists all events, optionally restricted to one calendar day.
type ListEventsQuery struct {
	Date *time.Time
}

// ListEventsHandler handles the ListEventsQuery.
type ListEventsHandler struct {
	eventRepo domain.EventRepository
}

// NewListEventsHandler creates a new ListEventsHandler.
func NewListEventsHandler(eventRepo domain.EventRepository) *ListEventsHandler {
	return &ListEventsHandler{eventRepo: eventRepo}
}

// Handle executes the ListEventsQuery. Results are sorted ascending by start.
func (h *ListEventsHandler) Handle(ctx context.Context, query ListEventsQuery) ([]*domain.Event, error) {
	events, err := h.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	if query.Date == nil {
		return events, nil
	}
	return domain.EventsForDay(events, *query.Date), nil
}
