// Package commands contains write operations on the calendar event store.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/luna/internal/calendar/domain"
	"github.com/google/uuid"
)

// CreateEventCommand contains the data needed to create an event.
type CreateEventCommand struct {
	Title        string
	Start        time.Time
	End          time.Time
	Priority     string
	Type         domain.EventType
	Description  string
	Location     string
	Participants []string
	IsAllDay     bool
	Color        string
}

// CreateEventResult contains the result of creating an event.
type CreateEventResult struct {
	EventID uuid.UUID
}

// CreateEventHandler handles the CreateEventCommand.
type CreateEventHandler struct {
	eventRepo domain.EventRepository
}

// NewCreateEventHandler creates a new CreateEventHandler.
func NewCreateEventHandler(eventRepo domain.EventRepository) *CreateEventHandler {
	return &CreateEventHandler{eventRepo: eventRepo}
}

// Handle executes the CreateEventCommand.
func (h *CreateEventHandler) Handle(ctx context.Context, cmd CreateEventCommand) (*CreateEventResult, error) {
	priority := domain.PriorityMedium
	if cmd.Priority != "" {
		parsed, err := domain.ParsePriority(cmd.Priority)
		if err != nil {
			return nil, err
		}
		priority = parsed
	}

	eventType := cmd.Type
	if eventType == "" {
		eventType = domain.EventTypeEvent
	}

	event, err := domain.NewEvent(cmd.Title, cmd.Start, cmd.End, priority, eventType)
	if err != nil {
		return nil, err
	}

	if cmd.Description != "" {
		event.SetDescription(cmd.Description)
	}
	if cmd.Location != "" {
		event.SetLocation(cmd.Location)
	}
	if len(cmd.Participants) > 0 {
		event.SetParticipants(cmd.Participants)
	}
	if cmd.IsAllDay {
		event.SetAllDay(true)
	}
	if cmd.Color != "" {
		event.SetColor(cmd.Color)
	}

	if err := h.eventRepo.Save(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to save event: %w", err)
	}

	return &CreateEventResult{EventID: event.ID()}, nil
}
