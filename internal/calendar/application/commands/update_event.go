package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/luna/internal/calendar/domain"
	"github.com/google/uuid"
)

// UpdateEventCommand replaces an event's mutable fields wholesale. Unset
// pointer fields leave the current value in place.
type UpdateEventCommand struct {
	EventID      uuid.UUID
	Title        *string
	Start        *time.Time
	End          *time.Time
	Priority     *string
	Description  *string
	Location     *string
	Participants *[]string
	IsAllDay     *bool
	Color        *string
}

// UpdateEventHandler handles the UpdateEventCommand.
type UpdateEventHandler struct {
	eventRepo domain.EventRepository
}

// NewUpdateEventHandler creates a new UpdateEventHandler.
func NewUpdateEventHandler(eventRepo domain.EventRepository) *UpdateEventHandler {
	return &UpdateEventHandler{eventRepo: eventRepo}
}

// Handle executes the UpdateEventCommand.
func (h *UpdateEventHandler) Handle(ctx context.Context, cmd UpdateEventCommand) error {
	event, err := h.eventRepo.FindByID(ctx, cmd.EventID)
	if err != nil {
		return err
	}

	if cmd.Title != nil {
		if err := event.Rename(*cmd.Title); err != nil {
			return err
		}
	}

	if cmd.Start != nil || cmd.End != nil {
		start := event.Start()
		end := event.End()
		if cmd.Start != nil {
			start = *cmd.Start
		}
		if cmd.End != nil {
			end = *cmd.End
		}
		event.Reschedule(start, end)
	}

	if cmd.Priority != nil {
		priority, err := domain.ParsePriority(*cmd.Priority)
		if err != nil {
			return err
		}
		event.SetPriority(priority)
	}
	if cmd.Description != nil {
		event.SetDescription(*cmd.Description)
	}
	if cmd.Location != nil {
		event.SetLocation(*cmd.Location)
	}
	if cmd.Participants != nil {
		event.SetParticipants(*cmd.Participants)
	}
	if cmd.IsAllDay != nil {
		event.SetAllDay(*cmd.IsAllDay)
	}
	if cmd.Color != nil {
		event.SetColor(*cmd.Color)
	}

	if err := h.eventRepo.Save(ctx, event); err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	return nil
}
