package commands

import (
	"context"

	"github.com/felixgeelhaar/luna/internal/calendar/domain"
	"github.com/google/uuid"
)

// DeleteEventCommand identifies the event to remove.
type DeleteEventCommand struct {
	EventID uuid.UUID
}

// DeleteEventHandler handles the DeleteEventCommand.
type DeleteEventHandler struct {
	eventRepo domain.EventRepository
}

// NewDeleteEventHandler creates a new DeleteEventHandler.
func NewDeleteEventHandler(eventRepo domain.EventRepository) *DeleteEventHandler {
	return &DeleteEventHandler{eventRepo: eventRepo}
}

// Handle executes the DeleteEventCommand.
func (h *DeleteEventHandler) Handle(ctx context.Context, cmd DeleteEventCommand) error {
	return h.eventRepo.Delete(ctx, cmd.EventID)
}
