package commands

import (
	"context"
	"errors"
	"time"

	assistantServices "github.com/felixgeelhaar/luna/internal/assistant/application/services"
	assistantDomain "github.com/felixgeelhaar/luna/internal/assistant/domain"
	"github.com/felixgeelhaar/luna/internal/calendar/domain"
	"github.com/google/uuid"
)

// ErrUnparseableInput is returned when quick-add text yields an incomplete
// draft. The host surfaces it as a user-facing rejection.
var ErrUnparseableInput = errors.New("couldn't process input")

// QuickAddCommand creates an event from free-form text.
type QuickAddCommand struct {
	Text     string
	Now      time.Time
	Settings assistantDomain.Settings
}

// QuickAddResult contains the created event and the draft it came from.
type QuickAddResult struct {
	EventID uuid.UUID
	Draft   assistantServices.EventDraft
}

// QuickAddHandler handles the QuickAddCommand.
type QuickAddHandler struct {
	eventRepo domain.EventRepository
}

// NewQuickAddHandler creates a new QuickAddHandler.
func NewQuickAddHandler(eventRepo domain.EventRepository) *QuickAddHandler {
	return &QuickAddHandler{eventRepo: eventRepo}
}

// Handle parses the text into a draft, validates it, and commits it as an
// event. Parsing itself never fails; only an incomplete draft is rejected.
func (h *QuickAddHandler) Handle(ctx context.Context, cmd QuickAddCommand) (*QuickAddResult, error) {
	draft := assistantServices.ParseQuickEvent(cmd.Text, cmd.Now, cmd.Settings)
	if !draft.Complete() {
		return nil, ErrUnparseableInput
	}

	event, err := domain.NewEvent(draft.Title, draft.Start, draft.End, draft.Priority, draft.Type)
	if err != nil {
		return nil, ErrUnparseableInput
	}
	if draft.IsAllDay {
		event.SetAllDay(true)
	}

	if err := h.eventRepo.Save(ctx, event); err != nil {
		return nil, err
	}

	return &QuickAddResult{EventID: event.ID(), Draft: draft}, nil
}
