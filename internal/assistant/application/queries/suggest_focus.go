package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/luna/internal/assistant/application/services"
	assistantDomain "github.com/felixgeelhaar/luna/internal/assistant/domain"
	calendarDomain "github.com/felixgeelhaar/luna/internal/calendar/domain"
)

// SuggestFocusQuery contains the parameters for a focus block suggestion.
type SuggestFocusQuery struct {
	Settings  assistantDomain.Settings
	StartDate time.Time
}

// SuggestFocusHandler handles the SuggestFocusQuery.
type SuggestFocusHandler struct {
	eventRepo calendarDomain.EventRepository
}

// NewSuggestFocusHandler creates a new SuggestFocusHandler.
func NewSuggestFocusHandler(eventRepo calendarDomain.EventRepository) *SuggestFocusHandler {
	return &SuggestFocusHandler{eventRepo: eventRepo}
}

// Handle executes the SuggestFocusQuery. An empty result means no
// conflict-free focus block exists for the day (or focus time is disabled).
func (h *SuggestFocusHandler) Handle(ctx context.Context, query SuggestFocusQuery) ([]*calendarDomain.TimeBlock, error) {
	events, err := h.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	return services.SuggestFocusBlocks(events, query.Settings, query.StartDate), nil
}
