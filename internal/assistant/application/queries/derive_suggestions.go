package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/luna/internal/assistant/application/services"
	assistantDomain "github.com/felixgeelhaar/luna/internal/assistant/domain"
	calendarDomain "github.com/felixgeelhaar/luna/internal/calendar/domain"
)

// DeriveSuggestionsQuery contains the parameters for a full derivation pass.
type DeriveSuggestionsQuery struct {
	Settings assistantDomain.Settings
	Now      time.Time
}

// DeriveSuggestionsHandler handles the DeriveSuggestionsQuery.
type DeriveSuggestionsHandler struct {
	eventRepo calendarDomain.EventRepository
}

// NewDeriveSuggestionsHandler creates a new DeriveSuggestionsHandler.
func NewDeriveSuggestionsHandler(eventRepo calendarDomain.EventRepository) *DeriveSuggestionsHandler {
	return &DeriveSuggestionsHandler{eventRepo: eventRepo}
}

// Handle executes the DeriveSuggestionsQuery. The result replaces any derived
// state the caller holds; regeneration is this same query run again.
func (h *DeriveSuggestionsHandler) Handle(ctx context.Context, query DeriveSuggestionsQuery) (services.Derived, error) {
	events, err := h.eventRepo.FindAll(ctx)
	if err != nil {
		return services.Derived{}, fmt.Errorf("failed to load events: %w", err)
	}

	return services.Derive(events, query.Settings, query.Now), nil
}
