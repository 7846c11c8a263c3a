package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/luna/internal/assistant/application/services"
	assistantDomain "github.com/felixgeelhaar/luna/internal/assistant/domain"
	calendarDomain "github.com/felixgeelhaar/luna/internal/calendar/domain"
)

// FreeSlotDTO is a data transfer object for a free time slot.
type FreeSlotDTO struct {
	Start       time.Time
	End         time.Time
	DurationMin int
}

// FindFreeSlotsQuery contains the parameters for finding free slots on a day.
type FindFreeSlotsQuery struct {
	Settings assistantDomain.Settings
	Date     time.Time
	Duration time.Duration // zero means the configured preferred duration
}

// FindFreeSlotsHandler handles the FindFreeSlotsQuery.
type FindFreeSlotsHandler struct {
	eventRepo calendarDomain.EventRepository
}

// NewFindFreeSlotsHandler creates a new FindFreeSlotsHandler.
func NewFindFreeSlotsHandler(eventRepo calendarDomain.EventRepository) *FindFreeSlotsHandler {
	return &FindFreeSlotsHandler{eventRepo: eventRepo}
}

// Handle executes the FindFreeSlotsQuery. It owns the slot finder's
// preconditions, filtering events to the target day and sorting them by
// start time before the search.
func (h *FindFreeSlotsHandler) Handle(ctx context.Context, query FindFreeSlotsQuery) ([]FreeSlotDTO, error) {
	events, err := h.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	duration := query.Duration
	if duration == 0 {
		duration = time.Duration(query.Settings.PreferredMeetingDuration) * time.Minute
	}

	dayStart := assistantDomain.OnDate(query.Settings.WorkingHours.Start, query.Date)
	dayEnd := assistantDomain.OnDate(query.Settings.WorkingHours.End, query.Date)
	dayEvents := calendarDomain.EventsForDay(events, query.Date)

	slots := services.FindAvailableSlots(dayEvents, dayStart, dayEnd, duration)

	dtos := make([]FreeSlotDTO, len(slots))
	for i, slot := range slots {
		dtos[i] = FreeSlotDTO{
			Start:       slot.Start,
			End:         slot.End,
			DurationMin: int(slot.Duration().Minutes()),
		}
	}

	return dtos, nil
}
