// Package app wires Luna's dependencies into a single container.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	assistantQueries "github.com/felixgeelhaar/luna/internal/assistant/application/queries"
	assistantDomain "github.com/felixgeelhaar/luna/internal/assistant/domain"
	calendarCommands "github.com/felixgeelhaar/luna/internal/calendar/application/commands"
	calendarQueries "github.com/felixgeelhaar/luna/internal/calendar/application/queries"
	calendarServices "github.com/felixgeelhaar/luna/internal/calendar/application/services"
	calendarDomain "github.com/felixgeelhaar/luna/internal/calendar/domain"
	"github.com/felixgeelhaar/luna/internal/calendar/infrastructure/ics"
	"github.com/felixgeelhaar/luna/internal/calendar/infrastructure/memory"
	"github.com/felixgeelhaar/luna/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config   *config.Config
	Logger   *slog.Logger
	Settings assistantDomain.Settings

	EventRepo calendarDomain.EventRepository

	// Calendar commands
	CreateEventHandler *calendarCommands.CreateEventHandler
	UpdateEventHandler *calendarCommands.UpdateEventHandler
	DeleteEventHandler *calendarCommands.DeleteEventHandler
	QuickAddHandler    *calendarCommands.QuickAddHandler

	// Calendar queries
	ListEventsHandler *calendarQueries.ListEventsHandler

	// Assistant queries
	SuggestMeetingHandler    *assistantQueries.SuggestMeetingHandler
	SuggestFocusHandler      *assistantQueries.SuggestFocusHandler
	FindFreeSlotsHandler     *assistantQueries.FindFreeSlotsHandler
	DeriveSuggestionsHandler *assistantQueries.DeriveSuggestionsHandler

	Importer *ics.Importer
}

// NewContainer builds the dependency container: validated settings, the
// in-memory event store (seeded from the configured calendar file, when any),
// and all command/query handlers.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	settings, err := SettingsFromConfig(cfg.Suggestions)
	if err != nil {
		return nil, err
	}

	eventRepo := memory.NewEventRepository()
	importer := ics.NewImporter(settings, logger)

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Settings: settings,

		EventRepo: eventRepo,

		CreateEventHandler: calendarCommands.NewCreateEventHandler(eventRepo),
		UpdateEventHandler: calendarCommands.NewUpdateEventHandler(eventRepo),
		DeleteEventHandler: calendarCommands.NewDeleteEventHandler(eventRepo),
		QuickAddHandler:    calendarCommands.NewQuickAddHandler(eventRepo),

		ListEventsHandler: calendarQueries.NewListEventsHandler(eventRepo),

		SuggestMeetingHandler:    assistantQueries.NewSuggestMeetingHandler(eventRepo),
		SuggestFocusHandler:      assistantQueries.NewSuggestFocusHandler(eventRepo),
		FindFreeSlotsHandler:     assistantQueries.NewFindFreeSlotsHandler(eventRepo),
		DeriveSuggestionsHandler: assistantQueries.NewDeriveSuggestionsHandler(eventRepo),

		Importer: importer,
	}

	if cfg.CalendarFile != "" {
		if _, err := c.ImportCalendar(ctx, cfg.CalendarFile); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ImportCalendar loads an .ics file into the event store and reports how
// many events were imported.
func (c *Container) ImportCalendar(ctx context.Context, path string) (int, error) {
	events, err := c.Importer.ImportFile(path)
	if err != nil {
		return 0, err
	}
	for _, event := range events {
		if err := c.EventRepo.Save(ctx, event); err != nil {
			return 0, err
		}
	}
	return len(events), nil
}

// SeedDemoEvents fills the event store with generated demo events.
func (c *Container) SeedDemoEvents(ctx context.Context, count int, now time.Time) error {
	rng := rand.New(rand.NewSource(now.UnixNano()))
	for _, event := range calendarServices.GenerateDemoEvents(count, now, rng) {
		if err := c.EventRepo.Save(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// SettingsFromConfig converts the raw suggestion block into a validated
// settings record.
func SettingsFromConfig(raw config.SuggestionConfig) (assistantDomain.Settings, error) {
	custom := make([]assistantDomain.ClockRange, 0, len(raw.CustomFocusTimes))
	for _, r := range raw.CustomFocusTimes {
		custom = append(custom, assistantDomain.ClockRange{Start: r.Start, End: r.End})
	}
	if len(custom) == 0 {
		custom = nil
	}

	settings := assistantDomain.Settings{
		EnableFocusTime:          raw.EnableFocusTime,
		EnableMeetingSuggestions: raw.EnableMeetingSuggestions,
		EnablePriorityAssignment: raw.EnablePriorityAssignment,
		WorkingHours: assistantDomain.WorkingHours{
			Start: raw.WorkingHoursStart,
			End:   raw.WorkingHoursEnd,
		},
		PreferredMeetingDuration: raw.PreferredMeetingDuration,
		FocusTimePreference:      assistantDomain.FocusPreference(raw.FocusTimePreference),
		CustomFocusTimes:         custom,
	}

	if err := settings.Validate(); err != nil {
		return assistantDomain.Settings{}, fmt.Errorf("invalid suggestion settings: %w", err)
	}
	return settings, nil
}
