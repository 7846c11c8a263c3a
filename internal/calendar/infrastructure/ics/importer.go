// Package ics imports events from local iCalendar files. The import is
// read-only input for the assistant; nothing is ever written back.
package ics

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/felixgeelhaar/luna/internal/assistant/application/services"
	assistantDomain "github.com/felixgeelhaar/luna/internal/assistant/domain"
	"github.com/felixgeelhaar/luna/internal/calendar/domain"
)

// Importer parses iCalendar payloads into calendar events.
type Importer struct {
	settings assistantDomain.Settings
	logger   *slog.Logger
}

// NewImporter creates an Importer. When priority assignment is enabled in the
// settings, imported events get their priority inferred from the VEVENT
// summary and description.
func NewImporter(settings assistantDomain.Settings, logger *slog.Logger) *Importer {
	return &Importer{settings: settings, logger: logger}
}

// ImportFile reads an .ics file and converts its events.
func (im *Importer) ImportFile(path string) ([]*domain.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer f.Close()

	cal, err := ical.ParseCalendar(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar file: %w", err)
	}

	events := make([]*domain.Event, 0)
	for _, ve := range cal.Events() {
		event, err := im.convertVEvent(ve)
		if err != nil {
			// Skip the broken VEVENT but keep importing the rest.
			im.logger.Warn("skipping unparseable event", "path", path, "error", err)
			continue
		}
		events = append(events, event)
	}

	im.logger.Info("calendar imported", "path", path, "event_count", len(events))
	return events, nil
}

// convertVEvent maps a single VEVENT onto a calendar event. Recurring events
// are taken as their base instance only; there is no recurrence expansion.
func (im *Importer) convertVEvent(ve *ical.VEvent) (*domain.Event, error) {
	title := ""
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		title = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return nil, fmt.Errorf("missing or invalid DTSTART: %w", err)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		// DTEND is optional; fall back to a one-hour event.
		end = start.Add(time.Hour)
	}

	description := ""
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		description = p.Value
	}

	priority := domain.PriorityMedium
	if im.settings.EnablePriorityAssignment {
		priority = services.PredictEventPriority(im.settings, title, description, nil)
	}

	event, err := domain.NewEvent(title, start, end, priority, domain.EventTypeEvent)
	if err != nil {
		return nil, err
	}

	if description != "" {
		event.SetDescription(description)
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil && p.Value != "" {
		event.SetLocation(p.Value)
	}
	if isAllDay(ve) {
		event.SetAllDay(true)
	}

	return event, nil
}

// isAllDay detects all-day events from the DTSTART value format: either an
// explicit VALUE=DATE parameter or a date-only value without a time part.
func isAllDay(ve *ical.VEvent) bool {
	prop := ve.GetProperty(ical.ComponentPropertyDtStart)
	if prop == nil {
		return false
	}
	if params := prop.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(prop.Value, "T")
}
