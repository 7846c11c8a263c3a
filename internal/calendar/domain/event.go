// Package domain contains the calendar bounded context: events, time blocks,
// and the value objects they share.
package domain

import (
	"errors"
	"sort"
	"strings"
	"time"

	sharedDomain "github.com/felixgeelhaar/luna/internal/shared/domain"
)

var (
	ErrEmptyTitle    = errors.New("event title cannot be empty")
	ErrEventNotFound = errors.New("event not found")
)

// EventType distinguishes user-created events from assistant-proposed ones.
type EventType string

const (
	EventTypeEvent      EventType = "event"
	EventTypeFocus      EventType = "focus"
	EventTypeSuggestion EventType = "suggestion"
)

// IsValid checks if the event type is supported.
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeEvent, EventTypeFocus, EventTypeSuggestion:
		return true
	default:
		return false
	}
}

// Event represents a calendar entry. Events are replaced wholesale on edit;
// the setters exist for the update path and keep the aggregate consistent.
type Event struct {
	sharedDomain.BaseEntity
	title        string
	start        time.Time
	end          time.Time
	priority     Priority
	eventType    EventType
	description  string
	location     string
	participants []string
	isAllDay     bool
	color        string
}

// NewEvent creates a new calendar event. An end at or before the start rolls
// the end to the next day, matching how the entry form interprets such input.
func NewEvent(title string, start, end time.Time, priority Priority, eventType EventType) (*Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	return &Event{
		BaseEntity: sharedDomain.NewBaseEntity(),
		title:      title,
		start:      start,
		end:        end,
		priority:   priority,
		eventType:  eventType,
	}, nil
}

// Getters
func (e *Event) Title() string          { return e.title }
func (e *Event) Start() time.Time       { return e.start }
func (e *Event) End() time.Time         { return e.end }
func (e *Event) Priority() Priority     { return e.priority }
func (e *Event) Type() EventType        { return e.eventType }
func (e *Event) Description() string    { return e.description }
func (e *Event) Location() string       { return e.location }
func (e *Event) Participants() []string { return e.participants }
func (e *Event) IsAllDay() bool         { return e.isAllDay }
func (e *Event) Color() string          { return e.color }

// Duration returns the event duration.
func (e *Event) Duration() time.Duration {
	return e.end.Sub(e.start)
}

// SetDescription sets the free-form description.
func (e *Event) SetDescription(description string) {
	e.description = description
	e.Touch()
}

// SetLocation sets the event location.
func (e *Event) SetLocation(location string) {
	e.location = location
	e.Touch()
}

// SetParticipants replaces the ordered participant list.
func (e *Event) SetParticipants(participants []string) {
	e.participants = append([]string(nil), participants...)
	e.Touch()
}

// SetAllDay marks the event as spanning the whole day.
func (e *Event) SetAllDay(allDay bool) {
	e.isAllDay = allDay
	e.Touch()
}

// SetColor sets the display color.
func (e *Event) SetColor(color string) {
	e.color = color
	e.Touch()
}

// Reschedule moves the event to a new time range, applying the same
// roll-to-next-day rule as the constructor.
func (e *Event) Reschedule(start, end time.Time) {
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	e.start = start
	e.end = end
	e.Touch()
}

// Rename changes the event title.
func (e *Event) Rename(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	e.title = title
	e.Touch()
	return nil
}

// SetPriority changes the event priority.
func (e *Event) SetPriority(priority Priority) {
	e.priority = priority
	e.Touch()
}

// Overlaps reports whether the event's interval strictly overlaps [start, end).
func (e *Event) Overlaps(start, end time.Time) bool {
	return e.start.Before(end) && e.end.After(start)
}

// SameDay reports whether two instants fall on the same calendar date in t1's
// location.
func SameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.In(t1.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// EventsForDay returns the events starting on date's calendar day, sorted
// ascending by start time. The input is never mutated.
func EventsForDay(events []*Event, date time.Time) []*Event {
	day := make([]*Event, 0)
	for _, event := range events {
		if SameDay(event.Start(), date) {
			day = append(day, event)
		}
	}
	sort.Slice(day, func(i, j int) bool {
		return day[i].Start().Before(day[j].Start())
	})
	return day
}
