package domain_test

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/luna/internal/calendar/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	event, err := domain.NewEvent("Planning", start, end, domain.PriorityHigh, domain.EventTypeEvent)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID())
	assert.Equal(t, "Planning", event.Title())
	assert.Equal(t, start, event.Start())
	assert.Equal(t, end, event.End())
	assert.Equal(t, domain.PriorityHigh, event.Priority())
	assert.Equal(t, domain.EventTypeEvent, event.Type())
	assert.Equal(t, time.Hour, event.Duration())
}

func TestNewEvent_EmptyTitle(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	_, err := domain.NewEvent("   ", start, start.Add(time.Hour), domain.PriorityMedium, domain.EventTypeEvent)

	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestNewEvent_EndBeforeStartRollsToNextDay(t *testing.T) {
	start := time.Date(2026, 3, 2, 22, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)

	event, err := domain.NewEvent("Night shift", start, end, domain.PriorityMedium, domain.EventTypeEvent)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC), event.End())
}

func TestNewEvent_EndEqualsStartRollsToNextDay(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	event, err := domain.NewEvent("Marker", start, start, domain.PriorityMedium, domain.EventTypeEvent)

	require.NoError(t, err)
	assert.Equal(t, start.AddDate(0, 0, 1), event.End())
}

func TestEvent_Reschedule(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	event, err := domain.NewEvent("Planning", start, start.Add(time.Hour), domain.PriorityMedium, domain.EventTypeEvent)
	require.NoError(t, err)

	newStart := start.Add(2 * time.Hour)
	event.Reschedule(newStart, newStart)

	assert.Equal(t, newStart, event.Start())
	// The roll-over rule applies on reschedule too.
	assert.Equal(t, newStart.AddDate(0, 0, 1), event.End())
}

func TestEvent_Rename(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	event, err := domain.NewEvent("Planning", start, start.Add(time.Hour), domain.PriorityMedium, domain.EventTypeEvent)
	require.NoError(t, err)

	require.NoError(t, event.Rename("Sprint planning"))
	assert.Equal(t, "Sprint planning", event.Title())

	assert.ErrorIs(t, event.Rename(" "), domain.ErrEmptyTitle)
	assert.Equal(t, "Sprint planning", event.Title())
}

func TestEvent_Overlaps(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	event, err := domain.NewEvent("Planning", start, start.Add(time.Hour), domain.PriorityMedium, domain.EventTypeEvent)
	require.NoError(t, err)

	assert.True(t, event.Overlaps(start.Add(30*time.Minute), start.Add(90*time.Minute)))
	assert.True(t, event.Overlaps(start.Add(-time.Hour), start.Add(2*time.Hour)))
	// Touching intervals do not overlap.
	assert.False(t, event.Overlaps(start.Add(time.Hour), start.Add(2*time.Hour)))
	assert.False(t, event.Overlaps(start.Add(-time.Hour), start))
}

func TestSameDay(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	morning := time.Date(2026, 3, 2, 0, 30, 0, 0, berlin)
	night := time.Date(2026, 3, 2, 23, 30, 0, 0, berlin)
	assert.True(t, domain.SameDay(morning, night))

	// 23:30 UTC on March 1st is past midnight in Berlin.
	utcNight := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)
	assert.True(t, domain.SameDay(morning, utcNight))
	assert.False(t, domain.SameDay(utcNight, morning))
}

func TestEventsForDay(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	late, err := domain.NewEvent("Late", day.Add(15*time.Hour), day.Add(16*time.Hour), domain.PriorityMedium, domain.EventTypeEvent)
	require.NoError(t, err)
	early, err := domain.NewEvent("Early", day.Add(9*time.Hour), day.Add(10*time.Hour), domain.PriorityMedium, domain.EventTypeEvent)
	require.NoError(t, err)
	other, err := domain.NewEvent("Other day", day.AddDate(0, 0, 1), day.AddDate(0, 0, 1).Add(time.Hour), domain.PriorityMedium, domain.EventTypeEvent)
	require.NoError(t, err)

	events := []*domain.Event{late, other, early}
	got := domain.EventsForDay(events, day)

	require.Len(t, got, 2)
	assert.Equal(t, "Early", got[0].Title())
	assert.Equal(t, "Late", got[1].Title())
	// The input order is untouched.
	assert.Equal(t, "Late", events[0].Title())
}

func TestEventType_IsValid(t *testing.T) {
	assert.True(t, domain.EventTypeEvent.IsValid())
	assert.True(t, domain.EventTypeFocus.IsValid())
	assert.True(t, domain.EventTypeSuggestion.IsValid())
	assert.False(t, domain.EventType("task").IsValid())
}
