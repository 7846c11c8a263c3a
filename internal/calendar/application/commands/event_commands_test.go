package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/luna/internal/calendar/application/commands"
	"github.com/felixgeelhaar/luna/internal/calendar/domain"
	"github.com/felixgeelhaar/luna/internal/calendar/infrastructure/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	repo := memory.NewEventRepository()
	handler := commands.NewCreateEventHandler(repo)
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	result, err := handler.Handle(ctx, commands.CreateEventCommand{
		Title:        "Design review",
		Start:        start,
		End:          start.Add(time.Hour),
		Priority:     "high",
		Description:  "Review the new layout",
		Location:     "Room 4",
		Participants: []string{"Ann", "Bob"},
	})

	require.NoError(t, err)
	event, err := repo.FindByID(ctx, result.EventID)
	require.NoError(t, err)
	assert.Equal(t, "Design review", event.Title())
	assert.Equal(t, domain.PriorityHigh, event.Priority())
	assert.Equal(t, domain.EventTypeEvent, event.Type())
	assert.Equal(t, "Review the new layout", event.Description())
	assert.Equal(t, "Room 4", event.Location())
	assert.Equal(t, []string{"Ann", "Bob"}, event.Participants())
}

func TestCreateEventHandler_DefaultsToMediumPriority(t *testing.T) {
	repo := memory.NewEventRepository()
	handler := commands.NewCreateEventHandler(repo)
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	result, err := handler.Handle(ctx, commands.CreateEventCommand{
		Title: "Design review",
		Start: start,
		End:   start.Add(time.Hour),
	})

	require.NoError(t, err)
	event, err := repo.FindByID(ctx, result.EventID)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, event.Priority())
}

func TestCreateEventHandler_InvalidPriority(t *testing.T) {
	repo := memory.NewEventRepository()
	handler := commands.NewCreateEventHandler(repo)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	_, err := handler.Handle(context.Background(), commands.CreateEventCommand{
		Title:    "Design review",
		Start:    start,
		End:      start.Add(time.Hour),
		Priority: "blocker",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestCreateEventHandler_EmptyTitle(t *testing.T) {
	repo := memory.NewEventRepository()
	handler := commands.NewCreateEventHandler(repo)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	_, err := handler.Handle(context.Background(), commands.CreateEventCommand{
		Start: start,
		End:   start.Add(time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestUpdateEventHandler(t *testing.T) {
	repo := memory.NewEventRepository()
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	created, err := commands.NewCreateEventHandler(repo).Handle(ctx, commands.CreateEventCommand{
		Title: "Design review",
		Start: start,
		End:   start.Add(time.Hour),
	})
	require.NoError(t, err)

	handler := commands.NewUpdateEventHandler(repo)
	title := "Final design review"
	priority := "high"
	newStart := start.Add(2 * time.Hour)
	err = handler.Handle(ctx, commands.UpdateEventCommand{
		EventID:  created.EventID,
		Title:    &title,
		Priority: &priority,
		Start:    &newStart,
	})

	require.NoError(t, err)
	event, err := repo.FindByID(ctx, created.EventID)
	require.NoError(t, err)
	assert.Equal(t, "Final design review", event.Title())
	assert.Equal(t, domain.PriorityHigh, event.Priority())
	assert.Equal(t, newStart, event.Start())
	// The untouched end now precedes the new start and rolls to the next day.
	assert.Equal(t, start.Add(time.Hour).AddDate(0, 0, 1), event.End())
}

func TestUpdateEventHandler_NotFound(t *testing.T) {
	handler := commands.NewUpdateEventHandler(memory.NewEventRepository())

	err := handler.Handle(context.Background(), commands.UpdateEventCommand{EventID: uuid.New()})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestDeleteEventHandler(t *testing.T) {
	repo := memory.NewEventRepository()
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	created, err := commands.NewCreateEventHandler(repo).Handle(ctx, commands.CreateEventCommand{
		Title: "Design review",
		Start: start,
		End:   start.Add(time.Hour),
	})
	require.NoError(t, err)

	handler := commands.NewDeleteEventHandler(repo)
	require.NoError(t, handler.Handle(ctx, commands.DeleteEventCommand{EventID: created.EventID}))

	_, err = repo.FindByID(ctx, created.EventID)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
