package commands_test

import (
	"context"
	"testing"
	"time"

	assistantDomain "github.com/felixgeelhaar/luna/internal/assistant/domain"
	"github.com/felixgeelhaar/luna/internal/calendar/application/commands"
	"github.com/felixgeelhaar/luna/internal/calendar/domain"
	"github.com/felixgeelhaar/luna/internal/calendar/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickAddHandler(t *testing.T) {
	repo := memory.NewEventRepository()
	handler := commands.NewQuickAddHandler(repo)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 45, 0, 0, time.UTC)

	result, err := handler.Handle(ctx, commands.QuickAddCommand{
		Text:     "Call with Bob tomorrow at 3pm",
		Now:      now,
		Settings: assistantDomain.DefaultSettings(),
	})

	require.NoError(t, err)
	assert.Equal(t, "call with bob", result.Draft.Title)

	event, err := repo.FindByID(ctx, result.EventID)
	require.NoError(t, err)
	assert.Equal(t, "call with bob", event.Title())
	assert.Equal(t, time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC), event.Start())
	assert.Equal(t, time.Date(2026, 3, 3, 16, 0, 0, 0, time.UTC), event.End())
	assert.False(t, event.IsAllDay())
}

func TestQuickAddHandler_AllDay(t *testing.T) {
	repo := memory.NewEventRepository()
	handler := commands.NewQuickAddHandler(repo)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 45, 0, 0, time.UTC)

	result, err := handler.Handle(ctx, commands.QuickAddCommand{
		Text:     "Conference tomorrow all day",
		Now:      now,
		Settings: assistantDomain.DefaultSettings(),
	})

	require.NoError(t, err)
	event, err := repo.FindByID(ctx, result.EventID)
	require.NoError(t, err)
	assert.True(t, event.IsAllDay())
}

func TestQuickAddHandler_VagueTextStillCreatesEvent(t *testing.T) {
	repo := memory.NewEventRepository()
	handler := commands.NewQuickAddHandler(repo)
	now := time.Date(2026, 3, 2, 10, 45, 0, 0, time.UTC)

	result, err := handler.Handle(context.Background(), commands.QuickAddCommand{
		Text:     "something sometime",
		Now:      now,
		Settings: assistantDomain.DefaultSettings(),
	})

	// Parsing never fails; the vague text becomes a same-time draft.
	require.NoError(t, err)
	event, err := repo.FindByID(context.Background(), result.EventID)
	require.NoError(t, err)
	assert.Equal(t, "something sometime", event.Title())
	// Start equals end in the draft, so the event rolls to the next day.
	assert.Equal(t, now, event.Start())
	assert.Equal(t, now.AddDate(0, 0, 1), event.End())
	assert.Equal(t, domain.PriorityMedium, event.Priority())
}
