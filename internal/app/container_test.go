package app_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/felixgeelhaar/luna/internal/app"
	assistantDomain "github.com/felixgeelhaar/luna/internal/assistant/domain"
	"github.com/felixgeelhaar/luna/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewContainer(t *testing.T) {
	cfg := config.Default()

	container, err := app.NewContainer(context.Background(), cfg, testLogger())

	require.NoError(t, err)
	assert.NotNil(t, container.EventRepo)
	assert.NotNil(t, container.QuickAddHandler)
	assert.NotNil(t, container.DeriveSuggestionsHandler)
	assert.Equal(t, assistantDomain.DefaultSettings(), container.Settings)
}

func TestNewContainer_InvalidSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Suggestions.WorkingHoursStart = "9am"

	_, err := app.NewContainer(context.Background(), cfg, testLogger())

	assert.ErrorIs(t, err, assistantDomain.ErrInvalidClockTime)
}

func TestSeedDemoEvents(t *testing.T) {
	container, err := app.NewContainer(context.Background(), config.Default(), testLogger())
	require.NoError(t, err)

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	require.NoError(t, container.SeedDemoEvents(context.Background(), 5, now))

	events, err := container.EventRepo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 5)
}

func TestSettingsFromConfig(t *testing.T) {
	raw := config.SuggestionConfig{
		EnableFocusTime:          true,
		EnableMeetingSuggestions: true,
		EnablePriorityAssignment: false,
		WorkingHoursStart:        "08:30",
		WorkingHoursEnd:          "16:30",
		PreferredMeetingDuration: 45,
		FocusTimePreference:      "custom",
		CustomFocusTimes: []config.ClockRange{
			{Start: "09:00", End: "10:30"},
		},
	}

	settings, err := app.SettingsFromConfig(raw)

	require.NoError(t, err)
	assert.False(t, settings.EnablePriorityAssignment)
	assert.Equal(t, "08:30", settings.WorkingHours.Start)
	assert.Equal(t, assistantDomain.FocusPreferenceCustom, settings.FocusTimePreference)
	require.Len(t, settings.CustomFocusTimes, 1)
	assert.Equal(t, "09:00", settings.CustomFocusTimes[0].Start)
}
