package ics_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	assistantDomain "github.com/felixgeelhaar/luna/internal/assistant/domain"
	"github.com/felixgeelhaar/luna/internal/calendar/domain"
	"github.com/felixgeelhaar/luna/internal/calendar/infrastructure/ics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calendar.ics")
	content := strings.Join(lines, "\r\n") + "\r\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestImporter_ImportFile(t *testing.T) {
	path := writeFixture(t,
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//test//EN",
		"BEGIN:VEVENT",
		"UID:event-1",
		"SUMMARY:Team sync",
		"DESCRIPTION:Weekly status round",
		"LOCATION:Room 4",
		"DTSTART:20260302T100000Z",
		"DTEND:20260302T103000Z",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:event-2",
		"SUMMARY:Urgent incident review",
		"DTSTART:20260302T140000Z",
		"END:VEVENT",
		"END:VCALENDAR",
	)

	importer := ics.NewImporter(assistantDomain.DefaultSettings(), discardLogger())
	events, err := importer.ImportFile(path)

	require.NoError(t, err)
	require.Len(t, events, 2)

	sync := events[0]
	assert.Equal(t, "Team sync", sync.Title())
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), sync.Start())
	assert.Equal(t, 30*time.Minute, sync.Duration())
	assert.Equal(t, "Weekly status round", sync.Description())
	assert.Equal(t, "Room 4", sync.Location())
	assert.Equal(t, domain.PriorityMedium, sync.Priority())

	incident := events[1]
	assert.Equal(t, domain.PriorityHigh, incident.Priority())
	// No DTEND falls back to a one-hour event.
	assert.Equal(t, time.Hour, incident.Duration())
}

func TestImporter_PriorityAssignmentDisabled(t *testing.T) {
	path := writeFixture(t,
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//test//EN",
		"BEGIN:VEVENT",
		"UID:event-1",
		"SUMMARY:Urgent incident review",
		"DTSTART:20260302T140000Z",
		"DTEND:20260302T150000Z",
		"END:VEVENT",
		"END:VCALENDAR",
	)

	settings := assistantDomain.DefaultSettings()
	settings.EnablePriorityAssignment = false
	importer := ics.NewImporter(settings, discardLogger())

	events, err := importer.ImportFile(path)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.PriorityMedium, events[0].Priority())
}

func TestImporter_SkipsBrokenEvents(t *testing.T) {
	path := writeFixture(t,
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//test//EN",
		"BEGIN:VEVENT",
		"UID:broken",
		"SUMMARY:No start time",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:ok",
		"SUMMARY:Team sync",
		"DTSTART:20260302T100000Z",
		"DTEND:20260302T103000Z",
		"END:VEVENT",
		"END:VCALENDAR",
	)

	importer := ics.NewImporter(assistantDomain.DefaultSettings(), discardLogger())
	events, err := importer.ImportFile(path)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Team sync", events[0].Title())
}

func TestImporter_MissingFile(t *testing.T) {
	importer := ics.NewImporter(assistantDomain.DefaultSettings(), discardLogger())

	_, err := importer.ImportFile(filepath.Join(t.TempDir(), "nope.ics"))

	assert.Error(t, err)
}
