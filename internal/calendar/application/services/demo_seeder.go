// Package services contains calendar application services that are neither
// commands nor queries.
package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/felixgeelhaar/luna/internal/calendar/domain"
)

var demoTitles = []string{
	"Team Meeting",
	"Client Call",
	"Project Review",
	"Sprint Planning",
	"Lunch Break",
	"Code Review",
	"Design Session",
	"One-on-One",
	"Product Demo",
	"Documentation",
}

var demoTypes = []domain.EventType{
	domain.EventTypeEvent,
	domain.EventTypeFocus,
	domain.EventTypeSuggestion,
}

var demoPriorities = []domain.Priority{
	domain.PriorityLow,
	domain.PriorityMedium,
	domain.PriorityHigh,
}

var demoParticipants = []string{"Jane Doe", "John Smith"}

// GenerateDemoEvents produces count pseudo-random events within seven days of
// startDate: quarter-hour starts between 09:00 and 16:45 and durations of 30
// to 120 minutes. The rng is injected so tests can seed it.
func GenerateDemoEvents(count int, startDate time.Time, rng *rand.Rand) []*domain.Event {
	events := make([]*domain.Event, 0, count)

	for i := 0; i < count; i++ {
		dayOffset := rng.Intn(14) - 7
		day := startDate.AddDate(0, 0, dayOffset)

		hour := 9 + rng.Intn(8)
		minute := rng.Intn(4) * 15
		start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
		end := start.Add(time.Duration(rng.Intn(4)+1) * 30 * time.Minute)

		title := demoTitles[rng.Intn(len(demoTitles))]
		event, err := domain.NewEvent(
			title,
			start,
			end,
			demoPriorities[rng.Intn(len(demoPriorities))],
			demoTypes[rng.Intn(len(demoTypes))],
		)
		if err != nil {
			continue
		}
		event.SetDescription(fmt.Sprintf("Description for %s", title))
		event.SetParticipants(demoParticipants)

		events = append(events, event)
	}

	return events
}
