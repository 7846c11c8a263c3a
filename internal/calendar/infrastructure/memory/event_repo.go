// Package memory provides the in-memory event repository. Events live only
// for the lifetime of the process; there is no durable storage by design.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/felixgeelhaar/luna/internal/calendar/domain"
	"github.com/google/uuid"
)

// EventRepository is a map-backed implementation of domain.EventRepository.
type EventRepository struct {
	mu     sync.RWMutex
	events map[uuid.UUID]*domain.Event
}

// NewEventRepository creates an empty in-memory repository.
func NewEventRepository() *EventRepository {
	return &EventRepository{
		events: make(map[uuid.UUID]*domain.Event),
	}
}

// Save inserts or replaces an event by id.
func (r *EventRepository) Save(_ context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID()] = event
	return nil
}

// FindByID returns the event with the given id.
func (r *EventRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	event, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

// FindAll returns all events sorted ascending by start time.
func (r *EventRepository) FindAll(_ context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*domain.Event, 0, len(r.events))
	for _, event := range r.events {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].Start().Equal(events[j].Start()) {
			return events[i].ID().String() < events[j].ID().String()
		}
		return events[i].Start().Before(events[j].Start())
	})
	return events, nil
}

// Delete removes the event with the given id.
func (r *EventRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}
