package domain

import (
	"context"

	"github.com/google/uuid"
)

// EventRepository defines the persistence contract for calendar events.
// Luna's only implementation is in-memory; events live for the process
// lifetime and are never written to durable storage.
type EventRepository interface {
	Save(ctx context.Context, event *Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*Event, error)
	FindAll(ctx context.Context) ([]*Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
