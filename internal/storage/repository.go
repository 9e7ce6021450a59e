package storage

import (
	"context"
	"errors"

	v1 "github.com/unclelab/sportevents/internal/api/v1"
)

var (
	// ErrNotFound is returned when no event with the requested eventId exists.
	ErrNotFound = errors.New("event not found")

	// ErrDuplicateID is returned when an insert collides with an existing
	// eventId (the unique index rejected it).
	ErrDuplicateID = errors.New("eventId already exists")
)

// EventRepository is the durable home of event documents. It is the sole
// owner of stored state; callers never cache documents across requests.
type EventRepository interface {
	// List returns every stored event in insertion order.
	List(ctx context.Context) ([]*v1.Event, error)

	// Get returns the event with the given eventId, or ErrNotFound.
	Get(ctx context.Context, eventID string) (*v1.Event, error)

	// Insert persists a new event document.
	Insert(ctx context.Context, event *v1.Event) error

	// Update applies patch as a single atomic set operation against the
	// event with the given eventId. Returns ErrNotFound if absent.
	Update(ctx context.Context, eventID string, patch map[string]interface{}) error

	// Delete removes the event with the given eventId and returns the
	// removed document, or ErrNotFound.
	Delete(ctx context.Context, eventID string) (*v1.Event, error)

	// LastEventID returns the eventId of the most recently inserted
	// document, used by the allocator as the current maximum. Returns
	// ("", nil) when the collection is empty.
	LastEventID(ctx context.Context) (string, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
