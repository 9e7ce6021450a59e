// Package memory implements storage.EventRepository in process memory.
// Useful for testing and development; nothing survives a restart.
package memory

import (
	"context"
	"sync"

	v1 "github.com/unclelab/sportevents/internal/api/v1"
	"github.com/unclelab/sportevents/internal/storage"
)

// Repository is an in-memory implementation of storage.EventRepository.
// Events are kept in insertion order, matching the adapter's _id ordering.
type Repository struct {
	mu     sync.RWMutex
	events []*v1.Event
}

// NewRepository creates an empty in-memory event repository.
func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) List(ctx context.Context) ([]*v1.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*v1.Event, len(r.events))
	for i, e := range r.events {
		copy := *e
		out[i] = &copy
	}
	return out, nil
}

func (r *Repository) Get(ctx context.Context, eventID string) (*v1.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.events {
		if e.EventID == eventID {
			copy := *e
			return &copy, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *Repository) Insert(ctx context.Context, event *v1.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.events {
		if e.EventID == event.EventID {
			return storage.ErrDuplicateID
		}
	}

	copy := *event
	r.events = append(r.events, &copy)
	return nil
}

func (r *Repository) Update(ctx context.Context, eventID string, patch map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.events {
		if e.EventID != eventID {
			continue
		}
		applyPatch(e, patch)
		return nil
	}
	return storage.ErrNotFound
}

func (r *Repository) Delete(ctx context.Context, eventID string) (*v1.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.events {
		if e.EventID != eventID {
			continue
		}
		r.events = append(r.events[:i], r.events[i+1:]...)
		return e, nil
	}
	return nil, storage.ErrNotFound
}

func (r *Repository) LastEventID(ctx context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.events) == 0 {
		return "", nil
	}
	return r.events[len(r.events)-1].EventID, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return nil
}

// applyPatch mirrors the document-store $set: only keys present in patch are
// written. Keys follow the bson field names of v1.Event.
func applyPatch(e *v1.Event, patch map[string]interface{}) {
	for key, value := range patch {
		switch key {
		case "name":
			if v, ok := value.(string); ok {
				e.Name = v
			}
		case "sport":
			if v, ok := value.(string); ok {
				e.Sport = v
			}
		case "timestamp":
			if v, ok := value.(string); ok {
				e.Timestamp = v
			}
		case "location":
			if v, ok := value.(string); ok {
				e.Location = v
			}
		case "image":
			if v, ok := value.(string); ok {
				e.Image = v
			}
		case "price":
			if v, ok := value.(float64); ok {
				e.Price = v
			}
		case "totalNumOfPlayers":
			if v, ok := value.(int); ok {
				e.TotalNumOfPlayers = v
			}
		}
	}
}
