package events

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	v1 "github.com/unclelab/sportevents/internal/api/v1"
	"github.com/unclelab/sportevents/internal/storage"
	"github.com/unclelab/sportevents/internal/timestamp"
)

// Service implements the event operations behind the HTTP layer.
type Service struct {
	repo      storage.EventRepository
	validator *Validator

	// createMu serializes allocate+insert so two creates in this process
	// cannot read the same maximum id. Creates racing from separate
	// processes remain unguarded; the unique index turns that collision
	// into an insert error rather than a duplicate document.
	createMu sync.Mutex

	maxBodySizeBytes int
}

func NewService(repo storage.EventRepository, validator *Validator, maxBodySizeMB int) *Service {
	if repo == nil {
		panic("events: repo must not be nil")
	}
	if validator == nil {
		panic("events: validator must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		repo:             repo,
		validator:        validator,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
	}
}

// ListEvents returns every stored event shaped for clients, ordered
// ascending by decoded timestamp regardless of insertion order.
func (s *Service) ListEvents(ctx context.Context) ([]*v1.EventResponse, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	type keyed struct {
		start time.Time
		resp  *v1.EventResponse
	}

	shaped := make([]keyed, 0, len(stored))
	for _, e := range stored {
		p, err := timestamp.Parse(e.Timestamp)
		if err != nil {
			// A document that predates timestamp validation or was edited
			// out of band. Skip it rather than failing the whole listing.
			slog.Warn("Skipping event with undecodable timestamp",
				"event_id", e.EventID, "timestamp", e.Timestamp, "error", err)
			continue
		}
		resp, err := Shape(e)
		if err != nil {
			slog.Warn("Skipping unshapeable event", "event_id", e.EventID, "error", err)
			continue
		}
		shaped = append(shaped, keyed{start: p.Start, resp: resp})
	}

	sort.SliceStable(shaped, func(i, j int) bool {
		return shaped[i].start.Before(shaped[j].start)
	})

	out := make([]*v1.EventResponse, len(shaped))
	for i, k := range shaped {
		out[i] = k.resp
	}
	return out, nil
}

// GetEvent returns one shaped event, or storage.ErrNotFound.
func (s *Service) GetEvent(ctx context.Context, eventID string) (*v1.EventResponse, error) {
	e, err := s.repo.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return Shape(e)
}

// CreateEvent validates the request, allocates the next eventId and
// persists the document.
func (s *Service) CreateEvent(ctx context.Context, req *v1.CreateEventRequest) (*v1.EventResponse, error) {
	event, err := s.validator.ValidateCreate(req)
	if err != nil {
		return nil, err
	}

	s.createMu.Lock()
	defer s.createMu.Unlock()

	maxID, err := s.repo.LastEventID(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate eventId: %w", err)
	}
	event.EventID, err = NextEventID(maxID)
	if err != nil {
		return nil, fmt.Errorf("allocate eventId: %w", err)
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		return nil, err
	}

	slog.Info("Created event", "event_id", event.EventID, "sport", event.Sport, "host", event.Host)
	return Shape(event)
}

// UpdateEvent validates the partial-update body and applies it as one
// atomic patch. Returns the set of changes written.
func (s *Service) UpdateEvent(ctx context.Context, eventID string, body map[string]interface{}) (map[string]interface{}, error) {
	patch, err := s.validator.ValidateUpdate(body)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, eventID, patch); err != nil {
		return nil, err
	}

	slog.Info("Updated event", "event_id", eventID, "fields", len(patch))
	return patch, nil
}

// DeleteEvent removes an event and returns its shaped document.
func (s *Service) DeleteEvent(ctx context.Context, eventID string) (*v1.EventResponse, error) {
	e, err := s.repo.Delete(ctx, eventID)
	if err != nil {
		return nil, err
	}

	slog.Info("Deleted event", "event_id", eventID)
	return Shape(e)
}
