package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	v1 "github.com/unclelab/sportevents/internal/api/v1"
	"github.com/unclelab/sportevents/internal/storage"
)

func event(id string) *v1.Event {
	return &v1.Event{
		EventID:           id,
		Name:              "Friday Smash",
		Host:              "Uncle Joe",
		Sport:             "Volleyball",
		Timestamp:         "2024-05-01|14:00-16:00",
		Location:          "Riverside Court",
		Price:             5,
		Players:           []string{"alice"},
		TotalNumOfPlayers: 12,
	}
}

func TestInsertAndGet(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, event("0")))

	got, err := repo.Get(ctx, "0")
	require.NoError(t, err)
	require.Equal(t, "Friday Smash", got.Name)

	_, err = repo.Get(ctx, "1")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestInsert_DuplicateID(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, event("0")))
	require.ErrorIs(t, repo.Insert(ctx, event("0")), storage.ErrDuplicateID)
}

func TestGet_ReturnsCopy(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, event("0")))

	got, err := repo.Get(ctx, "0")
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := repo.Get(ctx, "0")
	require.NoError(t, err)
	require.Equal(t, "Friday Smash", again.Name)
}

func TestUpdate_AppliesPatch(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, event("0")))

	err := repo.Update(ctx, "0", map[string]interface{}{
		"price":             10.0,
		"location":          "New Court",
		"totalNumOfPlayers": 8,
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "0")
	require.NoError(t, err)
	require.Equal(t, 10.0, got.Price)
	require.Equal(t, "New Court", got.Location)
	require.Equal(t, 8, got.TotalNumOfPlayers)

	// Untouched fields survive.
	require.Equal(t, "Friday Smash", got.Name)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := NewRepository()
	err := repo.Update(context.Background(), "0", map[string]interface{}{"price": 1.0})
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, event("0")))

	deleted, err := repo.Delete(ctx, "0")
	require.NoError(t, err)
	require.Equal(t, "0", deleted.EventID)

	_, err = repo.Delete(ctx, "0")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLastEventID_TracksInsertionOrder(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	last, err := repo.LastEventID(ctx)
	require.NoError(t, err)
	require.Empty(t, last)

	require.NoError(t, repo.Insert(ctx, event("0")))
	require.NoError(t, repo.Insert(ctx, event("1")))

	last, err = repo.LastEventID(ctx)
	require.NoError(t, err)
	require.Equal(t, "1", last)

	// Deleting the newest document exposes the previous one.
	_, err = repo.Delete(ctx, "1")
	require.NoError(t, err)

	last, err = repo.LastEventID(ctx)
	require.NoError(t, err)
	require.Equal(t, "0", last)
}

func TestList_InsertionOrder(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, event("5")))
	require.NoError(t, repo.Insert(ctx, event("2")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "5", list[0].EventID)
	require.Equal(t, "2", list[1].EventID)
}
