package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventflow/internal/models"
)

func TestEventRepository_Create_AssignsFirstID(t *testing.T) {
	repo := NewEventRepository(filepath.Join(t.TempDir(), eventsFile))

	event := models.Event{
		Title:       "T",
		Description: "D",
		Image:       "I",
		Date:        "2024-01-01",
		Time:        "10:00",
	}
	require.NoError(t, repo.Create(context.Background(), &event))
	assert.Equal(t, int64(1), event.EventID)

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(1), events[0].EventID)
	assert.Equal(t, "T", events[0].Title)
}

func TestEventRepository_Create_IDsAreMonotonic(t *testing.T) {
	repo := NewEventRepository(filepath.Join(t.TempDir(), eventsFile))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		event := models.Event{Title: "T", Description: "D", Image: "I", Date: "d", Time: "t"}
		require.NoError(t, repo.Create(ctx, &event))
		assert.Equal(t, int64(i+1), event.EventID)
	}
}

func TestEventRepository_List_MissingFile(t *testing.T) {
	repo := NewEventRepository(filepath.Join(t.TempDir(), eventsFile))

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventRepository_PreservesExtraFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), eventsFile)
	repo := NewEventRepository(path)
	ctx := context.Background()

	event := models.Event{
		Title: "T", Description: "D", Image: "I", Date: "d", Time: "t",
		Extra: map[string]any{"amountStandard": float64(25)},
	}
	require.NoError(t, repo.Create(ctx, &event))

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, float64(25), events[0].Extra["amountStandard"])

	// The extra field is a real JSON member of the stored record
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "amountStandard")
}
