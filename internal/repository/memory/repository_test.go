package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academicspaces/roomboard/internal/models"
	"github.com/academicspaces/roomboard/internal/repository/memory"
)

func TestLoadBeforeSaveReturnsNil(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	rooms, err := repo.LoadRooms(ctx)
	require.NoError(t, err)
	assert.Nil(t, rooms)

	entries, err := repo.LoadEntries(ctx)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestSaveAndLoadRooms(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	rooms := models.DefaultRooms()
	require.NoError(t, repo.SaveRooms(ctx, rooms))

	loaded, err := repo.LoadRooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, rooms, loaded)

	// Mutating the loaded slice must not affect the stored collection
	loaded[0].Capacity = 999
	again, err := repo.LoadRooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, rooms[0].Capacity, again[0].Capacity)
}

func TestSaveReplacesWholeCollection(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveEntries(ctx, models.DefaultEntries()))

	replacement := []models.ScheduleEntry{{
		ID: "only", RoomID: "001", Day: models.Monday,
		StartTime: "07:30", EndTime: "09:10",
		CourseCode: "FIS0101", UsageType: models.UsageClassSession,
	}}
	require.NoError(t, repo.SaveEntries(ctx, replacement))

	loaded, err := repo.LoadEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, replacement, loaded)
}

func TestSaveEmptyCollectionIsNotNil(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	// An explicitly saved empty collection must stay distinguishable from a
	// collection that was never saved
	require.NoError(t, repo.SaveEntries(ctx, []models.ScheduleEntry{}))

	loaded, err := repo.LoadEntries(ctx)
	require.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}
