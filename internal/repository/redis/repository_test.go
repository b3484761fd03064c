package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academicspaces/roomboard/internal/config"
	"github.com/academicspaces/roomboard/internal/models"
	"github.com/academicspaces/roomboard/internal/repository/redis"
)

func newTestRepository(t *testing.T) (*redis.Repository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	repo, err := redis.NewRepository(config.RedisConfig{
		Host:      mr.Host(),
		Port:      mr.Port(),
		KeyPrefix: "test:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo, mr
}

func TestNewRepositoryWithURI(t *testing.T) {
	mr := miniredis.RunT(t)

	repo, err := redis.NewRepository(config.RedisConfig{
		URI:       "redis://" + mr.Addr(),
		KeyPrefix: "test:",
	})
	require.NoError(t, err)
	defer repo.Close()

	require.NoError(t, repo.SaveRooms(context.Background(), models.DefaultRooms()))
}

func TestNewRepositoryFailsWhenUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := redis.NewRepository(config.RedisConfig{URI: "redis://" + addr})
	assert.Error(t, err)
}

func TestLoadBeforeSaveReturnsNil(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	rooms, err := repo.LoadRooms(ctx)
	require.NoError(t, err)
	assert.Nil(t, rooms)

	entries, err := repo.LoadEntries(ctx)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	rooms := models.DefaultRooms()
	entries := models.DefaultEntries()

	require.NoError(t, repo.SaveRooms(ctx, rooms))
	require.NoError(t, repo.SaveEntries(ctx, entries))

	// Collections land under the prefixed fixed keys
	assert.True(t, mr.Exists("test:academic-spaces-rooms"))
	assert.True(t, mr.Exists("test:academic-spaces-entries"))

	loadedRooms, err := repo.LoadRooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, rooms, loadedRooms)

	loadedEntries, err := repo.LoadEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, loadedEntries)
}

func TestSaveReplacesWholeDocument(t *testing.T) {
	repo, _ := newTestRepository(t)
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

func TestCorruptDocumentSurfacesError(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("test:academic-spaces-entries", "{not json"))

	_, err := repo.LoadEntries(ctx)
	assert.Error(t, err)
}
