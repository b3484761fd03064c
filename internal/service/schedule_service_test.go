package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academicspaces/roomboard/internal/models"
	"github.com/academicspaces/roomboard/internal/repository/memory"
	"github.com/academicspaces/roomboard/internal/service"
)

func newInitializedService(t *testing.T) (*service.ScheduleService, *memory.Repository) {
	t.Helper()

	repo := memory.NewRepository()
	svc := service.NewScheduleService(repo)
	require.NoError(t, svc.Initialize(context.Background()))
	return svc, repo
}

func validInput() service.EntryInput {
	return service.EntryInput{
		RoomID:            "001",
		Day:               models.Friday,
		StartTime:         "15:50",
		EndTime:           "17:30",
		CourseCode:        "TST0101",
		CourseName:        "Curso de Teste",
		UsageType:         models.UsageStudyGroup,
		OccupiedSeats:     12,
		CanBeUsedForStudy: true,
	}
}

func TestInitializeSeedsEmptyStore(t *testing.T) {
	repo := memory.NewRepository()
	svc := service.NewScheduleService(repo)
	ctx := context.Background()

	assert.False(t, svc.Loaded())
	require.NoError(t, svc.Initialize(ctx))
	assert.True(t, svc.Loaded())

	assert.Equal(t, models.DefaultRooms(), svc.Rooms())
	assert.Equal(t, models.DefaultEntries(), svc.Entries())

	// The seed dataset is persisted immediately
	persisted, err := repo.LoadRooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultRooms(), persisted)
}

func TestInitializeLoadsExistingData(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	rooms := []models.Room{{ID: "101", Name: "Custom", Capacity: 20, IsAvailable: true}}
	entries := []models.ScheduleEntry{{
		ID: "kept", RoomID: "101", Day: models.Monday,
		StartTime: "07:30", EndTime: "09:10",
		CourseCode: "KPT0101", UsageType: models.UsageClassSession,
	}}
	require.NoError(t, repo.SaveRooms(ctx, rooms))
	require.NoError(t, repo.SaveEntries(ctx, entries))

	svc := service.NewScheduleService(repo)
	require.NoError(t, svc.Initialize(ctx))

	assert.Equal(t, rooms, svc.Rooms())
	assert.Equal(t, entries, svc.Entries())
}

// failingLoadRepo simulates a store holding unreadable documents.
type failingLoadRepo struct {
	memory.Repository
}

func (r *failingLoadRepo) LoadRooms(ctx context.Context) ([]models.Room, error) {
	return nil, errors.New("corrupt rooms document")
}

func (r *failingLoadRepo) LoadEntries(ctx context.Context) ([]models.ScheduleEntry, error) {
	return nil, errors.New("corrupt entries document")
}

func TestInitializeFallsBackOnCorruptData(t *testing.T) {
	repo := &failingLoadRepo{}
	svc := service.NewScheduleService(repo)

	require.NoError(t, svc.Initialize(context.Background()))

	assert.True(t, svc.Loaded())
	assert.Equal(t, models.DefaultRooms(), svc.Rooms())
	assert.Equal(t, models.DefaultEntries(), svc.Entries())
}

func TestAddEntry(t *testing.T) {
	svc, repo := newInitializedService(t)
	ctx := context.Background()
	before := len(svc.Entries())

	entry, err := svc.AddEntry(ctx, validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "001", entry.RoomID)
	assert.Equal(t, models.UsageStudyGroup, entry.UsageType)
	assert.Len(t, svc.Entries(), before+1)

	// The whole collection is persisted synchronously
	persisted, err := repo.LoadEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, persisted, before+1)

	// Ids are unique across inserts
	second, err := svc.AddEntry(ctx, validInput())
	require.NoError(t, err)
	assert.NotEqual(t, entry.ID, second.ID)
}

func TestAddEntryValidation(t *testing.T) {
	svc, _ := newInitializedService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		mutate   func(*service.EntryInput)
		sentinel error
	}{
		{"unknown room", func(in *service.EntryInput) { in.RoomID = "999" }, service.ErrRoomNotFound},
		{"empty course code", func(in *service.EntryInput) { in.CourseCode = "" }, service.ErrValidation},
		{"unknown day", func(in *service.EntryInput) { in.Day = "Feira" }, service.ErrValidation},
		{"unknown usage type", func(in *service.EntryInput) { in.UsageType = "party" }, service.ErrValidation},
		{"malformed start time", func(in *service.EntryInput) { in.StartTime = "7h30" }, service.ErrValidation},
		{"malformed end time", func(in *service.EntryInput) { in.EndTime = "25:00" }, service.ErrValidation},
		{"start not before end", func(in *service.EntryInput) { in.StartTime = "17:30"; in.EndTime = "15:50" }, service.ErrValidation},
		{"start equals end", func(in *service.EntryInput) { in.EndTime = in.StartTime }, service.ErrValidation},
		{"negative seats", func(in *service.EntryInput) { in.OccupiedSeats = -1 }, service.ErrValidation},
		{"seats above capacity", func(in *service.EntryInput) { in.OccupiedSeats = 41 }, service.ErrValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			_, err := svc.AddEntry(ctx, input)
			assert.ErrorIs(t, err, tc.sentinel)
		})
	}

	// Nothing was committed by the rejected inputs
	assert.Len(t, svc.Entries(), len(models.DefaultEntries()))
}

func TestUpdateEntryMergesOnlyProvidedFields(t *testing.T) {
	svc, _ := newInitializedService(t)
	ctx := context.Background()

	created, err := svc.AddEntry(ctx, validInput())
	require.NoError(t, err)

	newSeats := 20
	newName := "Curso Renomeado"
	updated, err := svc.UpdateEntry(ctx, created.ID, service.EntryUpdate{
		OccupiedSeats: &newSeats,
		CourseName:    &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, 20, updated.OccupiedSeats)
	assert.Equal(t, "Curso Renomeado", updated.CourseName)
	// Untouched fields keep their values
	assert.Equal(t, created.StartTime, updated.StartTime)
	assert.Equal(t, created.CourseCode, updated.CourseCode)
	assert.Equal(t, created.ID, updated.ID)
}

func TestUpdateEntryValidatesMergedResult(t *testing.T) {
	svc, _ := newInitializedService(t)
	ctx := context.Background()

	created, err := svc.AddEntry(ctx, validInput())
	require.NoError(t, err)

	badEnd := "15:00"
	_, err = svc.UpdateEntry(ctx, created.ID, service.EntryUpdate{EndTime: &badEnd})
	assert.ErrorIs(t, err, service.ErrValidation)

	// The stored entry is untouched after the rejected update
	entries := svc.EntriesForRoom("001")
	for _, entry := range entries {
		if entry.ID == created.ID {
			assert.Equal(t, created.EndTime, entry.EndTime)
		}
	}
}

func TestUpdateEntryNotFound(t *testing.T) {
	svc, _ := newInitializedService(t)

	seats := 5
	_, err := svc.UpdateEntry(context.Background(), "missing", service.EntryUpdate{OccupiedSeats: &seats})
	assert.ErrorIs(t, err, service.ErrEntryNotFound)
}

func TestDeleteEntry(t *testing.T) {
	svc, _ := newInitializedService(t)
	ctx := context.Background()

	created, err := svc.AddEntry(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(ctx, created.ID))

	for _, entry := range svc.Entries() {
		assert.NotEqual(t, created.ID, entry.ID)
	}

	// Deleting again reports not found
	assert.ErrorIs(t, svc.DeleteEntry(ctx, created.ID), service.ErrEntryNotFound)
}

func TestUpdateRoom(t *testing.T) {
	svc, _ := newInitializedService(t)
	ctx := context.Background()

	capacity := 60
	updated, err := svc.UpdateRoom(ctx, "001", service.RoomUpdate{Capacity: &capacity})
	require.NoError(t, err)
	assert.Equal(t, 60, updated.Capacity)

	negative := -1
	_, err = svc.UpdateRoom(ctx, "001", service.RoomUpdate{Capacity: &negative})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.UpdateRoom(ctx, "999", service.RoomUpdate{Capacity: &capacity})
	assert.ErrorIs(t, err, service.ErrRoomNotFound)
}

func TestToggleRoomAvailability(t *testing.T) {
	svc, _ := newInitializedService(t)
	ctx := context.Background()

	room, err := svc.ToggleRoomAvailability(ctx, "001")
	require.NoError(t, err)
	assert.False(t, room.IsAvailable)

	room, err = svc.ToggleRoomAvailability(ctx, "001")
	require.NoError(t, err)
	assert.True(t, room.IsAvailable)

	_, err = svc.ToggleRoomAvailability(ctx, "999")
	assert.ErrorIs(t, err, service.ErrRoomNotFound)
}

func TestResetToDefaults(t *testing.T) {
	svc, repo := newInitializedService(t)
	ctx := context.Background()

	_, err := svc.AddEntry(ctx, validInput())
	require.NoError(t, err)
	_, err = svc.ToggleRoomAvailability(ctx, "002")
	require.NoError(t, err)

	require.NoError(t, svc.ResetToDefaults(ctx))

	assert.Equal(t, models.DefaultRooms(), svc.Rooms())
	assert.Equal(t, models.DefaultEntries(), svc.Entries())

	persisted, err := repo.LoadEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultEntries(), persisted)
}

func TestUpdateCallbacksFireOnMutations(t *testing.T) {
	svc, _ := newInitializedService(t)
	ctx := context.Background()

	calls := 0
	svc.RegisterUpdateCallback(func() { calls++ })

	created, err := svc.AddEntry(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	seats := 3
	_, err = svc.UpdateEntry(ctx, created.ID, service.EntryUpdate{OccupiedSeats: &seats})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	require.NoError(t, svc.DeleteEntry(ctx, created.ID))
	assert.Equal(t, 3, calls)

	// Rejected mutations do not notify
	_, err = svc.AddEntry(ctx, service.EntryInput{RoomID: "999"})
	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestEntriesForRoom(t *testing.T) {
	svc, _ := newInitializedService(t)

	entries := svc.EntriesForRoom("001")
	require.NotEmpty(t, entries)
	for _, entry := range entries {
		assert.Equal(t, "001", entry.RoomID)
	}

	assert.Empty(t, svc.EntriesForRoom("999"))
}

func TestStatuses(t *testing.T) {
	svc, _ := newInitializedService(t)

	// Monday 2025-03-03 08:00: room 001 is in its FIS0101 block
	now := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	statuses := svc.Statuses(now)
	require.Len(t, statuses, 5)

	st := statuses["001"]
	assert.Equal(t, models.StatusOccupied, st.Status)
	require.NotNil(t, st.CurrentEntry)
	assert.Equal(t, "FIS0101", st.CurrentEntry.CourseCode)
	assert.Equal(t, 35, st.OccupiedSeats)
	require.NotNil(t, st.TimeUntilFree)
	assert.Equal(t, 70, *st.TimeUntilFree)

	single, err := svc.RoomStatusFor("001", now)
	require.NoError(t, err)
	assert.Equal(t, st, single)

	_, err = svc.RoomStatusFor("999", now)
	assert.ErrorIs(t, err, service.ErrRoomNotFound)
}

func TestDisabledRoomReportsUnavailable(t *testing.T) {
	svc, _ := newInitializedService(t)
	ctx := context.Background()

	_, err := svc.ToggleRoomAvailability(ctx, "003")
	require.NoError(t, err)

	now := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	st, err := svc.RoomStatusFor("003", now)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnavailable, st.Status)
}
