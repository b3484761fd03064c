package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academicspaces/roomboard/internal/clock"
	"github.com/academicspaces/roomboard/internal/repository/memory"
	"github.com/academicspaces/roomboard/internal/service"
	"github.com/academicspaces/roomboard/internal/web"
)

// mondayMorning is 2025-03-03 08:00, inside room 001's first Monday block.
var mondayMorning = time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)

func newTestHandler(t *testing.T) (*web.Handler, *service.ScheduleService, *clock.Fake) {
	t.Helper()

	svc := service.NewScheduleService(memory.NewRepository())
	require.NoError(t, svc.Initialize(context.Background()))

	fake := clock.NewFake(mondayMorning)
	handler, err := web.NewHandler(svc, fake, "templates")
	require.NoError(t, err)
	t.Cleanup(handler.Shutdown)

	return handler, svc, fake
}

func TestIndexRendersDashboard(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	router := mux.NewRouter()
	handler.SetupRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "Painel de Salas")
	assert.Contains(t, body, "DID1 - 001")
	// Room 001 is mid-lecture on Monday morning
	assert.Contains(t, body, "Ocupada")
	assert.Contains(t, body, "FIS0101")
}

func TestIndexBeforeInitializeAnswers503(t *testing.T) {
	svc := service.NewScheduleService(memory.NewRepository())
	handler, err := web.NewHandler(svc, clock.NewFake(mondayMorning), "templates")
	require.NoError(t, err)
	defer handler.Shutdown()

	router := mux.NewRouter()
	handler.SetupRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRoomSchedulePage(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	router := mux.NewRouter()
	handler.SetupRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/rooms/001", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "DID1 - 001")
	assert.Contains(t, body, "Segunda")
	assert.Contains(t, body, "Física I")

	req = httptest.NewRequest(http.MethodGet, "/rooms/999", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPartialRoomGrid(t *testing.T) {
	handler, _, fake := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/partial/rooms", nil)
	rec := httptest.NewRecorder()
	handler.HandlePartialRoomGrid(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "DID1 - 001")
	assert.NotContains(t, body, "<html", "partial must not render the full page")

	// Outside operating hours every room renders unavailable
	fake.Set(time.Date(2025, 3, 3, 6, 0, 0, 0, time.UTC))
	rec = httptest.NewRecorder()
	handler.HandlePartialRoomGrid(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "5 indisponíveis")
}

func TestPartialRoomGridAvailableFilter(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/partial/rooms?available=true", nil)
	rec := httptest.NewRecorder()
	handler.HandlePartialRoomGrid(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	// Monday 08:00: room 001 is occupied and must be filtered out
	assert.NotContains(t, body, "DID1 - 001")
	// Stats still count every room
	assert.Contains(t, body, "5 salas")
}
