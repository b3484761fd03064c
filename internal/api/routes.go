package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/academicspaces/roomboard/internal/clock"
	"github.com/academicspaces/roomboard/internal/config"
	"github.com/academicspaces/roomboard/internal/service"
)

// SetupRoutes registers the health, metrics and JSON API routes on the given
// router.
func SetupRoutes(router *mux.Router, svc *service.ScheduleService, clk clock.Clock, metricsCfg config.MetricsConfig) {
	// Health check endpoints for Kubernetes
	router.HandleFunc("/health/live", HealthLiveHandler)
	router.HandleFunc("/health/ready", NewHealthReadyHandler(svc))

	if metricsCfg.Enabled {
		router.Handle(metricsCfg.Path, promhttp.Handler())
	}

	roomHandler := NewRoomHandler(svc, clk)
	entryHandler := NewEntryHandler(svc)
	statusHandler := NewStatusHandler(svc, clk)

	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Use(MetricsMiddleware)

	apiRouter.HandleFunc("/rooms", roomHandler.listRooms).Methods("GET")
	apiRouter.HandleFunc("/rooms/{id}", roomHandler.getRoom).Methods("GET")
	apiRouter.HandleFunc("/rooms/{id}", roomHandler.updateRoom).Methods("PATCH")
	apiRouter.HandleFunc("/rooms/{id}/toggle", roomHandler.toggleRoom).Methods("POST")
	apiRouter.HandleFunc("/rooms/{id}/entries", roomHandler.listRoomEntries).Methods("GET")
	apiRouter.HandleFunc("/rooms/{id}/status", roomHandler.getRoomStatus).Methods("GET")

	apiRouter.HandleFunc("/entries", entryHandler.listEntries).Methods("GET")
	apiRouter.HandleFunc("/entries", entryHandler.createEntry).Methods("POST")
	apiRouter.HandleFunc("/entries/{id}", entryHandler.updateEntry).Methods("PATCH")
	apiRouter.HandleFunc("/entries/{id}", entryHandler.deleteEntry).Methods("DELETE")

	apiRouter.HandleFunc("/status", statusHandler.getStatuses).Methods("GET")
	apiRouter.HandleFunc("/reset", statusHandler.resetSchedule).Methods("POST")
}
