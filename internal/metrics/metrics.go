// Package metrics defines the Prometheus collectors for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomboard_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roomboard_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	// Schedule metrics
	EntriesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomboard_entries_created_total",
			Help: "Total schedule entries created",
		},
	)

	EntriesUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomboard_entries_updated_total",
			Help: "Total schedule entries updated",
		},
	)

	EntriesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomboard_entries_deleted_total",
			Help: "Total schedule entries deleted",
		},
	)

	RoomToggles = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomboard_room_toggles_total",
			Help: "Total room availability toggles",
		},
	)

	ScheduleResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomboard_schedule_resets_total",
			Help: "Total resets to the seed dataset",
		},
	)

	// Engine metrics
	StatusPasses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomboard_status_passes_total",
			Help: "Total all-rooms status computation passes",
		},
	)
)
