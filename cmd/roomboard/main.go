package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/academicspaces/roomboard/internal/api"
	"github.com/academicspaces/roomboard/internal/clock"
	"github.com/academicspaces/roomboard/internal/config"
	"github.com/academicspaces/roomboard/internal/repository"
	"github.com/academicspaces/roomboard/internal/service"
	"github.com/academicspaces/roomboard/internal/web"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the repository using the factory
	repo, err := repository.New(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize repository: %v", err)
	}

	// Redis and Postgres backends hold connections that must be released
	if closer, ok := repo.(interface{ Close() error }); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Printf("Error closing repository: %v", err)
			}
		}()
	}

	clk := clock.New()

	// Initialize the service layer and load or seed the schedule data
	scheduleService := service.NewScheduleService(repo)
	if err := scheduleService.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to initialize schedule data: %v", err)
	}

	// Set up web UI routes
	webHandler, err := web.NewHandler(scheduleService, clk, "./internal/web/templates")
	if err != nil {
		log.Fatalf("Failed to initialize web handler: %v", err)
	}

	// Set up admin routes
	adminHandler, err := web.NewAdminHandler(scheduleService, clk, cfg.Admin, "./internal/web/templates")
	if err != nil {
		log.Fatalf("Failed to initialize admin handler: %v", err)
	}

	// Register the SSE update callback with the schedule service
	scheduleService.RegisterUpdateCallback(webHandler.NotifyScheduleUpdate)

	router := mux.NewRouter()
	api.SetupRoutes(router, scheduleService, clk, cfg.Metrics)
	adminHandler.SetupAdminRoutes(router)
	webHandler.SetupRoutes(router)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: 0, // Disable write timeout for SSE connections
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting roomboard server on port %s", cfg.Server.Port)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Error starting server: %v", err)

	case <-shutdown:
		log.Println("Shutting down server...")

		// Close SSE connections first so Shutdown does not wait on them
		webHandler.Shutdown()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			log.Fatalf("Error shutting down server: %v", err)
		}

		log.Println("Server gracefully stopped")
	}
}
