package web

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/sse"
)

// sseClient represents a connected dashboard receiving server-sent events.
type sseClient struct {
	id           string
	writer       http.ResponseWriter
	flusher      http.Flusher
	disconnected chan struct{}
}

// SSEManager pushes schedule-update events to connected dashboard clients so
// they refetch the room grid without waiting for the next poll.
type SSEManager struct {
	mu       sync.RWMutex
	clients  map[string]*sseClient
	shutdown chan struct{}
	once     sync.Once
}

// NewSSEManager creates a new server-sent events manager.
func NewSSEManager() *SSEManager {
	return &SSEManager{
		clients:  make(map[string]*sseClient),
		shutdown: make(chan struct{}),
	}
}

// ServeHTTP implements the http.Handler interface for SSE connections.
func (sm *SSEManager) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache, no-transform")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // disable proxy buffering

	client := &sseClient{
		id:           fmt.Sprintf("%d", time.Now().UnixNano()),
		writer:       w,
		flusher:      flusher,
		disconnected: make(chan struct{}),
	}

	sm.mu.Lock()
	sm.clients[client.id] = client
	sm.mu.Unlock()

	log.Printf("SSE client connected: %s from %s", client.id, r.RemoteAddr)

	defer func() {
		sm.mu.Lock()
		delete(sm.clients, client.id)
		sm.mu.Unlock()
		log.Printf("SSE client disconnected: %s", client.id)
	}()

	// Retry directive plus an initial event so the client knows the stream
	// is live.
	fmt.Fprintf(w, "retry: 5000\n")
	sse.Encode(w, sse.Event{
		Event: "connected",
		Data:  map[string]string{"id": client.id},
	})
	flusher.Flush()

	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-sm.shutdown:
			return
		case <-client.disconnected:
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprintf(w, ": heartbeat %s\n\n", time.Now().Format(time.RFC3339)); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

// NotifyScheduleUpdate broadcasts an update event to all connected clients.
// Clients that fail to receive it are dropped.
func (sm *SSEManager) NotifyScheduleUpdate() {
	eventID := fmt.Sprintf("%d", time.Now().UnixNano())

	sm.mu.RLock()
	clients := make([]*sseClient, 0, len(sm.clients))
	for _, client := range sm.clients {
		clients = append(clients, client)
	}
	sm.mu.RUnlock()

	var failed []*sseClient
	for _, client := range clients {
		err := sse.Encode(client.writer, sse.Event{
			Id:    eventID,
			Event: "update",
			Data:  "schedule updated",
		})
		if err != nil {
			log.Printf("Error sending SSE event to client %s: %v", client.id, err)
			failed = append(failed, client)
			continue
		}
		client.flusher.Flush()
	}

	for _, client := range failed {
		sm.mu.Lock()
		if _, ok := sm.clients[client.id]; ok {
			close(client.disconnected)
			delete(sm.clients, client.id)
		}
		sm.mu.Unlock()
	}
}

// Shutdown closes all SSE connections.
func (sm *SSEManager) Shutdown() {
	sm.once.Do(func() { close(sm.shutdown) })
}
