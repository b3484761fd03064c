// Package redis provides a Redis/Valkey implementation of the repository
// interface. Each collection is stored as one JSON document under a prefixed
// fixed key and rewritten whole on every save.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/academicspaces/roomboard/internal/config"
	"github.com/academicspaces/roomboard/internal/models"
)

// Collection keys, namespaced by the configured prefix.
const (
	roomsKey   = "academic-spaces-rooms"
	entriesKey = "academic-spaces-entries"
)

// Repository implements the repository interface with Redis storage.
type Repository struct {
	client    *redis.Client
	keyPrefix string
}

// NewRepository creates a new Redis repository and verifies the connection.
func NewRepository(cfg config.RedisConfig) (*Repository, error) {
	var client *redis.Client

	// Use URI if provided, otherwise build the connection from individual
	// parameters.
	if cfg.URI != "" {
		opt, err := redis.ParseURL(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URI: %w", err)
		}
		if opt.DB == 0 {
			opt.DB = cfg.DB
		}
		if opt.Password == "" && cfg.Password != "" {
			opt.Password = cfg.Password
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Repository{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
	}, nil
}

// Close closes the Redis connection.
func (r *Repository) Close() error {
	return r.client.Close()
}

func (r *Repository) key(name string) string {
	return r.keyPrefix + name
}

// SaveRooms replaces the rooms collection.
func (r *Repository) SaveRooms(ctx context.Context, rooms []models.Room) error {
	return r.save(ctx, roomsKey, rooms)
}

// LoadRooms retrieves the rooms collection, or nil if it was never saved.
func (r *Repository) LoadRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	ok, err := r.load(ctx, roomsKey, &rooms)
	if err != nil || !ok {
		return nil, err
	}
	return rooms, nil
}

// SaveEntries replaces the schedule-entries collection.
func (r *Repository) SaveEntries(ctx context.Context, entries []models.ScheduleEntry) error {
	return r.save(ctx, entriesKey, entries)
}

// LoadEntries retrieves the schedule-entries collection, or nil if it was
// never saved.
func (r *Repository) LoadEntries(ctx context.Context) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	ok, err := r.load(ctx, entriesKey, &entries)
	if err != nil || !ok {
		return nil, err
	}
	return entries, nil
}

func (r *Repository) save(ctx context.Context, name string, collection interface{}) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	// Collections never expire; the store is the system of record.
	if err := r.client.Set(ctx, r.key(name), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", name, err)
	}
	return nil
}

// load reports whether the key existed. A present but unparseable document is
// an error, which the service layer treats as corrupt data.
func (r *Repository) load(ctx context.Context, name string, out interface{}) (bool, error) {
	data, err := r.client.Get(ctx, r.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return true, nil
}
