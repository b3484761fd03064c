// Package postgres provides a PostgreSQL implementation of the repository
// interface. It keeps the same document model as the other backends: one
// JSONB row per collection, replaced whole on every save.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/academicspaces/roomboard/internal/config"
	"github.com/academicspaces/roomboard/internal/models"
)

const (
	roomsKey   = "academic-spaces-rooms"
	entriesKey = "academic-spaces-entries"
)

const createTableStmt = `
CREATE TABLE IF NOT EXISTS roomboard_collections (
	key        TEXT PRIMARY KEY,
	document   JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Repository implements the repository interface on a two-row key/document
// table.
type Repository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

// NewRepository opens the database, verifies the connection and ensures the
// collections table exists.
func NewRepository(cfg config.PostgresConfig) (*Repository, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, createTableStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure collections table: %w", err)
	}

	return &Repository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}, nil
}

// Close closes the database connection pool.
func (r *Repository) Close() error {
	return r.db.Close()
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

func (r *Repository) save(ctx context.Context, key string, collection interface{}) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	query, args, err := r.builder.
		Insert("roomboard_collections").
		Columns("key", "document", "updated_at").
		Values(key, data, sq.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET document = EXCLUDED.document, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert for %s: %w", key, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (r *Repository) load(ctx context.Context, key string, out interface{}) (bool, error) {
	query, args, err := r.builder.
		Select("document").
		From("roomboard_collections").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build select for %s: %w", key, err)
	}

	var data []byte
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}
