package repository

import (
	"fmt"

	"github.com/academicspaces/roomboard/internal/config"
	"github.com/academicspaces/roomboard/internal/repository/memory"
	"github.com/academicspaces/roomboard/internal/repository/postgres"
	"github.com/academicspaces/roomboard/internal/repository/redis"
)

// New creates the repository selected by the storage configuration.
func New(cfg config.StorageConfig) (Repository, error) {
	switch cfg.Backend {
	case "", "memory":
		return memory.NewRepository(), nil
	case "redis":
		return redis.NewRepository(cfg.Redis)
	case "postgres":
		return postgres.NewRepository(cfg.Postgres)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
