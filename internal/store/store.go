// Package store assembles the tenant repository selected by configuration.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/client-portal/engine/internal/repository"
	"github.com/client-portal/engine/pkg/config"
	"github.com/client-portal/engine/pkg/database"
	"github.com/client-portal/engine/pkg/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Store owns the connections behind Tenants.
type Store struct {
	Tenants repository.TenantRepository

	db  *gorm.DB
	rdb *redis.Client
}

// Open builds the tenant repository for cfg.StoreDriver and, when REDIS_ADDR
// is set, wraps it in the read-through cache.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	log := logger.Named("store")
	s := &Store{}

	switch cfg.StoreDriver {
	case DriverPostgres:
		db, err := database.OpenPostgres(ctx, cfg.DatabaseURL, database.Options{Debug: cfg.Debug()})
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		s.db = db
		s.Tenants = repository.NewTenantRepository(db)
	case DriverMemory:
		log.Warn("using in-memory tenant store, data is lost on restart")
		s.Tenants = repository.NewMemoryTenantRepository()
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	if cfg.RedisAddr != "" {
		s.rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := s.rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable at startup, cache reads will fall through", zap.Error(err))
		}
		s.Tenants = repository.NewCachedTenantRepository(s.Tenants, s.rdb, cfg.CacheTTL)
		log.Info("tenant cache enabled", zap.Duration("ttl", cfg.CacheTTL))
	}

	return s, nil
}

// Close releases the Redis and database handles.
func (s *Store) Close() error {
	var errs []error
	if s.rdb != nil {
		errs = append(errs, s.rdb.Close())
	}
	if s.db != nil {
		errs = append(errs, database.Close(s.db))
	}
	return errors.Join(errs...)
}
