package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/client-portal/engine/internal/models"
	"github.com/client-portal/engine/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	tenantCacheKeyPrefix = "tenant:config:"
	tenantGenKeyPrefix   = "tenant:gen:"
	tenantGenTTL         = 24 * time.Hour
)

// fillIfCurrent stores the entry only while the generation matches the one
// read before the inner load. A missing generation counts as "".
var fillIfCurrent = redis.NewScript(`
local gen = redis.call("GET", KEYS[2])
if not gen then gen = "" end
if gen ~= ARGV[1] then return 0 end
redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
return 1
`)

// CachedTenantRepository is a read-through Redis cache in front of another
// TenantRepository. Writes go to the inner store first, then bump the key's
// generation and evict it; a fill that started before the write sees the new
// generation and is dropped. Cache failures are logged and never surface to callers.
type CachedTenantRepository struct {
	inner TenantRepository
	rdb   redis.UniversalClient
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachedTenantRepository(inner TenantRepository, rdb redis.UniversalClient, ttl time.Duration) *CachedTenantRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachedTenantRepository{inner: inner, rdb: rdb, ttl: ttl, log: logger.Named("tenant-cache")}
}

var _ TenantRepository = (*CachedTenantRepository)(nil)

// cachedTenant keeps the API key, which models.Tenant hides from JSON.
type cachedTenant struct {
	models.Tenant
	APIKey *string `json:"instantly_api_key"`
}

func tenantCacheKey(subdomain string) string { return tenantCacheKeyPrefix + subdomain }

func tenantGenKey(subdomain string) string { return tenantGenKeyPrefix + subdomain }

func (r *CachedTenantRepository) GetBySubdomain(ctx context.Context, subdomain string) (*models.Tenant, error) {
	key, genKey := tenantCacheKey(subdomain), tenantGenKey(subdomain)

	raw, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var ct cachedTenant
		if err := json.Unmarshal(raw, &ct); err == nil {
			t := ct.Tenant
			t.InstantlyAPIKey = ct.APIKey
			return &t, nil
		}
		r.log.Warn("discarding corrupt cache entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		r.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	// The generation must be read before the inner load.
	gen, genErr := r.rdb.Get(ctx, genKey).Result()
	if errors.Is(genErr, redis.Nil) {
		gen, genErr = "", nil
	}

	t, err := r.inner.GetBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}
	if genErr != nil {
		r.log.Warn("cache generation read failed, skipping fill", zap.String("key", genKey), zap.Error(genErr))
		return t, nil
	}

	b, err := json.Marshal(cachedTenant{Tenant: *t, APIKey: t.InstantlyAPIKey})
	if err == nil {
		err = fillIfCurrent.Run(ctx, r.rdb, []string{key, genKey}, gen, b, r.ttl.Milliseconds()).Err()
	}
	if err != nil {
		r.log.Warn("cache fill failed", zap.String("key", key), zap.Error(err))
	}
	return t, nil
}

func (r *CachedTenantRepository) Upsert(ctx context.Context, create *models.Tenant, patch models.TenantPatch) error {
	if err := r.inner.Upsert(ctx, create, patch); err != nil {
		return err
	}
	r.evict(ctx, create.Subdomain)
	return nil
}

func (r *CachedTenantRepository) CreateIfAbsent(ctx context.Context, t *models.Tenant) (bool, error) {
	created, err := r.inner.CreateIfAbsent(ctx, t)
	if err != nil {
		return false, err
	}
	if created {
		r.evict(ctx, t.Subdomain)
	}
	return created, nil
}

func (r *CachedTenantRepository) List(ctx context.Context) ([]models.Tenant, error) {
	return r.inner.List(ctx)
}

// Ping reports the inner store's health. A down cache degrades to direct reads.
func (r *CachedTenantRepository) Ping(ctx context.Context) error {
	if err := r.rdb.Ping(ctx).Err(); err != nil {
		r.log.Warn("cache ping failed", zap.Error(err))
	}
	return r.inner.Ping(ctx)
}

// evict bumps the generation before deleting so in-flight fills are rejected.
func (r *CachedTenantRepository) evict(ctx context.Context, subdomain string) {
	genKey := tenantGenKey(subdomain)
	_, err := r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, genKey)
		p.Expire(ctx, genKey, tenantGenTTL)
		p.Del(ctx, tenantCacheKey(subdomain))
		return nil
	})
	if err != nil {
		r.log.Warn("cache evict failed", zap.String("subdomain", subdomain), zap.Error(err))
	}
}
