package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/client-portal/engine/internal/models"
	appErr "github.com/client-portal/engine/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupCachedRepo(t *testing.T) (*miniredis.Miniredis, *MemoryTenantRepository, *CachedTenantRepository) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	inner := NewMemoryTenantRepository()
	return mr, inner, NewCachedTenantRepository(inner, rdb, time.Minute)
}

func TestCachedReadFillsCacheWithAPIKey(t *testing.T) {
	mr, inner, repo := setupCachedRepo(t)
	ctx := context.Background()

	seed := seedTenant("acme")
	seed.InstantlyAPIKey = strPtr("key-123")
	_, err := inner.CreateIfAbsent(ctx, seed)
	require.NoError(t, err)

	got, err := repo.GetBySubdomain(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, "key-123", models.Deref(got.InstantlyAPIKey))
	require.True(t, mr.Exists("tenant:config:acme"))
	require.Equal(t, time.Minute, mr.TTL("tenant:config:acme"))

	// Served from cache even after the inner record changes behind its back.
	patch := models.TenantPatch{InstantlyAPIKey: strPtr("rotated")}
	require.NoError(t, inner.Upsert(ctx, seedTenant("acme"), patch))

	cached, err := repo.GetBySubdomain(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, "key-123", models.Deref(cached.InstantlyAPIKey))
}

func TestCachedUpsertEvicts(t *testing.T) {
	mr, _, repo := setupCachedRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, seedTenant("acme"), models.TenantPatch{}))
	_, err := repo.GetBySubdomain(ctx, "acme")
	require.NoError(t, err)
	require.True(t, mr.Exists("tenant:config:acme"))

	next := seedTenant("acme")
	patch := models.TenantPatch{GoogleSheetURL: strPtr("https://sheets/x")}
	patch.Apply(next)
	require.NoError(t, repo.Upsert(ctx, next, patch))
	require.False(t, mr.Exists("tenant:config:acme"))

	got, err := repo.GetBySubdomain(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, "https://sheets/x", models.Deref(got.GoogleSheetURL))
}

func TestCachedMissIsNotCached(t *testing.T) {
	mr, _, repo := setupCachedRepo(t)

	_, err := repo.GetBySubdomain(context.Background(), "ghost")
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound))
	require.False(t, mr.Exists("tenant:config:ghost"))
}

func TestCachedFallsBackWhenRedisIsDown(t *testing.T) {
	mr, inner, repo := setupCachedRepo(t)
	ctx := context.Background()
	_, err := inner.CreateIfAbsent(ctx, seedTenant("acme"))
	require.NoError(t, err)

	mr.Close()

	got, err := repo.GetBySubdomain(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, "acme", got.Subdomain)
	require.NoError(t, repo.Ping(ctx))
}

func TestCachedCorruptEntryIsIgnored(t *testing.T) {
	mr, inner, repo := setupCachedRepo(t)
	ctx := context.Background()
	_, err := inner.CreateIfAbsent(ctx, seedTenant("acme"))
	require.NoError(t, err)
	require.NoError(t, mr.Set("tenant:config:acme", "{not json"))

	got, err := repo.GetBySubdomain(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, "Acme", got.ClientName)
}

// pausingRepo blocks the first GetBySubdomain after it has loaded the record,
// so a write can land between the inner read and the cache fill.
type pausingRepo struct {
	*MemoryTenantRepository
	once   sync.Once
	loaded chan struct{}
	resume chan struct{}
}

func (p *pausingRepo) GetBySubdomain(ctx context.Context, subdomain string) (*models.Tenant, error) {
	t, err := p.MemoryTenantRepository.GetBySubdomain(ctx, subdomain)
	p.once.Do(func() {
		close(p.loaded)
		<-p.resume
	})
	return t, err
}

func TestCachedFillDoesNotOverwriteConcurrentWrite(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	ctx := context.Background()

	inner := &pausingRepo{
		MemoryTenantRepository: NewMemoryTenantRepository(),
		loaded:                 make(chan struct{}),
		resume:                 make(chan struct{}),
	}
	seed := seedTenant("acme")
	seed.ReportEmail = strPtr("old@x.com")
	_, err := inner.CreateIfAbsent(ctx, seed)
	require.NoError(t, err)

	repo := NewCachedTenantRepository(inner, rdb, time.Minute)

	done := make(chan *models.Tenant)
	go func() {
		got, err := repo.GetBySubdomain(ctx, "acme")
		if err != nil {
			got = nil
		}
		done <- got
	}()

	<-inner.loaded
	require.NoError(t, repo.Upsert(ctx, seedTenant("acme"), models.TenantPatch{ReportEmail: strPtr("new@x.com")}))
	close(inner.resume)

	stale := <-done
	require.NotNil(t, stale)
	require.Equal(t, "old@x.com", models.Deref(stale.ReportEmail))
	require.False(t, mr.Exists("tenant:config:acme"), "fill from before the write must be dropped")

	got, err := repo.GetBySubdomain(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, "new@x.com", models.Deref(got.ReportEmail))

	// The next read fills normally under the new generation.
	require.True(t, mr.Exists("tenant:config:acme"))
	cached, err := repo.GetBySubdomain(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, "new@x.com", models.Deref(cached.ReportEmail))
}

func TestCachedEvictBumpsGeneration(t *testing.T) {
	mr, _, repo := setupCachedRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, seedTenant("acme"), models.TenantPatch{}))
	require.NoError(t, repo.Upsert(ctx, seedTenant("acme"), models.TenantPatch{ShareEmail: strPtr("a@b.c")}))

	gen, err := mr.Get("tenant:gen:acme")
	require.NoError(t, err)
	require.Equal(t, "2", gen)
	require.Equal(t, 24*time.Hour, mr.TTL("tenant:gen:acme"))
}
