package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/client-portal/engine/internal/models"
	appErr "github.com/client-portal/engine/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTenant(subdomain string) *models.Tenant {
	return &models.Tenant{
		Subdomain:    subdomain,
		ClientName:   "Acme",
		ProjectName:  "Outbound",
		Status:       models.StatusPlanning,
		CurrentPhase: "setup",
		LastUpdated:  "2026-01-01T00:00:00Z",
	}
}

func TestMemoryGetMissingIsNotFound(t *testing.T) {
	repo := NewMemoryTenantRepository()

	_, err := repo.GetBySubdomain(context.Background(), "ghost")
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestMemoryUpsertCreatesThenMergesOnlySuppliedFields(t *testing.T) {
	repo := NewMemoryTenantRepository()
	ctx := context.Background()

	create := seedTenant("acme")
	patch := models.TenantPatch{ShareEmail: strPtr("ops@acme.io")}
	patch.Apply(create)
	require.NoError(t, repo.Upsert(ctx, create, patch))

	next := seedTenant("acme")
	next.ClientName = "ignored on conflict"
	next.LastUpdated = "2026-02-02T00:00:00Z"
	patch = models.TenantPatch{RunTime: strPtr("09:00")}
	patch.Apply(next)
	require.NoError(t, repo.Upsert(ctx, next, patch))

	got, err := repo.GetBySubdomain(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, "Acme", got.ClientName)
	require.Equal(t, "ops@acme.io", models.Deref(got.ShareEmail))
	require.Equal(t, "09:00", models.Deref(got.RunTime))
	require.Equal(t, "2026-02-02T00:00:00Z", got.LastUpdated)
	require.Equal(t, create.ID, got.ID)
}

func TestMemoryReturnedRecordDoesNotAliasStore(t *testing.T) {
	repo := NewMemoryTenantRepository()
	ctx := context.Background()

	create := seedTenant("acme")
	create.ShareEmail = strPtr("a@b.c")
	require.NoError(t, repo.Upsert(ctx, create, models.TenantPatch{}))
	*create.ShareEmail = "mutated@caller"

	got, err := repo.GetBySubdomain(ctx, "acme")
	require.NoError(t, err)
	*got.ShareEmail = "mutated@reader"

	again, err := repo.GetBySubdomain(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, "a@b.c", *again.ShareEmail)
}

func TestMemoryCreateIfAbsent(t *testing.T) {
	repo := NewMemoryTenantRepository()
	ctx := context.Background()

	created, err := repo.CreateIfAbsent(ctx, seedTenant("malak"))
	require.NoError(t, err)
	require.True(t, created)

	dup := seedTenant("malak")
	dup.ClientName = "Other"
	created, err = repo.CreateIfAbsent(ctx, dup)
	require.NoError(t, err)
	require.False(t, created)

	got, err := repo.GetBySubdomain(ctx, "malak")
	require.NoError(t, err)
	require.Equal(t, "Acme", got.ClientName)
}

func TestMemoryListIsOrderedBySubdomain(t *testing.T) {
	repo := NewMemoryTenantRepository()
	ctx := context.Background()
	for _, s := range []string{"zeta", "acme", "malak"} {
		_, err := repo.CreateIfAbsent(ctx, seedTenant(s))
		require.NoError(t, err)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []string{"acme", "malak", "zeta"}, []string{all[0].Subdomain, all[1].Subdomain, all[2].Subdomain})
}

func TestMemoryConcurrentUpsertsYieldOneRecord(t *testing.T) {
	repo := NewMemoryTenantRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			create := seedTenant("race")
			patch := models.TenantPatch{ProgressPercent: intPtr(i)}
			patch.Apply(create)
			assert.NoError(t, repo.Upsert(ctx, create, patch))
		}(i)
	}
	wg.Wait()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}
