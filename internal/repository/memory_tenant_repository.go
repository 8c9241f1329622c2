package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/client-portal/engine/internal/models"
	appErr "github.com/client-portal/engine/pkg/errors"
	"github.com/google/uuid"
)

// MemoryTenantRepository keeps tenants in process memory. Used when
// STORE_DRIVER=memory and in tests; contents are lost on restart.
type MemoryTenantRepository struct {
	mu      sync.RWMutex
	tenants map[string]models.Tenant // subdomain -> record
}

func NewMemoryTenantRepository() *MemoryTenantRepository {
	return &MemoryTenantRepository{tenants: map[string]models.Tenant{}}
}

var _ TenantRepository = (*MemoryTenantRepository)(nil)

func (r *MemoryTenantRepository) GetBySubdomain(_ context.Context, subdomain string) (*models.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tenants[subdomain]
	if !ok {
		return nil, appErr.Wrap(ErrNotFound, appErr.CodeNotFound, "project not found")
	}
	t = clone(t)
	return &t, nil
}

func (r *MemoryTenantRepository) Upsert(_ context.Context, create *models.Tenant, patch models.TenantPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := time.Now().UTC()
	existing, ok := r.tenants[create.Subdomain]
	if !ok {
		t := clone(*create)
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		t.CreatedAt, t.UpdatedAt = ts, ts
		r.tenants[t.Subdomain] = t
		create.ID = t.ID
		return nil
	}

	patch.Apply(&existing)
	existing.LastUpdated = create.LastUpdated
	existing.UpdatedAt = ts
	r.tenants[existing.Subdomain] = existing
	return nil
}

func (r *MemoryTenantRepository) CreateIfAbsent(_ context.Context, t *models.Tenant) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tenants[t.Subdomain]; ok {
		return false, nil
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	ts := time.Now().UTC()
	t.CreatedAt, t.UpdatedAt = ts, ts
	r.tenants[t.Subdomain] = clone(*t)
	return true, nil
}

func (r *MemoryTenantRepository) List(_ context.Context) ([]models.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		all = append(all, clone(t))
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Subdomain < all[j].Subdomain
	})
	return all, nil
}

func (r *MemoryTenantRepository) Ping(context.Context) error { return nil }

// clone copies the optional fields so stored records never alias caller memory.
func clone(t models.Tenant) models.Tenant {
	for _, p := range []**string{&t.BlueprintPath, &t.InstantlyAPIKey, &t.GoogleSheetURL, &t.ShareEmail, &t.ReportEmail, &t.RunTime} {
		if *p != nil {
			v := **p
			*p = &v
		}
	}
	return t
}
