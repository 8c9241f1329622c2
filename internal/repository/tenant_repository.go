package repository

import (
	"context"

	"github.com/client-portal/engine/internal/models"
	"github.com/client-portal/engine/pkg/database"
	appErr "github.com/client-portal/engine/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TenantRepository persists tenant project records keyed by subdomain.
type TenantRepository interface {
	// GetBySubdomain returns CodeNotFound when no record matches exactly.
	GetBySubdomain(ctx context.Context, subdomain string) (*models.Tenant, error)
	// Upsert inserts create when the subdomain is unknown, otherwise writes only
	// the columns supplied by patch plus last_updated. One call is atomic.
	Upsert(ctx context.Context, create *models.Tenant, patch models.TenantPatch) error
	// CreateIfAbsent inserts t unless its subdomain exists and reports whether it did.
	CreateIfAbsent(ctx context.Context, t *models.Tenant) (bool, error)
	List(ctx context.Context) ([]models.Tenant, error)
	Ping(ctx context.Context) error
}

type tenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) TenantRepository {
	return &tenantRepository{db: db}
}

var _ TenantRepository = (*tenantRepository)(nil)

func (r *tenantRepository) GetBySubdomain(ctx context.Context, subdomain string) (*models.Tenant, error) {
	return findOne[models.Tenant](ctx, r.db, "project", "subdomain = ?", subdomain)
}

func (r *tenantRepository) Upsert(ctx context.Context, create *models.Tenant, patch models.TenantPatch) error {
	if create.ID == uuid.Nil {
		create.ID = uuid.New()
	}
	cols := append(patch.Columns(), "last_updated", "updated_at")
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subdomain"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(create).Error
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "upsert project failed")
	}
	return nil
}

func (r *tenantRepository) CreateIfAbsent(ctx context.Context, t *models.Tenant) (bool, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subdomain"}},
		DoNothing: true,
	}).Create(t)
	if res.Error != nil {
		return false, appErr.Wrap(res.Error, appErr.CodeInternal, "create project failed")
	}
	return res.RowsAffected == 1, nil
}

func (r *tenantRepository) List(ctx context.Context) ([]models.Tenant, error) {
	return listOrdered[models.Tenant](ctx, r.db, "projects", "subdomain ASC")
}

func (r *tenantRepository) Ping(ctx context.Context) error {
	if err := database.Ping(ctx, r.db); err != nil {
		return appErr.Wrap(err, appErr.CodeUnavailable, "project store unreachable")
	}
	return nil
}
