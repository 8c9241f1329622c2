package services

import (
	"context"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/client-portal/engine/internal/api/validators"
	"github.com/client-portal/engine/internal/models"
	"github.com/client-portal/engine/internal/repository"
	appErr "github.com/client-portal/engine/pkg/errors"
	"github.com/client-portal/engine/pkg/logger"
	"go.uber.org/zap"
)

// Defaults for records created implicitly by an integration write.
const (
	DefaultProjectName   = "Verification Project"
	DefaultCurrentPhase  = "setup"
	DefaultNextMilestone = "init"
)

// ConfigService reads and writes per-tenant project configuration.
type ConfigService interface {
	// GetConfig never reports a missing tenant: absent fields come back as "".
	GetConfig(ctx context.Context, subdomain string) (*ConfigView, error)
	// GetProject returns CodeNotFound for an unknown subdomain.
	GetProject(ctx context.Context, subdomain string) (*models.Tenant, error)
	UpsertConfig(ctx context.Context, subdomain string, patch models.TenantPatch) error
	SeedProject(ctx context.Context, input SeedInput) (*models.Tenant, bool, error)
	ListProjects(ctx context.Context) ([]models.Tenant, error)
	UpdateStatus(ctx context.Context, subdomain string, update StatusUpdate) error
}

// ConfigView is the integration settings surface. Every field is always present.
type ConfigView struct {
	InstantlyAPIKey string `json:"instantlyApiKey"`
	GoogleSheetURL  string `json:"googleSheetUrl"`
	ShareEmail      string `json:"shareEmail"`
	ReportEmail     string `json:"reportEmail"`
	RunTime         string `json:"runTime"`
}

// NewConfigView projects a tenant record onto its integration settings.
func NewConfigView(t *models.Tenant) *ConfigView {
	return &ConfigView{
		InstantlyAPIKey: models.Deref(t.InstantlyAPIKey),
		GoogleSheetURL:  models.Deref(t.GoogleSheetURL),
		ShareEmail:      models.Deref(t.ShareEmail),
		ReportEmail:     models.Deref(t.ReportEmail),
		RunTime:         models.Deref(t.RunTime),
	}
}

type SeedInput struct {
	Subdomain       string
	ClientName      string
	ProjectName     string
	Status          string
	ProgressPercent int
	CurrentPhase    string
	NextMilestone   string
	BlueprintPath   *string
}

type StatusUpdate struct {
	Status          *string
	ProgressPercent *int
	CurrentPhase    *string
	NextMilestone   *string
}

type configService struct {
	repo repository.TenantRepository
	now  func() time.Time
}

func NewConfigService(repo repository.TenantRepository) ConfigService {
	return &configService{repo: repo, now: time.Now}
}

// Ensure interfaces are satisfied at compile time
var _ ConfigService = (*configService)(nil)

func (s *configService) GetConfig(ctx context.Context, subdomain string) (*ConfigView, error) {
	t, err := s.repo.GetBySubdomain(ctx, subdomain)
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return &ConfigView{}, nil
		}
		logger.L().Error("get config failed", zap.String("subdomain", subdomain), zap.Error(err))
		return nil, asInternal(err, "load config failed")
	}
	return NewConfigView(t), nil
}

func (s *configService) GetProject(ctx context.Context, subdomain string) (*models.Tenant, error) {
	t, err := s.repo.GetBySubdomain(ctx, subdomain)
	if err != nil {
		if !appErr.IsCode(err, appErr.CodeNotFound) {
			logger.L().Error("get project failed", zap.String("subdomain", subdomain), zap.Error(err))
			return nil, asInternal(err, "load project failed")
		}
		return nil, err
	}
	return t, nil
}

func (s *configService) UpsertConfig(ctx context.Context, subdomain string, patch models.TenantPatch) error {
	subdomain = strings.TrimSpace(subdomain)
	if subdomain == "" {
		return appErr.New(appErr.CodeInvalid, "domain is required")
	}
	logger.L().Info("upsert config", zap.String("subdomain", subdomain), zap.Strings("fields", patch.Columns()))

	create := s.defaultRecord(subdomain)
	patch.Apply(create)
	if err := validateRecord(create); err != nil {
		return err
	}

	if err := s.repo.Upsert(ctx, create, patch); err != nil {
		logger.L().Error("upsert config failed", zap.String("subdomain", subdomain), zap.Error(err))
		return asInternal(err, "save config failed")
	}
	return nil
}

func (s *configService) SeedProject(ctx context.Context, in SeedInput) (*models.Tenant, bool, error) {
	sub := strings.TrimSpace(in.Subdomain)
	if sub == "" {
		return nil, false, appErr.New(appErr.CodeInvalid, "subdomain is required")
	}

	t := s.defaultRecord(sub)
	t.Status = models.StatusPlanning
	if in.ClientName != "" {
		t.ClientName = in.ClientName
	}
	if in.ProjectName != "" {
		t.ProjectName = in.ProjectName
	}
	if in.Status != "" {
		t.Status = in.Status
	}
	if in.CurrentPhase != "" {
		t.CurrentPhase = in.CurrentPhase
	}
	if in.NextMilestone != "" {
		t.NextMilestone = in.NextMilestone
	}
	t.ProgressPercent = in.ProgressPercent
	t.BlueprintPath = in.BlueprintPath
	if err := validateRecord(t); err != nil {
		return nil, false, err
	}

	created, err := s.repo.CreateIfAbsent(ctx, t)
	if err != nil {
		logger.L().Error("seed project failed", zap.String("subdomain", sub), zap.Error(err))
		return nil, false, asInternal(err, "seed project failed")
	}
	if !created {
		existing, err := s.GetProject(ctx, sub)
		if err != nil {
			return nil, false, err
		}
		logger.L().Info("project already seeded", zap.String("subdomain", sub))
		return existing, false, nil
	}

	logger.L().Info("project seeded", zap.String("subdomain", sub), zap.String("project_id", t.ID.String()))
	return t, true, nil
}

func (s *configService) ListProjects(ctx context.Context) ([]models.Tenant, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, asInternal(err, "list projects failed")
	}
	return out, nil
}

func (s *configService) UpdateStatus(ctx context.Context, subdomain string, u StatusUpdate) error {
	if u.ProgressPercent != nil && (*u.ProgressPercent < 0 || *u.ProgressPercent > 100) {
		return appErr.New(appErr.CodeInvalid, "progress_percent must be between 0 and 100")
	}
	return s.UpsertConfig(ctx, subdomain, models.TenantPatch{
		Status:          u.Status,
		ProgressPercent: u.ProgressPercent,
		CurrentPhase:    u.CurrentPhase,
		NextMilestone:   u.NextMilestone,
	})
}

func (s *configService) defaultRecord(subdomain string) *models.Tenant {
	return &models.Tenant{
		Subdomain:     subdomain,
		ClientName:    capitalize(subdomain),
		ProjectName:   DefaultProjectName,
		Status:        models.StatusActive,
		CurrentPhase:  DefaultCurrentPhase,
		NextMilestone: DefaultNextMilestone,
		LastUpdated:   s.now().UTC().Format(time.RFC3339),
	}
}

// validateRecord checks the model's validate tags before anything is written.
// Fields the patch did not supply hold valid defaults, so only supplied values can fail.
func validateRecord(t *models.Tenant) error {
	if err := validators.New().Struct(t); err != nil {
		return appErr.Wrap(err, appErr.CodeInvalid, "invalid project record")
	}
	return nil
}

// asInternal keeps store errors distinguishable from a missing tenant.
func asInternal(err error, msg string) error {
	if appErr.IsCode(err, appErr.CodeInternal) {
		return err
	}
	return appErr.Wrap(err, appErr.CodeInternal, msg)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
