package services

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/client-portal/engine/internal/models"
	"github.com/client-portal/engine/internal/repository"
	appErr "github.com/client-portal/engine/pkg/errors"
	"github.com/client-portal/engine/pkg/logger"
)

func TestMain(m *testing.M) {
	_, err := logger.Init("error", "json")
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

var fixedNow = time.Date(2026, 5, 1, 12, 30, 0, 0, time.UTC)

func newTestService(repo repository.TenantRepository) *configService {
	return &configService{repo: repo, now: func() time.Time { return fixedNow }}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

type mockTenantRepo struct {
	mock.Mock
}

func (m *mockTenantRepo) GetBySubdomain(ctx context.Context, subdomain string) (*models.Tenant, error) {
	args := m.Called(ctx, subdomain)
	if v := args.Get(0); v != nil {
		return v.(*models.Tenant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTenantRepo) Upsert(ctx context.Context, create *models.Tenant, patch models.TenantPatch) error {
	return m.Called(ctx, create, patch).Error(0)
}

func (m *mockTenantRepo) CreateIfAbsent(ctx context.Context, t *models.Tenant) (bool, error) {
	args := m.Called(ctx, t)
	return args.Bool(0), args.Error(1)
}

func (m *mockTenantRepo) List(ctx context.Context) ([]models.Tenant, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Tenant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTenantRepo) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestGetConfigMissingTenantReturnsEmptyFields(t *testing.T) {
	svc := newTestService(repository.NewMemoryTenantRepository())

	view, err := svc.GetConfig(context.Background(), "ghost")
	require.NoError(t, err)
	require.Equal(t, ConfigView{}, *view)
}

func TestGetProjectMissingTenantIsNotFound(t *testing.T) {
	svc := newTestService(repository.NewMemoryTenantRepository())

	_, err := svc.GetProject(context.Background(), "ghost")
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestUpsertCreatesDefaultRecord(t *testing.T) {
	repo := repository.NewMemoryTenantRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	err := svc.UpsertConfig(ctx, "newclient", models.TenantPatch{ShareEmail: strPtr("a@b.c")})
	require.NoError(t, err)

	p, err := svc.GetProject(ctx, "newclient")
	require.NoError(t, err)
	require.Equal(t, "Newclient", p.ClientName)
	require.Equal(t, "Verification Project", p.ProjectName)
	require.Equal(t, models.StatusActive, p.Status)
	require.Equal(t, 0, p.ProgressPercent)
	require.Equal(t, "setup", p.CurrentPhase)
	require.Equal(t, "init", p.NextMilestone)
	require.Equal(t, "2026-05-01T12:30:00Z", p.LastUpdated)

	view, err := svc.GetConfig(ctx, "newclient")
	require.NoError(t, err)
	require.Equal(t, ConfigView{ShareEmail: "a@b.c"}, *view)
}

func TestUpsertPreservesUnsuppliedFields(t *testing.T) {
	svc := newTestService(repository.NewMemoryTenantRepository())
	ctx := context.Background()

	require.NoError(t, svc.UpsertConfig(ctx, "acme", models.TenantPatch{
		InstantlyAPIKey: strPtr("k1"),
		GoogleSheetURL:  strPtr("https://sheet"),
	}))
	require.NoError(t, svc.UpsertConfig(ctx, "acme", models.TenantPatch{ReportEmail: strPtr("r@acme.io")}))

	view, err := svc.GetConfig(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, "k1", view.InstantlyAPIKey)
	require.Equal(t, "https://sheet", view.GoogleSheetURL)
	require.Equal(t, "r@acme.io", view.ReportEmail)
	require.Equal(t, "", view.RunTime)
}

func TestUpsertRefreshesLastUpdated(t *testing.T) {
	svc := newTestService(repository.NewMemoryTenantRepository())
	ctx := context.Background()
	require.NoError(t, svc.UpsertConfig(ctx, "acme", models.TenantPatch{}))

	svc.now = func() time.Time { return fixedNow.Add(time.Hour) }
	require.NoError(t, svc.UpsertConfig(ctx, "acme", models.TenantPatch{RunTime: strPtr("08:00")}))

	p, err := svc.GetProject(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, "2026-05-01T13:30:00Z", p.LastUpdated)
}

func TestUpsertRejectsEmptySubdomain(t *testing.T) {
	svc := newTestService(repository.NewMemoryTenantRepository())

	err := svc.UpsertConfig(context.Background(), "  ", models.TenantPatch{})
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}

func TestUpsertStoreFailureIsInternal(t *testing.T) {
	repo := new(mockTenantRepo)
	repo.On("Upsert", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection reset"))
	svc := newTestService(repo)

	err := svc.UpsertConfig(context.Background(), "acme", models.TenantPatch{ShareEmail: strPtr("x@y.z")})
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeInternal))
	require.False(t, appErr.IsCode(err, appErr.CodeNotFound))
	require.Contains(t, err.Error(), "connection reset")
	repo.AssertExpectations(t)
}

func TestGetConfigStoreFailureIsInternal(t *testing.T) {
	repo := new(mockTenantRepo)
	repo.On("GetBySubdomain", mock.Anything, "acme").Return(nil, errors.New("timeout"))
	svc := newTestService(repo)

	_, err := svc.GetConfig(context.Background(), "acme")
	require.True(t, appErr.IsCode(err, appErr.CodeInternal))
}

func TestUpsertPassesSuppliedColumnsOnly(t *testing.T) {
	repo := new(mockTenantRepo)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(t *models.Tenant) bool {
		return t.Subdomain == "acme" && models.Deref(t.ShareEmail) == "x@y.z" && t.ClientName == "Acme"
	}), mock.MatchedBy(func(p models.TenantPatch) bool {
		cols := p.Columns()
		return len(cols) == 1 && cols[0] == "share_email"
	})).Return(nil)
	svc := newTestService(repo)

	require.NoError(t, svc.UpsertConfig(context.Background(), " acme ", models.TenantPatch{ShareEmail: strPtr("x@y.z")}))
	repo.AssertExpectations(t)
}

func TestConcurrentUpsertsLeaveOneValidRecord(t *testing.T) {
	svc := newTestService(repository.NewMemoryTenantRepository())
	ctx := context.Background()
	emails := []string{"a@x.io", "b@x.io", "c@x.io", "d@x.io"}

	var wg sync.WaitGroup
	for _, e := range emails {
		wg.Add(1)
		go func(e string) {
			defer wg.Done()
			assert.NoError(t, svc.UpsertConfig(ctx, "race", models.TenantPatch{ShareEmail: strPtr(e)}))
		}(e)
	}
	wg.Wait()

	all, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Contains(t, emails, models.Deref(all[0].ShareEmail))
}

func TestSeedProjectIsInsertIfAbsent(t *testing.T) {
	svc := newTestService(repository.NewMemoryTenantRepository())
	ctx := context.Background()

	p, created, err := svc.SeedProject(ctx, SeedInput{
		Subdomain:       "malak",
		ClientName:      "Malak",
		ProjectName:     "Lead Engine",
		ProgressPercent: 10,
		BlueprintPath:   strPtr("/blueprints/malak.md"),
	})
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, models.StatusPlanning, p.Status)
	require.Equal(t, "Lead Engine", p.ProjectName)

	again, created, err := svc.SeedProject(ctx, SeedInput{Subdomain: "malak", ClientName: "Other"})
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, "Malak", again.ClientName)
}

func TestUpdateStatusValidatesProgress(t *testing.T) {
	svc := newTestService(repository.NewMemoryTenantRepository())
	ctx := context.Background()

	err := svc.UpdateStatus(ctx, "acme", StatusUpdate{ProgressPercent: intPtr(101)})
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	require.NoError(t, svc.UpdateStatus(ctx, "acme", StatusUpdate{
		Status:          strPtr(models.StatusBuilding),
		ProgressPercent: intPtr(55),
	}))
	p, err := svc.GetProject(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, models.StatusBuilding, p.Status)
	require.Equal(t, 55, p.ProgressPercent)
}

func TestWritesRejectInvalidRecords(t *testing.T) {
	repo := new(mockTenantRepo)
	svc := newTestService(repo)
	ctx := context.Background()

	err := svc.UpsertConfig(ctx, "acme", models.TenantPatch{ClientName: strPtr("")})
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	err = svc.UpsertConfig(ctx, "acme", models.TenantPatch{ProgressPercent: intPtr(-1)})
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	_, _, err = svc.SeedProject(ctx, SeedInput{Subdomain: "acme", ProgressPercent: 250})
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
}
