package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/client-portal/engine/internal/models"
	"github.com/client-portal/engine/internal/scripts"
	"github.com/client-portal/engine/internal/services"
	appErr "github.com/client-portal/engine/pkg/errors"
	"github.com/client-portal/engine/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests (required by tasks)
	_, err := logger.Init("error", "json")
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

type mockConfigService struct {
	mock.Mock
}

func (m *mockConfigService) GetConfig(ctx context.Context, subdomain string) (*services.ConfigView, error) {
	args := m.Called(ctx, subdomain)
	if v := args.Get(0); v != nil {
		return v.(*services.ConfigView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConfigService) GetProject(ctx context.Context, subdomain string) (*models.Tenant, error) {
	args := m.Called(ctx, subdomain)
	if v := args.Get(0); v != nil {
		return v.(*models.Tenant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConfigService) UpsertConfig(ctx context.Context, subdomain string, patch models.TenantPatch) error {
	return m.Called(ctx, subdomain, patch).Error(0)
}

func (m *mockConfigService) SeedProject(ctx context.Context, in services.SeedInput) (*models.Tenant, bool, error) {
	args := m.Called(ctx, in)
	if v := args.Get(0); v != nil {
		return v.(*models.Tenant), args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *mockConfigService) ListProjects(ctx context.Context) ([]models.Tenant, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Tenant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConfigService) UpdateStatus(ctx context.Context, subdomain string, u services.StatusUpdate) error {
	return m.Called(ctx, subdomain, u).Error(0)
}

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Run(ctx context.Context, script string, args ...string) (*scripts.Result, error) {
	called := m.Called(ctx, script, args)
	if v := called.Get(0); v != nil {
		return v.(*scripts.Result), called.Error(1)
	}
	return nil, called.Error(1)
}

func strPtr(s string) *string { return &s }

func dailyTask(t *testing.T, sub string, dryRun bool) *asynq.Task {
	t.Helper()
	task, err := NewDailyCycleTask(sub, dryRun, 0)
	require.NoError(t, err)
	return task
}

func TestNewDailyCycleTaskPayload(t *testing.T) {
	task := dailyTask(t, "acme", true)
	require.Equal(t, TypeDailyCycle, task.Type())

	var p DailyCyclePayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	require.Equal(t, DailyCyclePayload{Subdomain: "acme", DryRun: true}, p)

	_, err := NewDailyCycleTask("", false, 0)
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}

func TestDailyCycleRunsScriptWithStoredConfig(t *testing.T) {
	svc := new(mockConfigService)
	runner := new(mockRunner)
	svc.On("GetProject", mock.Anything, "acme").Return(&models.Tenant{
		Subdomain:       "acme",
		InstantlyAPIKey: strPtr("key-1"),
		GoogleSheetURL:  strPtr(`"https://sheet/1"`),
	}, nil)
	runner.On("Run", mock.Anything, scripts.RunDailyCycle, []string{"--key", "key-1", "--sheet", "https://sheet/1", "--dry-run"}).
		Return(&scripts.Result{Stdout: `{"success":true}`}, nil)

	h := NewDailyCycleHandler(svc, runner)
	require.NoError(t, h.ProcessTask(context.Background(), dailyTask(t, "acme", true)))

	svc.AssertExpectations(t)
	runner.AssertExpectations(t)
}

func TestDailyCycleUnknownTenantSkipsRetry(t *testing.T) {
	svc := new(mockConfigService)
	svc.On("GetProject", mock.Anything, "ghost").Return(nil, appErr.New(appErr.CodeNotFound, "project not found"))

	err := NewDailyCycleHandler(svc, new(mockRunner)).ProcessTask(context.Background(), dailyTask(t, "ghost", false))
	require.ErrorIs(t, err, asynq.SkipRetry)
}

func TestDailyCycleMissingKeySkipsRetry(t *testing.T) {
	svc := new(mockConfigService)
	runner := new(mockRunner)
	svc.On("GetProject", mock.Anything, "acme").Return(&models.Tenant{Subdomain: "acme"}, nil)

	err := NewDailyCycleHandler(svc, runner).ProcessTask(context.Background(), dailyTask(t, "acme", false))
	require.ErrorIs(t, err, asynq.SkipRetry)
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func TestDailyCycleStoreErrorIsRetried(t *testing.T) {
	svc := new(mockConfigService)
	svc.On("GetProject", mock.Anything, "acme").Return(nil, appErr.Wrap(errors.New("conn"), appErr.CodeInternal, "load project failed"))

	err := NewDailyCycleHandler(svc, new(mockRunner)).ProcessTask(context.Background(), dailyTask(t, "acme", false))
	require.Error(t, err)
	require.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestDailyCycleScriptReportedFailure(t *testing.T) {
	svc := new(mockConfigService)
	runner := new(mockRunner)
	svc.On("GetProject", mock.Anything, "acme").Return(&models.Tenant{Subdomain: "acme", InstantlyAPIKey: strPtr("k")}, nil)
	runner.On("Run", mock.Anything, scripts.RunDailyCycle, []string{"--key", "k"}).
		Return(&scripts.Result{Stdout: `{"success":false,"error":"quota"}`}, nil)

	err := NewDailyCycleHandler(svc, runner).ProcessTask(context.Background(), dailyTask(t, "acme", false))
	require.True(t, appErr.IsCode(err, appErr.CodeUpstream))
}

func TestDailyCycleBadPayloadSkipsRetry(t *testing.T) {
	task := asynq.NewTask(TypeDailyCycle, []byte("{"))
	err := NewDailyCycleHandler(new(mockConfigService), new(mockRunner)).ProcessTask(context.Background(), task)
	require.ErrorIs(t, err, asynq.SkipRetry)
}

func TestCronSpec(t *testing.T) {
	spec, err := CronSpec("09:05")
	require.NoError(t, err)
	require.Equal(t, "5 9 * * *", spec)

	for _, bad := range []string{"", "9", "24:00", "12:60", "ab:cd"} {
		_, err := CronSpec(bad)
		require.Error(t, err, bad)
	}
}

func TestScheduleProviderSkipsUnschedulableTenants(t *testing.T) {
	svc := new(mockConfigService)
	svc.On("ListProjects", mock.Anything).Return([]models.Tenant{
		{Subdomain: "acme", InstantlyAPIKey: strPtr("k"), RunTime: strPtr("07:30")},
		{Subdomain: "nokey", RunTime: strPtr("07:30")},
		{Subdomain: "notime", InstantlyAPIKey: strPtr("k")},
		{Subdomain: "badtime", InstantlyAPIKey: strPtr("k"), RunTime: strPtr("soon")},
	}, nil)

	p := NewScheduleProvider(svc)
	p.timeout = time.Second
	cfgs, err := p.GetConfigs()
	require.NoError(t, err)
	require.Len(t, cfgs, 1)
	require.Equal(t, "30 7 * * *", cfgs[0].Cronspec)

	var payload DailyCyclePayload
	require.NoError(t, json.Unmarshal(cfgs[0].Task.Payload(), &payload))
	require.Equal(t, "acme", payload.Subdomain)
}
