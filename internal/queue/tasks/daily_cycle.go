package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/client-portal/engine/internal/models"
	"github.com/client-portal/engine/internal/scripts"
	"github.com/client-portal/engine/internal/services"
	appErr "github.com/client-portal/engine/pkg/errors"
	"github.com/client-portal/engine/pkg/logger"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeDailyCycle = "tenant:daily-cycle"
	QueueDefault   = "default"
)

// DailyCyclePayload is the task payload for one tenant's daily run.
type DailyCyclePayload struct {
	Subdomain string `json:"subdomain"`
	DryRun    bool   `json:"dry_run"`
}

// NewDailyCycleTask builds a daily-cycle task. Runs for one tenant are unique
// for the given window so overlapping triggers collapse into one.
func NewDailyCycleTask(subdomain string, dryRun bool, uniqueFor time.Duration) (*asynq.Task, error) {
	if subdomain == "" {
		return nil, appErr.New(appErr.CodeInvalid, "subdomain is required")
	}
	b, err := json.Marshal(DailyCyclePayload{Subdomain: subdomain, DryRun: dryRun})
	if err != nil {
		return nil, err
	}
	opts := []asynq.Option{asynq.Queue(QueueDefault), asynq.MaxRetry(3), asynq.Timeout(30 * time.Minute)}
	if uniqueFor > 0 {
		opts = append(opts, asynq.Unique(uniqueFor))
	}
	return asynq.NewTask(TypeDailyCycle, b, opts...), nil
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DailyCycleHandler runs the daily outbound cycle with the tenant's stored settings.
type DailyCycleHandler struct {
	svc    services.ConfigService
	runner scripts.Runner
}

func NewDailyCycleHandler(svc services.ConfigService, runner scripts.Runner) *DailyCycleHandler {
	return &DailyCycleHandler{svc: svc, runner: runner}
}

func (h *DailyCycleHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p DailyCyclePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		logger.L().Error("invalid daily cycle payload", zap.Error(err))
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	log := logger.L().With(zap.String("subdomain", p.Subdomain), zap.Bool("dry_run", p.DryRun))
	log.Info("handling daily cycle task")

	tenant, err := h.svc.GetProject(ctx, p.Subdomain)
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			log.Warn("daily cycle for unknown tenant")
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		return err
	}

	key := models.Deref(tenant.InstantlyAPIKey)
	if !scripts.ValidToken(key) {
		log.Warn("tenant has no usable api key")
		return fmt.Errorf("%w: tenant %s has no usable api key", asynq.SkipRetry, p.Subdomain)
	}

	args := []string{"--key", key}
	if sheet := models.Deref(tenant.GoogleSheetURL); sheet != "" {
		args = append(args, "--sheet", scripts.CleanURL(sheet))
	}
	if p.DryRun {
		args = append(args, "--dry-run")
	}

	res, err := h.runner.Run(ctx, scripts.RunDailyCycle, args...)
	if err != nil {
		log.Error("daily cycle script failed", zap.Error(err))
		return err
	}
	out, err := res.JSON()
	if err != nil {
		log.Error("daily cycle output unparseable", zap.String("stdout", res.Stdout))
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	if ok, _ := out["success"].(bool); !ok {
		log.Warn("daily cycle reported failure", zap.Any("result", out))
		return appErr.New(appErr.CodeUpstream, fmt.Sprintf("daily cycle failed for %s", p.Subdomain))
	}

	log.Info("daily cycle completed", zap.Duration("duration", res.Duration))
	return nil
}
