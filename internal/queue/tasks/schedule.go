package tasks

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/client-portal/engine/internal/models"
	"github.com/client-portal/engine/internal/services"
	"github.com/client-portal/engine/pkg/logger"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ScheduleProvider turns each tenant's run_time into a daily cron entry. It
// implements asynq.PeriodicTaskConfigProvider and is re-read on every sync.
type ScheduleProvider struct {
	svc     services.ConfigService
	timeout time.Duration
}

func NewScheduleProvider(svc services.ConfigService) *ScheduleProvider {
	return &ScheduleProvider{svc: svc, timeout: 10 * time.Second}
}

var _ asynq.PeriodicTaskConfigProvider = (*ScheduleProvider)(nil)

func (p *ScheduleProvider) GetConfigs() ([]*asynq.PeriodicTaskConfig, error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	tenants, err := p.svc.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	var out []*asynq.PeriodicTaskConfig
	for _, t := range tenants {
		runTime := models.Deref(t.RunTime)
		if runTime == "" || models.Deref(t.InstantlyAPIKey) == "" {
			continue
		}
		spec, err := CronSpec(runTime)
		if err != nil {
			logger.L().Warn("skipping tenant with bad run_time", zap.String("subdomain", t.Subdomain), zap.String("run_time", runTime))
			continue
		}
		task, err := NewDailyCycleTask(t.Subdomain, false, time.Hour)
		if err != nil {
			continue
		}
		out = append(out, &asynq.PeriodicTaskConfig{Cronspec: spec, Task: task})
	}
	return out, nil
}

// CronSpec converts "HH:MM" (24h) into a daily cron expression.
func CronSpec(runTime string) (string, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(runTime), ":")
	if !ok {
		return "", fmt.Errorf("run_time %q is not HH:MM", runTime)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return "", fmt.Errorf("run_time %q has invalid hour", runTime)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return "", fmt.Errorf("run_time %q has invalid minute", runTime)
	}
	return fmt.Sprintf("%d %d * * *", m, h), nil
}
