package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/client-portal/engine/pkg/config"
	"github.com/client-portal/engine/pkg/logger"

	"github.com/client-portal/engine/internal/queue/tasks"
	"github.com/client-portal/engine/internal/scripts"
	"github.com/client-portal/engine/internal/services"
	"github.com/client-portal/engine/internal/store"
)

func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.RedisAddr == "" {
		log.Fatal("REDIS_ADDR is required for the worker")
	}
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	}

	// Initialize the tenant store for task handlers
	ctx := context.Background()
	st, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal("failed to open tenant store", zap.Error(err))
	}
	defer st.Close()

	configSvc := services.NewConfigService(st.Tenants)
	runner := scripts.NewExecRunner(scripts.Options{
		Python:  cfg.PythonBin,
		Dir:     cfg.ScriptsDir,
		Timeout: cfg.ScriptTimeout,
	})

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.AsynqConcurrency,
		Queues:      map[string]int{tasks.QueueDefault: 1},
	})

	mux := asynq.NewServeMux()
	mux.Handle(tasks.TypeDailyCycle, tasks.NewDailyCycleHandler(configSvc, runner))

	// Tenants' run_time values are re-read on every sync.
	scheduler, err := asynq.NewPeriodicTaskManager(asynq.PeriodicTaskManagerOpts{
		RedisConnOpt:               redisOpt,
		PeriodicTaskConfigProvider: tasks.NewScheduleProvider(configSvc),
		SyncInterval:               5 * time.Minute,
	})
	if err != nil {
		log.Fatal("failed to create scheduler", zap.Error(err))
	}

	if err := scheduler.Start(); err != nil {
		log.Fatal("failed to start scheduler", zap.Error(err))
	}
	logger.L().Info("daily cycle scheduler started")

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("asynq worker starting", zap.Int("concurrency", cfg.AsynqConcurrency))
		if err := srv.Run(mux); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.L().Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.L().Error("worker stopped with error", zap.Error(err))
	}

	scheduler.Shutdown()
	// Allow in-flight tasks to finish gracefully
	srv.Shutdown()
}
