package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/client-portal/engine/internal/api"
	"github.com/client-portal/engine/internal/api/handlers"
	"github.com/client-portal/engine/internal/backend"
	"github.com/client-portal/engine/internal/hostroute"
	"github.com/client-portal/engine/internal/queue/tasks"
	"github.com/client-portal/engine/internal/scripts"
	"github.com/client-portal/engine/internal/services"
	"github.com/client-portal/engine/internal/store"
	"github.com/client-portal/engine/pkg/config"
	"github.com/client-portal/engine/pkg/logger"
)

// @title           Client Portal Engine API
// @version         1.0
// @description     Multi-tenant client portal: tenant routing, integration settings, automation scripts and admin.
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting client portal engine",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
		zap.String("root_domain", cfg.RootDomain),
		zap.String("store", cfg.StoreDriver),
	)

	ctx := context.Background()
	st, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal("failed to open tenant store", zap.Error(err))
	}
	defer st.Close()

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET not set, admin routes will reject every token")
	}
	if cfg.DiagKey == "" {
		log.Info("DIAG_KEY not set, credential diagnostics disabled")
	}

	configSvc := services.NewConfigService(st.Tenants)
	tokens := services.NewTokenService([]byte(cfg.JWTSecret))

	runner := scripts.NewExecRunner(scripts.Options{
		Python:  cfg.PythonBin,
		Dir:     cfg.ScriptsDir,
		Timeout: cfg.ScriptTimeout,
	})

	backendClient := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout)
	if !backendClient.Configured() {
		log.Warn("BACKEND_URL not set, /api/proxy will fail")
	}

	// The admin run endpoint needs Redis; without it the handler answers 503.
	var queue tasks.Enqueuer
	if cfg.RedisAddr != "" {
		client := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer client.Close()
		queue = client
	}

	router := api.NewRouter(api.Dependencies{
		Resolver: hostroute.New(hostroute.Options{
			RootDomain:      cfg.RootDomain,
			LocalRootDomain: cfg.LocalRootDomain,
			BareHosts:       cfg.BareHosts,
		}),
		Tokens:         tokens,
		CORSOrigins:    cfg.CORSOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,

		HealthHandler:    handlers.NewHealthHandler(st.Tenants),
		ConfigHandler:    handlers.NewConfigHandler(configSvc),
		ScriptsHandler:   handlers.NewScriptsHandler(runner, cfg.DiagKey),
		ProxyHandler:     handlers.NewProxyHandler(backendClient),
		DashboardHandler: handlers.NewDashboardHandler(configSvc),
		AdminHandler:     handlers.NewAdminHandler(configSvc, queue),
	})

	// WriteTimeout covers the slowest script run.
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.ScriptTimeout + 30*time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
