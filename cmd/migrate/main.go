package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/client-portal/engine/pkg/config"
	"github.com/client-portal/engine/pkg/database"
	"github.com/client-portal/engine/pkg/logger"
)

func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required for migrations")
	}

	db, err := database.OpenPostgres(context.Background(), cfg.DatabaseURL, database.Options{Debug: cfg.Debug()})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := runMigrations(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	fmt.Fprintln(os.Stdout, "migrations completed")
}
