package main

import (
	"context"
	"os"
	"time"

	"github.com/knobase/site-api/config"
	"github.com/knobase/site-api/internal/log"
	"github.com/knobase/site-api/pkg/migrations"
	"github.com/knobase/site-api/pkg/utils"
)

// Runs the SQL migrations and exits. Deployments invoke this before
// starting the server binary.
func main() {
	logger := log.NewLoggerWithJSONOutput()

	config.InitializeEnvFile(logger)

	dbCfg := &config.DBConfig{}
	db, err := config.NewDatabase(logger, dbCfg)
	if err != nil {
		logger.Error("Failed to connect to database for migration", "error", err.Error())
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get SQL DB instance for migration", "error", err.Error())
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("Failed to close SQL DB after migration", "error", err.Error())
		}
	}()

	migrationsDir := utils.GetEnvTrimmedOrDefault("MIGRATIONS_DIR", "migrations")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := migrations.Up(ctx, sqlDB, migrations.Config{Dir: migrationsDir, Logger: logger}); err != nil {
		logger.Error("Database migration failed", "error", err.Error())
		os.Exit(1)
	}

	logger.Info("Database migrations completed")
}
