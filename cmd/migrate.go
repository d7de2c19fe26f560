package cmd

import (
	"fmt"

	"github.com/inkpad/inkpad/db"
	"github.com/inkpad/inkpad/internal/config"
	"github.com/inkpad/inkpad/internal/log"
)

// runMigrate applies pending database migrations and exits.
func runMigrate() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := log.New(log.Config{Level: cfg.SlogLevel(), JSON: cfg.LogJSON})

	if err := db.Migrate(cfg.PostgresURL(), logger); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	return nil
}
