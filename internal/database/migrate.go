package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bruske/smashbot/internal/config"
	"github.com/bruske/smashbot/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"log/slog"
)

// RunMigrations applies all up migrations from the migrations directory.
func RunMigrations(cfg config.DatabaseConfig) error {
	ctx := logger.Background()
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode,
	)
	if err := WaitFor(dsn, 30*time.Second); err != nil {
		logger.Error(ctx, "db", "db.migrate.wait",
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("database not ready: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	sourceURL := "file://" + filepath.Join(cwd, "migrations")

	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		logger.Error(ctx, "db", "db.migrate.init",
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}

	fromVer, _, _ := m.Version()
	start := time.Now()
	upErr := m.Up()
	took := time.Since(start)

	switch upErr {
	case nil, migrate.ErrNoChange:
	default:
		logger.Error(ctx, "db", "db.migrate.apply",
			slog.String("err", upErr.Error()),
			slog.Duration("duration", logger.RoundMS(took)),
		)
		return fmt.Errorf("migration execution failed: %w", upErr)
	}

	toVer, _, _ := m.Version()
	logger.Info(ctx, "db", "db.migrate",
		slog.Uint64("from_ver", uint64(fromVer)),
		slog.Uint64("to_ver", uint64(toVer)),
		slog.Duration("duration", logger.RoundMS(took)),
	)
	return nil
}
