package db

import (
	"context"
	"fmt"
	"time"

	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultMaxAttempts     = 10
	defaultDelayBetweenTry = 2 * time.Second
)

func dialector(cfg *config.Config) gorm.Dialector {
	if cfg.DBDriver == config.DriverSQLite {
		return sqlite.Open(cfg.DSN())
	}
	return postgres.Open(cfg.DSN())
}

// Open connects once and pings the database.
func Open(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.GinMode == "release" {
		logLevel = logger.Error
	}

	db, err := gorm.Open(dialector(cfg), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// ConnectWithRetry retries Open until it succeeds, ctx is done or the
// attempts run out.
func ConnectWithRetry(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	var err error

	for attempt := 1; attempt <= defaultMaxAttempts; attempt++ {
		var db *gorm.DB
		db, err = Open(ctx, cfg)
		if err == nil {
			return db, nil
		}

		log.Warn("db not ready",
			zap.String("driver", cfg.DBDriver),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", defaultMaxAttempts),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(defaultDelayBetweenTry):
		}
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", defaultMaxAttempts, err)
}
