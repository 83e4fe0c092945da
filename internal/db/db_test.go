package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConnectWithRetry_SQLite(t *testing.T) {
	cfg := &config.Config{
		GinMode:    "test",
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "authors.db"),
	}

	gdb, err := ConnectWithRetry(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.Equal(t, "sqlite", gdb.Dialector.Name())

	var fk int
	require.NoError(t, gdb.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestConnectWithRetry_StopsOnCancel(t *testing.T) {
	cfg := &config.Config{
		GinMode:   "test",
		DBDriver:  config.DriverPostgres,
		DBHost:    "127.0.0.1",
		DBPort:    "1",
		DBUser:    "nobody",
		DBName:    "nothing",
		DBSSLMode: "disable",
		TZ:        "UTC",
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ConnectWithRetry(ctx, cfg, zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}
