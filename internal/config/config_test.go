package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GIN_MODE", "release")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "require", cfg.DBSSLMode)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, 20.0, cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
	assert.Empty(t, cfg.EnvFile)
	assert.Equal(t,
		"host=localhost user=postgres password= dbname=postgres port=5432 sslmode=require TimeZone=UTC",
		cfg.DSN(),
	)
}

func TestLoad_DebugReadsEnvFileFromParent(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "cmd", "server")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env.dev"),
		[]byte("DB_DRIVER=sqlite\nSQLITE_PATH=dev.db\nPORT=9090\n"), 0o600))

	chdir(t, nested)
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("PORT", "7070")
	// godotenv.Load does not override; make sure these start unset
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SQLITE_PATH", "")
	os.Unsetenv("DB_DRIVER")
	os.Unsetenv("SQLITE_PATH")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, ".env.dev"), cfg.EnvFile)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "7070", cfg.Port)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "file:dev.db?_foreign_keys=on", cfg.DSN())
}

func TestLoad_InvalidValues(t *testing.T) {
	chdir(t, t.TempDir())

	tests := map[string]string{
		"DB_DRIVER":        "mysql",
		"DB_AUTO_MIGRATE":  "maybe",
		"RATE_LIMIT_RPS":   "fast",
		"RATE_LIMIT_BURST": "lots",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv("GIN_MODE", "release")
			t.Setenv(key, value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
