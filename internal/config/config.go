package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	GinMode   string
	Port      string
	TZ        string
	LogLevel  string
	DBDriver  string
	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	DBSSLMode string

	SQLitePath  string
	AutoMigrate bool

	RateLimitRPS   float64
	RateLimitBurst int

	// EnvFile is the .env file that was loaded, if any.
	EnvFile string
}

// findEnvFile walks up from the working directory looking for name.
func findEnvFile(name string) string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load reads the configuration from the environment. In debug mode a .env.dev
// file found in the working directory or one of its parents is loaded first;
// variables already set in the environment win.
func Load() (*Config, error) {
	var envFile string
	if getenv("GIN_MODE", "debug") == "debug" {
		if path := findEnvFile(".env.dev"); path != "" {
			if err := godotenv.Load(path); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
			envFile = path
		}
	}

	cfg := &Config{
		GinMode:   getenv("GIN_MODE", "debug"),
		Port:      getenv("PORT", "8080"),
		TZ:        getenv("TZ", "UTC"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		DBDriver:  getenv("DB_DRIVER", DriverPostgres),
		DBHost:    getenv("DB_HOST", "localhost"),
		DBPort:    getenv("DB_PORT", "5432"),
		DBUser:    getenv("DB_USER", "postgres"),
		DBPass:    getenv("DB_PASS", ""),
		DBName:    getenv("DB_NAME", "postgres"),
		DBSSLMode: os.Getenv("DB_SSLMODE"),

		SQLitePath: getenv("SQLITE_PATH", "authors.db"),
		EnvFile:    envFile,
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	var err error
	if cfg.AutoMigrate, err = getbool("DB_AUTO_MIGRATE", cfg.GinMode != "release"); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getfloat("RATE_LIMIT_RPS", 20); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getint("RATE_LIMIT_BURST", 40); err != nil {
		return nil, err
	}

	switch cfg.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, cfg.DBDriver)
	}

	return cfg, nil
}

func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return "file:" + c.SQLitePath + "?_foreign_keys=on"
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getint(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getfloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
