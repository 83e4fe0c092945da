// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/config"
)

// Each dialect has its own directory; sqlite needs DATETIME columns for
// mattn/go-sqlite3 to scan timestamps back into time.Time.
//
//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

func dialect(driver string) goose.Dialect {
	if driver == config.DriverSQLite {
		return goose.DialectSQLite3
	}
	return goose.DialectPostgres
}

func dir(driver string) string {
	if driver == config.DriverSQLite {
		return "sqlite"
	}
	return "postgres"
}

func newProvider(db *sql.DB, driver string) (*goose.Provider, error) {
	sub, err := fs.Sub(files, dir(driver))
	if err != nil {
		return nil, fmt.Errorf("open %s migrations: %w", dir(driver), err)
	}

	p, err := goose.NewProvider(dialect(driver), db, sub)
	if err != nil {
		return nil, fmt.Errorf("create migration provider: %w", err)
	}
	return p, nil
}

// Up applies all pending migrations and returns the versions applied.
func Up(ctx context.Context, db *sql.DB, driver string) ([]int64, error) {
	p, err := newProvider(db, driver)
	if err != nil {
		return nil, err
	}

	results, err := p.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrate up: %w", err)
	}
	return versions(results), nil
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB, driver string) ([]int64, error) {
	p, err := newProvider(db, driver)
	if err != nil {
		return nil, err
	}

	result, err := p.Down(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrate down: %w", err)
	}
	if result == nil {
		return nil, nil
	}
	return []int64{result.Source.Version}, nil
}

type Status struct {
	Version int64
	Path    string
	Applied bool
}

func CurrentStatus(ctx context.Context, db *sql.DB, driver string) ([]Status, error) {
	p, err := newProvider(db, driver)
	if err != nil {
		return nil, err
	}

	statuses, err := p.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration status: %w", err)
	}

	out := make([]Status, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, Status{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}

func versions(results []*goose.MigrationResult) []int64 {
	out := make([]int64, 0, len(results))
	for _, r := range results {
		out = append(out, r.Source.Version)
	}
	return out
}
