package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/pressly/goose/v3"

	"github.com/angelmondragon/hotelsuite/pkg/db"
)

const DefaultDir = "pkg/migrate/migrations"

// Dialect maps a configured database driver to its goose dialect.
func Dialect(driver string) (string, error) {
	switch driver {
	case "", db.DriverPostgres:
		return "postgres", nil
	case db.DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("no migration dialect for driver %q", driver)
	}
}

// Runner applies the furniture schema migrations against one connection.
type Runner struct {
	DB      *sql.DB
	Dir     string
	Dialect string
}

func (r Runner) prepare() error {
	if r.DB == nil {
		return fmt.Errorf("db is required")
	}
	if r.Dir == "" {
		return fmt.Errorf("migrations dir is required")
	}
	dialect := r.Dialect
	if dialect == "" {
		dialect = "postgres"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect %s: %w", dialect, err)
	}
	return nil
}

// Run executes a goose command such as up, down or status.
func (r Runner) Run(ctx context.Context, command string, args ...string) error {
	if err := r.prepare(); err != nil {
		return err
	}
	if err := goose.RunContext(ctx, command, r.DB, r.Dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// To moves the schema up or down until it sits at version.
func (r Runner) To(ctx context.Context, version string) error {
	target, err := strconv.ParseInt(version, 10, 64)
	if err != nil {
		return fmt.Errorf("version %q is not a migration timestamp: %w", version, err)
	}
	if err := r.prepare(); err != nil {
		return err
	}

	current, err := goose.GetDBVersionContext(ctx, r.DB)
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	switch {
	case current < target:
		err = goose.UpToContext(ctx, r.DB, r.Dir, target)
	case current > target:
		err = goose.DownToContext(ctx, r.DB, r.Dir, target)
	}
	if err != nil {
		return fmt.Errorf("migrating %d -> %d: %w", current, target, err)
	}
	return nil
}
