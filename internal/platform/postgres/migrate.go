package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"

	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migration is one numbered schema change.
type Migration struct {
	Version int
	Name    string
	UpSQL   string
	DownSQL string
}

var upPattern = regexp.MustCompile(`^(\d+)_(.+)\.up\.sql$`)

// LoadMigrations returns the embedded migrations sorted by version.
func LoadMigrations() ([]Migration, error) {
	return loadMigrations(migrationsFS, "migrations")
}

func loadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var out []Migration
	for _, e := range entries {
		m := upPattern.FindStringSubmatch(e.Name())
		if e.IsDir() || m == nil {
			continue
		}

		version, _ := strconv.Atoi(m[1])
		up, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		down, err := fs.ReadFile(fsys, path.Join(dir, fmt.Sprintf("%s_%s.down.sql", m[1], m[2])))
		if err != nil {
			down = nil
		}

		out = append(out, Migration{Version: version, Name: m[2], UpSQL: string(up), DownSQL: string(down)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// Pending returns the migrations newer than current, in order.
func Pending(all []Migration, current int) []Migration {
	var out []Migration
	for _, m := range all {
		if m.Version > current {
			out = append(out, m)
		}
	}
	return out
}

const ensureMigrationsTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version    INTEGER PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// CurrentVersion is the highest applied migration, 0 when none.
func CurrentVersion(ctx context.Context, db *sql.DB) (int, error) {
	if _, err := db.ExecContext(ctx, ensureMigrationsTableSQL); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}
	var v int
	if err := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&v); err != nil {
		return 0, err
	}
	return v, nil
}

// MigrateUp applies every pending migration, each in its own transaction.
func MigrateUp(ctx context.Context, db *sql.DB, logger zerolog.Logger) (int, error) {
	all, err := LoadMigrations()
	if err != nil {
		return 0, err
	}
	current, err := CurrentVersion(ctx, db)
	if err != nil {
		return 0, err
	}

	pending := Pending(all, current)
	for _, m := range pending {
		logger.Info().Int("version", m.Version).Str("name", m.Name).Msg("applying migration")
		if err := inTx(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, m.UpSQL); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.Version)
			return err
		}); err != nil {
			return 0, fmt.Errorf("migration %d_%s: %w", m.Version, m.Name, err)
		}
	}

	if len(pending) == 0 {
		logger.Info().Int("version", current).Msg("schema up to date")
	}
	return len(pending), nil
}

// MigrateDown reverts the latest applied migration.
func MigrateDown(ctx context.Context, db *sql.DB, logger zerolog.Logger) error {
	all, err := LoadMigrations()
	if err != nil {
		return err
	}
	current, err := CurrentVersion(ctx, db)
	if err != nil {
		return err
	}
	if current == 0 {
		logger.Info().Msg("nothing to revert")
		return nil
	}

	for _, m := range all {
		if m.Version != current {
			continue
		}
		if m.DownSQL == "" {
			return fmt.Errorf("migration %d_%s has no down script", m.Version, m.Name)
		}
		logger.Info().Int("version", m.Version).Str("name", m.Name).Msg("reverting migration")
		return inTx(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, m.DownSQL); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, `DELETE FROM schema_migrations WHERE version = $1`, m.Version)
			return err
		})
	}
	return fmt.Errorf("applied version %d not found in embedded migrations", current)
}

func inTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
