package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/MKhiriev/tasky/internal/config"
	"github.com/MKhiriev/tasky/internal/logger"
	"github.com/MKhiriev/tasky/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// DB wraps the shared *sql.DB handle together with the goose dialect of the
// driver it was opened with. One DB instance per process is created at
// startup and passed down to every repository.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// NewConnect opens the backing store selected by the DSN: a "postgres://"
// (or "postgresql://") URI connects via the pgx driver, anything else is
// treated as an SQLite file path for local runs.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies all embedded schema migrations to the connected database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// isUniqueViolation reports whether err is a driver-level unique-constraint
// violation, for either supported backend.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	return false
}
