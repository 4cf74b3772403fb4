package kv

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Tahmid447/Tahmid-English-Club/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type sqliteStore struct {
	db  *sql.DB
	log *logger.Logger
}

// Open opens (or creates) a sqlite-backed Store at path and applies
// migrations.
func Open(path string) (Store, error) {
	log := logger.Default().WithPrefix("kv")

	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL", path)
	log.Info("opening database: %s", path)

	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Error("failed to open database: %v", err)
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1) // single writer

	s := &sqliteStore{db: sqlDB, log: log}

	log.Debug("applying migrations")
	if err := s.applyMigrations(context.Background()); err != nil {
		log.Error("failed to apply migrations: %v", err)
		return nil, err
	}

	log.Info("database ready")
	return s, nil
}

// NewSQLite wraps an already-open sqlite handle, applying migrations.
// Used by tests with an in-memory database.
func NewSQLite(db *sql.DB) (Store, error) {
	s := &sqliteStore{db: db, log: logger.Default().WithPrefix("kv")}
	if err := s.applyMigrations(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *sqliteStore) applyMigrations(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at DATETIME DEFAULT CURRENT_TIMESTAMP)`); err != nil {
		return err
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		version := entry.Name()
		applied, err := s.isMigrationApplied(ctx, version)
		if err != nil {
			return err
		}
		if applied {
			s.log.Debug("migration %s already applied, skipping", version)
			continue
		}
		sqlBytes, err := migrationsFS.ReadFile("migrations/" + version)
		if err != nil {
			return err
		}
		s.log.Info("applying migration: %s", version)
		if _, err := s.db.ExecContext(ctx, string(sqlBytes)); err != nil {
			s.log.Error("migration %s failed: %v", version, err)
			return fmt.Errorf("apply migration %s: %w", version, err)
		}
		if _, err := s.db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
			return err
		}
	}
	return nil
}

func (s *sqliteStore) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT version FROM schema_migrations WHERE version = ?`, version).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := sqlBuilder.
		Select("value").
		From("kv_entries").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, false, err
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		s.log.Error("failed to read key %q: %v", key, err)
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (s *sqliteStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := sqlBuilder.
		Insert("kv_entries").
		Columns("key", "value").
		Values(key, string(value)).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.log.Error("failed to write key %q: %v", key, err)
		return err
	}
	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	query, args, err := sqlBuilder.
		Delete("kv_entries").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.log.Error("failed to delete key %q: %v", key, err)
		return err
	}
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
