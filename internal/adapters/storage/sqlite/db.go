package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// DB mantiene conexiones separadas de escritura (1 conexión, evita "database is locked")
// y de lectura (pool chico).
type DB struct {
	Writer *sql.DB
	Reader *sql.DB
}

// NewDB abre path con WAL, busy timeout y synchronous NORMAL.
func NewDB(ctx context.Context, path string) (*DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)",
		path,
	)
	return openDSN(ctx, dsn)
}

func openDSN(ctx context.Context, dsn string) (*DB, error) {
	writer, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open writer: %w", err)
	}
	writer.SetMaxOpenConns(1)

	if err := writer.PingContext(ctx); err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("ping writer: %w", err)
	}

	reader, err := sql.Open("sqlite", dsn)
	if err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("open reader: %w", err)
	}
	reader.SetMaxOpenConns(4)

	if err := reader.PingContext(ctx); err != nil {
		_ = reader.Close()
		_ = writer.Close()
		return nil, fmt.Errorf("ping reader: %w", err)
	}

	return &DB{Writer: writer, Reader: reader}, nil
}

// EnsureSchema crea la tabla (y su índice por created_at) si no existe.
// No es un sistema de migraciones: la tabla tiene una sola forma.
func (db *DB) EnsureSchema(ctx context.Context, table string) error {
	name := tableOrDefault(table)
	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			animal     TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (strftime('%%Y-%%m-%%dT%%H:%%M:%%fZ', 'now'))
		);
		CREATE INDEX IF NOT EXISTS %s ON %s (created_at DESC);
	`, quoteIdent(name), quoteIdent("idx_"+name+"_created_at"), quoteIdent(name))
	if _, err := db.Writer.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

const DefaultTable = "clients"

func tableOrDefault(table string) string {
	if t := strings.TrimSpace(table); t != "" {
		return t
	}
	return DefaultTable
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Close cierra ambas conexiones y devuelve el primer error.
func (db *DB) Close() error {
	var firstErr error

	if err := db.Reader.Close(); err != nil {
		firstErr = fmt.Errorf("close reader: %w", err)
	}
	if err := db.Writer.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close writer: %w", err)
	}

	return firstErr
}
