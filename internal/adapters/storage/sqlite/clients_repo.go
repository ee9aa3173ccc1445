package sqlite

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pet-clients/internal/domain/clients"
)

const createdAtLayout = "2006-01-02T15:04:05.000Z"

// ClientsRepo es la tabla de clientes en un archivo SQLite local (backend self-hosted).
type ClientsRepo struct {
	db    *DB
	table string // identificador ya citado
}

var _ clients.Repository = (*ClientsRepo)(nil)

// NewClientsRepo usa table ("" = "clients"); la tabla debe existir (ver EnsureSchema).
func NewClientsRepo(db *DB, table string) *ClientsRepo {
	return &ClientsRepo{db: db, table: quoteIdent(tableOrDefault(table))}
}

func (r *ClientsRepo) Create(ctx context.Context, in clients.NewClient) error {
	query := `INSERT INTO ` + r.table + ` (animal) VALUES (?)`
	if _, err := r.db.Writer.ExecContext(ctx, query, strings.TrimSpace(string(in.Animal))); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *ClientsRepo) ListNewestFirst(ctx context.Context) ([]clients.Client, error) {
	query := `SELECT id, animal, created_at FROM ` + r.table + ` ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	out := make([]clients.Client, 0)
	for rows.Next() {
		var (
			id        int64
			animal    string
			createdAt string
		)
		if err := rows.Scan(&id, &animal, &createdAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}

		ts, err := time.Parse(createdAtLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at of client %d: %w", id, err)
		}

		out = append(out, clients.Client{
			ID:        strconv.FormatInt(id, 10),
			Animal:    clients.Animal(animal),
			CreatedAt: ts,
		})
	}

	return out, rows.Err()
}
