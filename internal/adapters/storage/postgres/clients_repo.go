package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"pet-clients/internal/domain/clients"

	"github.com/jackc/pgx/v5"
)

const DefaultTable = "clients"

// ClientsRepo lee/escribe la tabla de clientes por SQL.
// id y created_at los asignan los defaults de la tabla.
type ClientsRepo struct {
	db    *sql.DB
	table string // identificador ya citado
}

var _ clients.Repository = (*ClientsRepo)(nil)

// NewClientsRepo usa table ("" = "clients"); el nombre se cita como identificador.
func NewClientsRepo(db *sql.DB, table string) *ClientsRepo {
	table = strings.TrimSpace(table)
	if table == "" {
		table = DefaultTable
	}
	return &ClientsRepo{db: db, table: pgx.Identifier{table}.Sanitize()}
}

func (r *ClientsRepo) Create(ctx context.Context, in clients.NewClient) error {
	animal := strings.TrimSpace(string(in.Animal))

	query := `INSERT INTO ` + r.table + ` (animal) VALUES ($1)`
	_, err := r.db.ExecContext(ctx, query, animal)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *ClientsRepo) ListNewestFirst(ctx context.Context) ([]clients.Client, error) {
	query := `SELECT id::text, animal, created_at FROM ` + r.table + ` ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	out := make([]clients.Client, 0)
	for rows.Next() {
		var (
			c      clients.Client
			animal string
		)
		if err := rows.Scan(&c.ID, &animal, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		c.Animal = clients.Animal(animal)
		out = append(out, c)
	}

	return out, rows.Err()
}
