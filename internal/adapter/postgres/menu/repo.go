// Package menu implements the Menu repository using PostgreSQL.
package menu

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/saveschool/catalog-backend/internal/adapter/postgres"
	"github.com/saveschool/catalog-backend/internal/domain"
)

// Repo provides menu reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new menu repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listSQL = `
SELECT id, name, link, tooltip, priority
FROM menus
ORDER BY priority, name`

// List returns all menu items ordered by priority.
func (r *Repo) List(ctx context.Context) ([]domain.Menu, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	defer rows.Close()

	menus := []domain.Menu{}
	for rows.Next() {
		var m domain.Menu
		if err := rows.Scan(&m.ID, &m.Name, &m.Link, &m.Tooltip, &m.Priority); err != nil {
			return nil, fmt.Errorf("list menus: %w", err)
		}
		menus = append(menus, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}

	return menus, nil
}
