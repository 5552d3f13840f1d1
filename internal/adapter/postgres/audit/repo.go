// Package audit implements the audit log repository using PostgreSQL.
// The log is append-only; nothing updates or deletes entries.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/saveschool/catalog-backend/internal/adapter/postgres"
	"github.com/saveschool/catalog-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const appendSQL = `
INSERT INTO audit_log (id, actor_id, entity_type, entity_id, label, action, changed_fields, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const listByEntitySQL = `
SELECT id, actor_id, entity_type, entity_id, label, action, changed_fields, created_at
FROM audit_log
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC
LIMIT $3`

// Append inserts one audit entry. Callers run this inside the same
// transaction as the mutation it records.
func (r *Repo) Append(ctx context.Context, e domain.AuditEntry) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, appendSQL,
		e.ID, e.ActorID, e.EntityType.String(), e.EntityID, e.Label,
		e.Action.String(), e.ChangedFields, e.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "audit entry", e.ID.String())
	}

	return nil
}

// ListByEntity returns the change history for one entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByEntitySQL, entityType.String(), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.AuditEntry{}
	for rows.Next() {
		var e domain.AuditEntry
		err := rows.Scan(&e.ID, &e.ActorID, &e.EntityType, &e.EntityID,
			&e.Label, &e.Action, &e.ChangedFields, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("list audit entries: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	return entries, nil
}
