// Package source implements the Source repository using PostgreSQL.
package source

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/saveschool/catalog-backend/internal/adapter/postgres"
	"github.com/saveschool/catalog-backend/internal/domain"
)

// Repo provides source persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new source repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const sourceColumns = `id, slug, name, description, image`

const getByIDSQL = `SELECT ` + sourceColumns + ` FROM sources WHERE id = $1`

const getBySlugSQL = `SELECT ` + sourceColumns + ` FROM sources WHERE slug = $1`

const getByIDsSQL = `SELECT ` + sourceColumns + ` FROM sources WHERE id = ANY($1::uuid[])`

const listSQL = `
SELECT s.id, s.slug, s.name, s.description, s.image,
    count(v.id) AS video_amount
FROM sources s
LEFT JOIN videos v ON v.source_id = s.id AND v.is_published`

var aggregateOrderKeys = map[string]string{
	"name":         "s.name",
	"slug":         "s.slug",
	"video_amount": "video_amount",
}

// GetByID returns a source by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.Source
	err := querier.QueryRow(ctx, getByIDSQL, id).Scan(
		&s.ID, &s.Slug, &s.Name, &s.Description, &s.Image)
	if err != nil {
		return nil, postgres.MapError(err, "source", id.String())
	}

	return &s, nil
}

// GetBySlug returns a source by slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Source, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.Source
	err := querier.QueryRow(ctx, getBySlugSQL, slug).Scan(
		&s.ID, &s.Slug, &s.Name, &s.Description, &s.Image)
	if err != nil {
		return nil, postgres.MapError(err, "source", slug)
	}

	return &s, nil
}

// GetByIDs returns sources for multiple ids (batch for DataLoader).
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Source, error) {
	if len(ids) == 0 {
		return []domain.Source{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get sources by ids: %w", err)
	}
	defer rows.Close()

	sources := []domain.Source{}
	for rows.Next() {
		var s domain.Source
		if err := rows.Scan(&s.ID, &s.Slug, &s.Name, &s.Description, &s.Image); err != nil {
			return nil, fmt.Errorf("get sources by ids: %w", err)
		}
		sources = append(sources, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get sources by ids: %w", err)
	}

	return sources, nil
}

// List returns all sources with their published-video counts, optionally
// filtered by a search term matching name or description.
func (r *Repo) List(ctx context.Context, search, orderBy string) ([]domain.SourceCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql := listSQL
	args := []any{}
	if search != "" {
		sql += "\nWHERE s.name ILIKE $1 OR s.description ILIKE $1"
		args = append(args, "%"+postgres.EscapeLike(search)+"%")
	}
	sql += "\nGROUP BY s.id"

	order := postgres.AggregateOrder(orderBy, aggregateOrderKeys)
	sql += "\nORDER BY " + order[0]
	for _, o := range order[1:] {
		sql += ", " + o
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	defer rows.Close()

	sources := []domain.SourceCount{}
	for rows.Next() {
		var sc domain.SourceCount
		err := rows.Scan(&sc.ID, &sc.Slug, &sc.Name, &sc.Description, &sc.Image, &sc.VideoAmount)
		if err != nil {
			return nil, fmt.Errorf("list sources: %w", err)
		}
		sources = append(sources, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}

	return sources, nil
}

// SearchByName returns sources whose name contains the term, with their
// published-video counts. Backs the global search surface, which matches
// names only.
func (r *Repo) SearchByName(ctx context.Context, term string) ([]domain.SourceCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql := listSQL + "\nWHERE s.name ILIKE $1\nGROUP BY s.id\nORDER BY s.name"

	rows, err := querier.Query(ctx, sql, "%"+postgres.EscapeLike(term)+"%")
	if err != nil {
		return nil, fmt.Errorf("search sources: %w", err)
	}
	defer rows.Close()

	sources := []domain.SourceCount{}
	for rows.Next() {
		var sc domain.SourceCount
		err := rows.Scan(&sc.ID, &sc.Slug, &sc.Name, &sc.Description, &sc.Image, &sc.VideoAmount)
		if err != nil {
			return nil, fmt.Errorf("search sources: %w", err)
		}
		sources = append(sources, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search sources: %w", err)
	}

	return sources, nil
}

// Create stores a new source row.
func (r *Repo) Create(ctx context.Context, s *domain.Source) error {
	sql, args, err := postgres.Builder().
		Insert("sources").
		Columns("id", "slug", "name", "description", "image").
		Values(s.ID, s.Slug, s.Name, s.Description, s.Image).
		ToSql()
	if err != nil {
		return fmt.Errorf("create source: build query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "source", s.Slug)
	}

	return nil
}

// Update rewrites the mutable fields of a source.
// Returns domain.ErrNotFound if no row matched.
func (r *Repo) Update(ctx context.Context, s *domain.Source) error {
	sql, args, err := postgres.Builder().
		Update("sources").
		Set("slug", s.Slug).
		Set("name", s.Name).
		Set("description", s.Description).
		Set("image", s.Image).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update source: build query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "source", s.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("source %s: %w", s.ID, domain.ErrNotFound)
	}

	return nil
}
