// Package tag implements the Tag repository using PostgreSQL.
// Tag rows are owned by videos; writes happen through the video repository's
// ReplaceTags. This package covers the read side.
package tag

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/saveschool/catalog-backend/internal/adapter/postgres"
	"github.com/saveschool/catalog-backend/internal/domain"
)

// Repo provides tag reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// getBySlugSQL picks the lowest id so the lookup is deterministic even
// though many videos can carry the same tag slug.
const getBySlugSQL = `
SELECT id, video_id, slug FROM tags
WHERE slug = $1
ORDER BY id
LIMIT 1`

const getByVideoIDsSQL = `
SELECT id, video_id, slug FROM tags
WHERE video_id = ANY($1::uuid[])
ORDER BY video_id, slug`

const listSQL = `
SELECT t.slug, count(DISTINCT v.id) AS video_amount
FROM tags t
LEFT JOIN videos v ON v.id = t.video_id AND v.is_published
GROUP BY t.slug`

var aggregateOrderKeys = map[string]string{
	"slug":         "t.slug",
	"video_amount": "video_amount",
}

// GetBySlug returns the first tag carrying the slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.Tag
	err := querier.QueryRow(ctx, getBySlugSQL, slug).Scan(&t.ID, &t.VideoID, &t.Slug)
	if err != nil {
		return nil, postgres.MapError(err, "tag", slug)
	}

	return &t, nil
}

// GetByVideoIDs returns tags for multiple videos (batch for DataLoader).
func (r *Repo) GetByVideoIDs(ctx context.Context, videoIDs []uuid.UUID) ([]domain.Tag, error) {
	if len(videoIDs) == 0 {
		return []domain.Tag{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByVideoIDsSQL, videoIDs)
	if err != nil {
		return nil, fmt.Errorf("get tags by video_ids: %w", err)
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.VideoID, &t.Slug); err != nil {
			return nil, fmt.Errorf("get tags by video_ids: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get tags by video_ids: %w", err)
	}

	return tags, nil
}

// List returns tag slugs grouped across videos with their published-video
// counts.
func (r *Repo) List(ctx context.Context, orderBy string) ([]domain.TagCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql := listSQL
	order := postgres.AggregateOrder(orderBy, aggregateOrderKeys)
	sql += "\nORDER BY " + order[0]
	for _, o := range order[1:] {
		sql += ", " + o
	}

	rows, err := querier.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	tags := []domain.TagCount{}
	for rows.Next() {
		var tc domain.TagCount
		if err := rows.Scan(&tc.Slug, &tc.VideoAmount); err != nil {
			return nil, fmt.Errorf("list tags: %w", err)
		}
		tags = append(tags, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return tags, nil
}
