// Package playlist implements the Playlist repository using PostgreSQL.
package playlist

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/saveschool/catalog-backend/internal/adapter/postgres"
	"github.com/saveschool/catalog-backend/internal/domain"
)

// Repo provides playlist persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new playlist repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const playlistColumns = `id, slug, name, description, image`

const getByIDSQL = `SELECT ` + playlistColumns + ` FROM playlists WHERE id = $1`

const getBySlugSQL = `SELECT ` + playlistColumns + ` FROM playlists WHERE slug = $1`

const listSQL = `
SELECT p.id, p.slug, p.name, p.description, p.image,
    count(DISTINCT v.id) AS video_amount
FROM playlists p
LEFT JOIN playlist_videos pv ON pv.playlist_id = p.id
LEFT JOIN videos v ON v.id = pv.video_id AND v.is_published
GROUP BY p.id`

var aggregateOrderKeys = map[string]string{
	"name":         "p.name",
	"slug":         "p.slug",
	"video_amount": "video_amount",
}

// GetByID returns a playlist by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var p domain.Playlist
	err := querier.QueryRow(ctx, getByIDSQL, id).Scan(
		&p.ID, &p.Slug, &p.Name, &p.Description, &p.Image)
	if err != nil {
		return nil, postgres.MapError(err, "playlist", id.String())
	}

	return &p, nil
}

// GetBySlug returns a playlist by slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Playlist, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var p domain.Playlist
	err := querier.QueryRow(ctx, getBySlugSQL, slug).Scan(
		&p.ID, &p.Slug, &p.Name, &p.Description, &p.Image)
	if err != nil {
		return nil, postgres.MapError(err, "playlist", slug)
	}

	return &p, nil
}

// List returns all playlists with their published-video counts.
func (r *Repo) List(ctx context.Context, orderBy string) ([]domain.PlaylistCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql := listSQL
	order := postgres.AggregateOrder(orderBy, aggregateOrderKeys)
	sql += "\nORDER BY " + order[0]
	for _, o := range order[1:] {
		sql += ", " + o
	}

	rows, err := querier.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	defer rows.Close()

	playlists := []domain.PlaylistCount{}
	for rows.Next() {
		var pc domain.PlaylistCount
		err := rows.Scan(&pc.ID, &pc.Slug, &pc.Name, &pc.Description, &pc.Image, &pc.VideoAmount)
		if err != nil {
			return nil, fmt.Errorf("list playlists: %w", err)
		}
		playlists = append(playlists, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}

	return playlists, nil
}

// Create stores a new playlist row.
func (r *Repo) Create(ctx context.Context, p *domain.Playlist) error {
	sql, args, err := postgres.Builder().
		Insert("playlists").
		Columns("id", "slug", "name", "description", "image").
		Values(p.ID, p.Slug, p.Name, p.Description, p.Image).
		ToSql()
	if err != nil {
		return fmt.Errorf("create playlist: build query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "playlist", p.Slug)
	}

	return nil
}

// AddVideo links a video into a playlist at the given position.
func (r *Repo) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID, priority int) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, `
		INSERT INTO playlist_videos (playlist_id, video_id, priority)
		VALUES ($1, $2, $3)`,
		playlistID, videoID, priority)
	if err != nil {
		return postgres.MapError(err, "playlist video", videoID.String())
	}

	return nil
}

// DeleteBySlug removes a playlist and reports whether a row existed.
func (r *Repo) DeleteBySlug(ctx context.Context, slug string) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, `DELETE FROM playlists WHERE slug = $1`, slug)
	if err != nil {
		return false, postgres.MapError(err, "playlist", slug)
	}

	return tag.RowsAffected() > 0, nil
}
