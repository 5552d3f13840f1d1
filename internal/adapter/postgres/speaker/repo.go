// Package speaker implements the Speaker repository using PostgreSQL.
package speaker

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/saveschool/catalog-backend/internal/adapter/postgres"
	"github.com/saveschool/catalog-backend/internal/domain"
)

// Repo provides speaker persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new speaker repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// VideoSpeaker is a speaker row paired with the video it belongs to, for
// grouping batched DataLoader results.
type VideoSpeaker struct {
	VideoID uuid.UUID
	domain.Speaker
}

const speakerColumns = `id, slug, name, description, image`

const getByIDSQL = `SELECT ` + speakerColumns + ` FROM speakers WHERE id = $1`

const getBySlugSQL = `SELECT ` + speakerColumns + ` FROM speakers WHERE slug = $1`

const getByVideoIDsSQL = `
SELECT vs.video_id, s.id, s.slug, s.name, s.description, s.image
FROM video_speakers vs
JOIN speakers s ON s.id = vs.speaker_id
WHERE vs.video_id = ANY($1::uuid[])
ORDER BY vs.video_id, s.name`

const listSQL = `
SELECT s.id, s.slug, s.name, s.description, s.image,
    count(DISTINCT v.id) AS video_amount
FROM speakers s
LEFT JOIN video_speakers vs ON vs.speaker_id = s.id
LEFT JOIN videos v ON v.id = vs.video_id AND v.is_published`

var aggregateOrderKeys = map[string]string{
	"name":         "s.name",
	"slug":         "s.slug",
	"video_amount": "video_amount",
}

// GetByID returns a speaker by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Speaker, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.Speaker
	err := querier.QueryRow(ctx, getByIDSQL, id).Scan(
		&s.ID, &s.Slug, &s.Name, &s.Description, &s.Image)
	if err != nil {
		return nil, postgres.MapError(err, "speaker", id.String())
	}

	return &s, nil
}

// GetBySlug returns a speaker by slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Speaker, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.Speaker
	err := querier.QueryRow(ctx, getBySlugSQL, slug).Scan(
		&s.ID, &s.Slug, &s.Name, &s.Description, &s.Image)
	if err != nil {
		return nil, postgres.MapError(err, "speaker", slug)
	}

	return &s, nil
}

// GetByVideoIDs returns speakers for multiple videos (batch for DataLoader).
func (r *Repo) GetByVideoIDs(ctx context.Context, videoIDs []uuid.UUID) ([]VideoSpeaker, error) {
	if len(videoIDs) == 0 {
		return []VideoSpeaker{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByVideoIDsSQL, videoIDs)
	if err != nil {
		return nil, fmt.Errorf("get speakers by video_ids: %w", err)
	}
	defer rows.Close()

	speakers := []VideoSpeaker{}
	for rows.Next() {
		var vs VideoSpeaker
		err := rows.Scan(&vs.VideoID, &vs.ID, &vs.Slug, &vs.Name, &vs.Description, &vs.Image)
		if err != nil {
			return nil, fmt.Errorf("get speakers by video_ids: %w", err)
		}
		speakers = append(speakers, vs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get speakers by video_ids: %w", err)
	}

	return speakers, nil
}

// List returns all speakers with their published-video counts, optionally
// filtered by a search term matching name or description.
func (r *Repo) List(ctx context.Context, search, orderBy string) ([]domain.SpeakerCount, error) {
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
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	defer rows.Close()

	speakers := []domain.SpeakerCount{}
	for rows.Next() {
		var sc domain.SpeakerCount
		err := rows.Scan(&sc.ID, &sc.Slug, &sc.Name, &sc.Description, &sc.Image, &sc.VideoAmount)
		if err != nil {
			return nil, fmt.Errorf("list speakers: %w", err)
		}
		speakers = append(speakers, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}

	return speakers, nil
}

// SearchByName returns speakers whose name contains the term, with their
// published-video counts. Backs the global search surface, which matches
// names only.
func (r *Repo) SearchByName(ctx context.Context, term string) ([]domain.SpeakerCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql := listSQL + "\nWHERE s.name ILIKE $1\nGROUP BY s.id\nORDER BY s.name"

	rows, err := querier.Query(ctx, sql, "%"+postgres.EscapeLike(term)+"%")
	if err != nil {
		return nil, fmt.Errorf("search speakers: %w", err)
	}
	defer rows.Close()

	speakers := []domain.SpeakerCount{}
	for rows.Next() {
		var sc domain.SpeakerCount
		err := rows.Scan(&sc.ID, &sc.Slug, &sc.Name, &sc.Description, &sc.Image, &sc.VideoAmount)
		if err != nil {
			return nil, fmt.Errorf("search speakers: %w", err)
		}
		speakers = append(speakers, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search speakers: %w", err)
	}

	return speakers, nil
}

// Create stores a new speaker row.
func (r *Repo) Create(ctx context.Context, s *domain.Speaker) error {
	sql, args, err := postgres.Builder().
		Insert("speakers").
		Columns("id", "slug", "name", "description", "image").
		Values(s.ID, s.Slug, s.Name, s.Description, s.Image).
		ToSql()
	if err != nil {
		return fmt.Errorf("create speaker: build query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "speaker", s.Slug)
	}

	return nil
}

// Update rewrites the mutable fields of a speaker.
// Returns domain.ErrNotFound if no row matched.
func (r *Repo) Update(ctx context.Context, s *domain.Speaker) error {
	sql, args, err := postgres.Builder().
		Update("speakers").
		Set("slug", s.Slug).
		Set("name", s.Name).
		Set("description", s.Description).
		Set("image", s.Image).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update speaker: build query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "speaker", s.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("speaker %s: %w", s.ID, domain.ErrNotFound)
	}

	return nil
}
