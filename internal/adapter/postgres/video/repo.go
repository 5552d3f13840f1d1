// Package video implements the Video repository using PostgreSQL.
// Fixed lookups use raw SQL; Find builds its query dynamically with squirrel.
package video

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/saveschool/catalog-backend/internal/adapter/postgres"
	"github.com/saveschool/catalog-backend/internal/domain"
)

// Repo provides video persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new video repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const videoColumns = `id, slug, title, description, image, media_id, duration,
    vi_sub, en_sub, vi_transcript, en_transcript, view_amount, is_published,
    created_at, created_by, published_at, published_by, updated_at, updated_by,
    source_id, sponsor_id`

// findColumns is videoColumns with the "v." prefix for the joined Find query.
var findColumns = []string{
	"v.id", "v.slug", "v.title", "v.description", "v.image", "v.media_id",
	"v.duration", "v.vi_sub", "v.en_sub", "v.vi_transcript", "v.en_transcript",
	"v.view_amount", "v.is_published", "v.created_at", "v.created_by",
	"v.published_at", "v.published_by", "v.updated_at", "v.updated_by",
	"v.source_id", "v.sponsor_id",
}

// ---------------------------------------------------------------------------
// Raw SQL for fixed queries
// ---------------------------------------------------------------------------

const getByIDSQL = `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

const getBySlugSQL = `SELECT ` + videoColumns + ` FROM videos WHERE slug = $1`

const markPublishedSQL = `
UPDATE videos
SET is_published = true, published_at = $2, published_by = $3
WHERE id = $1`

const incrementViewsSQL = `
UPDATE videos
SET view_amount = view_amount + 1
WHERE slug = $1 AND is_published
RETURNING ` + videoColumns

const listMissingDurationSQL = `
SELECT id, media_id FROM videos
WHERE duration = 0
ORDER BY created_at
LIMIT $1`

const setDurationSQL = `UPDATE videos SET duration = $2 WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a video by its primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var vr videoRow
	if err := querier.QueryRow(ctx, getByIDSQL, id).Scan(vr.scanFields()...); err != nil {
		return nil, postgres.MapError(err, "video", id.String())
	}

	v := vr.toDomain()
	return &v, nil
}

// GetBySlug returns a video by its slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Video, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var vr videoRow
	if err := querier.QueryRow(ctx, getBySlugSQL, slug).Scan(vr.scanFields()...); err != nil {
		return nil, postgres.MapError(err, "video", slug)
	}

	v := vr.toDomain()
	return &v, nil
}

// Find returns videos matching the filter plus a cursor for the next page.
// The cursor is nil when the returned page is the last one or when random
// ordering is requested.
func (r *Repo) Find(ctx context.Context, f domain.VideoFilter) ([]domain.Video, *string, error) {
	normalizeFilter(&f)

	key, desc := orderKey(f)
	if key == "playlist_priority" && f.PlaylistID == nil {
		key, desc = "published_at", true
	}

	cols := findColumns
	withPriority := key == "playlist_priority"
	if withPriority {
		cols = append(append([]string{}, findColumns...), "pv.priority")
	}

	q := postgres.Builder().Select(cols...).From("videos v")

	if f.IsPublished != nil {
		q = q.Where(squirrel.Eq{"v.is_published": *f.IsPublished})
	}
	if f.CreatedBy != nil {
		q = q.Join("users cu ON cu.id = v.created_by").
			Where(squirrel.Eq{"cu.username": *f.CreatedBy})
	}
	if f.Sponsor != nil {
		q = q.Join("users su ON su.id = v.sponsor_id").
			Where(squirrel.Eq{"su.username": *f.Sponsor})
	}
	if f.Source != nil {
		q = q.Join("sources src ON src.id = v.source_id").
			Where(squirrel.Eq{"src.slug": *f.Source})
	}
	if f.SpeakerID != nil {
		q = q.Join("video_speakers vsp ON vsp.video_id = v.id").
			Where(squirrel.Eq{"vsp.speaker_id": *f.SpeakerID})
	}
	if f.CategoryID != nil {
		q = q.Join("video_categories vc ON vc.video_id = v.id").
			Where(squirrel.Eq{"vc.category_id": *f.CategoryID})
	}
	if f.SubCategoryID != nil {
		q = q.Join("video_subcategories vsc ON vsc.video_id = v.id").
			Where(squirrel.Eq{"vsc.subcategory_id": *f.SubCategoryID})
	}
	if f.PlaylistID != nil {
		q = q.Join("playlist_videos pv ON pv.video_id = v.id").
			Where(squirrel.Eq{"pv.playlist_id": *f.PlaylistID})
	}
	if f.TagSlug != nil {
		q = q.Join("tags tg ON tg.video_id = v.id").
			Where(squirrel.Eq{"tg.slug": *f.TagSlug})
	}
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + postgres.EscapeLike(*f.Search) + "%"
		q = q.Where(`(v.title ILIKE ? OR v.description ILIKE ? OR EXISTS (
            SELECT 1 FROM video_speakers vs
            JOIN speakers sp ON sp.id = vs.speaker_id
            WHERE vs.video_id = v.id AND sp.name ILIKE ?))`,
			pattern, pattern, pattern)
	}
	if f.TitleSearch != nil && *f.TitleSearch != "" {
		pattern := "%" + postgres.EscapeLike(*f.TitleSearch) + "%"
		q = q.Where("(v.title ILIKE ? OR v.description ILIKE ?)", pattern, pattern)
	}

	if isRandom(f) {
		q = q.OrderBy("random()").Limit(uint64(f.Limit))
	} else {
		col := orderColumns[key]
		dir := "ASC"
		op := ">"
		if desc {
			dir = "DESC"
			op = "<"
		}

		if f.Cursor != nil && *f.Cursor != "" {
			sortVal, lastID, err := decodeCursor(*f.Cursor)
			if err != nil {
				return nil, nil, fmt.Errorf("find videos: %w: %w", domain.ErrValidation, err)
			}
			cast := orderCasts[key]
			q = q.Where(fmt.Sprintf("(%s, v.id) %s (?::%s, ?::uuid)", col, op, cast), sortVal, lastID)
		}

		q = q.OrderBy(col+" "+dir, "v.id "+dir).Limit(uint64(f.Limit))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("find videos: build query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("find videos: %w", err)
	}
	defer rows.Close()

	videos := []domain.Video{}
	lastPriority := 0
	for rows.Next() {
		var vr videoRow
		dests := vr.scanFields()
		if withPriority {
			dests = append(dests, &vr.priority)
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, nil, fmt.Errorf("find videos: %w", err)
		}
		videos = append(videos, vr.toDomain())
		lastPriority = int(vr.priority.Int32)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("find videos: %w", err)
	}

	var next *string
	if !isRandom(f) && len(videos) == f.Limit {
		last := videos[len(videos)-1]
		if sv, ok := sortValueOf(last, key, lastPriority); ok {
			c := encodeCursor(sv, last.ID)
			next = &c
		}
	}

	return videos, next, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert stores a new video row.
func (r *Repo) Insert(ctx context.Context, v *domain.Video) error {
	sql, args, err := postgres.Builder().
		Insert("videos").
		Columns("id", "slug", "title", "description", "image", "media_id",
			"duration", "vi_sub", "en_sub", "vi_transcript", "en_transcript",
			"view_amount", "is_published", "created_at", "created_by",
			"published_at", "published_by", "updated_at", "updated_by",
			"source_id", "sponsor_id").
		Values(v.ID, v.Slug, v.Title, v.Description, v.Image, v.MediaID,
			v.Duration, v.ViSub, v.EnSub, v.ViTranscript, v.EnTranscript,
			v.ViewAmount, v.IsPublished, v.CreatedAt, v.CreatedBy,
			v.PublishedAt, v.PublishedBy, v.UpdatedAt, v.UpdatedBy,
			v.SourceID, v.SponsorID).
		ToSql()
	if err != nil {
		return fmt.Errorf("insert video: build query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "video", v.Slug)
	}

	return nil
}

// Update rewrites all mutable fields of an existing video row.
// Returns domain.ErrNotFound if no row matched.
func (r *Repo) Update(ctx context.Context, v *domain.Video) error {
	sql, args, err := postgres.Builder().
		Update("videos").
		Set("slug", v.Slug).
		Set("title", v.Title).
		Set("description", v.Description).
		Set("image", v.Image).
		Set("media_id", v.MediaID).
		Set("duration", v.Duration).
		Set("vi_sub", v.ViSub).
		Set("en_sub", v.EnSub).
		Set("vi_transcript", v.ViTranscript).
		Set("en_transcript", v.EnTranscript).
		Set("updated_at", v.UpdatedAt).
		Set("updated_by", v.UpdatedBy).
		Set("source_id", v.SourceID).
		Set("sponsor_id", v.SponsorID).
		Where(squirrel.Eq{"id": v.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update video: build query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "video", v.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("video %s: %w", v.ID, domain.ErrNotFound)
	}

	return nil
}

// DeleteBySlug removes a video and reports whether a row existed.
// Join rows and tags go with it via ON DELETE CASCADE.
func (r *Repo) DeleteBySlug(ctx context.Context, slug string) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, `DELETE FROM videos WHERE slug = $1`, slug)
	if err != nil {
		return false, postgres.MapError(err, "video", slug)
	}

	return tag.RowsAffected() > 0, nil
}

// MarkPublished flips the publication flag and records who and when.
// Returns domain.ErrNotFound if no row matched.
func (r *Repo) MarkPublished(ctx context.Context, id, by uuid.UUID, at time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, markPublishedSQL, id, at, by)
	if err != nil {
		return postgres.MapError(err, "video", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("video %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// IncrementViews bumps the view counter of a published video in a single
// statement and returns the updated row. Unpublished or missing slugs map
// to domain.ErrNotFound.
func (r *Repo) IncrementViews(ctx context.Context, slug string) (*domain.Video, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var vr videoRow
	if err := querier.QueryRow(ctx, incrementViewsSQL, slug).Scan(vr.scanFields()...); err != nil {
		return nil, postgres.MapError(err, "video", slug)
	}

	v := vr.toDomain()
	return &v, nil
}

// MediaRef pairs a video id with its external media id.
type MediaRef struct {
	ID      uuid.UUID
	MediaID string
}

// ListMissingDuration returns up to limit videos whose duration was never
// resolved, oldest first.
func (r *Repo) ListMissingDuration(ctx context.Context, limit int) ([]MediaRef, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listMissingDurationSQL, limit)
	if err != nil {
		return nil, postgres.MapError(err, "video", "")
	}
	defer rows.Close()

	var refs []MediaRef
	for rows.Next() {
		var ref MediaRef
		if err := rows.Scan(&ref.ID, &ref.MediaID); err != nil {
			return nil, postgres.MapError(err, "video", "")
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

// SetDuration stores a resolved duration in seconds.
func (r *Repo) SetDuration(ctx context.Context, id uuid.UUID, seconds int) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setDurationSQL, id, seconds)
	if err != nil {
		return postgres.MapError(err, "video", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("video %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Association replacement
// ---------------------------------------------------------------------------

// ReplaceSpeakers rewrites the speaker set of a video (delete all, insert new).
// Callers run this inside a transaction together with the video write.
func (r *Repo) ReplaceSpeakers(ctx context.Context, videoID uuid.UUID, speakerIDs []uuid.UUID) error {
	return r.replaceJoin(ctx, "video_speakers", "speaker_id", videoID, speakerIDs)
}

// ReplaceCategories rewrites the category set of a video.
func (r *Repo) ReplaceCategories(ctx context.Context, videoID uuid.UUID, categoryIDs []uuid.UUID) error {
	return r.replaceJoin(ctx, "video_categories", "category_id", videoID, categoryIDs)
}

// ReplaceSubCategories rewrites the subcategory set of a video.
func (r *Repo) ReplaceSubCategories(ctx context.Context, videoID uuid.UUID, subCategoryIDs []uuid.UUID) error {
	return r.replaceJoin(ctx, "video_subcategories", "subcategory_id", videoID, subCategoryIDs)
}

// replaceJoin implements delete-then-insert replacement for a video join table.
func (r *Repo) replaceJoin(ctx context.Context, table, column string, videoID uuid.UUID, ids []uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE video_id = $1", table), videoID); err != nil {
		return postgres.MapError(err, table, videoID.String())
	}

	if len(ids) == 0 {
		return nil
	}

	ins := postgres.Builder().Insert(table).Columns("video_id", column)
	for _, id := range ids {
		ins = ins.Values(videoID, id)
	}

	sql, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("replace %s: build query: %w", table, err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, table, videoID.String())
	}

	return nil
}

// ReplaceTags rewrites the tag set of a video. Tag rows are owned by the
// video, so replacement recreates them with fresh ids.
func (r *Repo) ReplaceTags(ctx context.Context, videoID uuid.UUID, slugs []string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, `DELETE FROM tags WHERE video_id = $1`, videoID); err != nil {
		return postgres.MapError(err, "tags", videoID.String())
	}

	if len(slugs) == 0 {
		return nil
	}

	ins := postgres.Builder().Insert("tags").Columns("id", "video_id", "slug")
	for _, slug := range slugs {
		ins = ins.Values(uuid.New(), videoID, slug)
	}

	sql, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("replace tags: build query: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "tags", videoID.String())
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

// videoRow holds scan destinations for one videos row.
type videoRow struct {
	id           uuid.UUID
	slug         string
	title        string
	description  string
	image        string
	mediaID      string
	duration     int32
	viSub        string
	enSub        string
	viTranscript string
	enTranscript string
	viewAmount   int32
	isPublished  bool
	createdAt    time.Time
	createdBy    uuid.UUID
	publishedAt  pgtype.Timestamptz
	publishedBy  pgtype.UUID
	updatedAt    pgtype.Timestamptz
	updatedBy    pgtype.UUID
	sourceID     pgtype.UUID
	sponsorID    pgtype.UUID

	// pv.priority, scanned only when ordering by playlist position
	priority pgtype.Int4
}

// scanFields returns scan destinations in videoColumns order.
func (r *videoRow) scanFields() []any {
	return []any{
		&r.id, &r.slug, &r.title, &r.description, &r.image, &r.mediaID,
		&r.duration, &r.viSub, &r.enSub, &r.viTranscript, &r.enTranscript,
		&r.viewAmount, &r.isPublished, &r.createdAt, &r.createdBy,
		&r.publishedAt, &r.publishedBy, &r.updatedAt, &r.updatedBy,
		&r.sourceID, &r.sponsorID,
	}
}

// toDomain converts scanned values into a domain.Video.
func (r *videoRow) toDomain() domain.Video {
	v := domain.Video{
		ID:           r.id,
		Slug:         r.slug,
		Title:        r.title,
		Description:  r.description,
		Image:        r.image,
		MediaID:      r.mediaID,
		Duration:     int(r.duration),
		ViSub:        r.viSub,
		EnSub:        r.enSub,
		ViTranscript: r.viTranscript,
		EnTranscript: r.enTranscript,
		ViewAmount:   int(r.viewAmount),
		IsPublished:  r.isPublished,
		CreatedAt:    r.createdAt,
		CreatedBy:    r.createdBy,
	}

	if r.publishedAt.Valid {
		t := r.publishedAt.Time
		v.PublishedAt = &t
	}
	if r.publishedBy.Valid {
		id := uuid.UUID(r.publishedBy.Bytes)
		v.PublishedBy = &id
	}
	if r.updatedAt.Valid {
		t := r.updatedAt.Time
		v.UpdatedAt = &t
	}
	if r.updatedBy.Valid {
		id := uuid.UUID(r.updatedBy.Bytes)
		v.UpdatedBy = &id
	}
	if r.sourceID.Valid {
		id := uuid.UUID(r.sourceID.Bytes)
		v.SourceID = &id
	}
	if r.sponsorID.Valid {
		id := uuid.UUID(r.sponsorID.Bytes)
		v.SponsorID = &id
	}

	return v
}

// sortValueNullTime is the cursor stand-in for a NULL published_at. It
// matches the COALESCE sentinel in orderColumns, so rows without a publish
// time still anchor keyset pagination.
const sortValueNullTime = "-infinity"

// sortValueOf extracts the cursor sort value for a video under the given
// order key. ok is false when the value cannot anchor a cursor.
func sortValueOf(v domain.Video, key string, priority int) (string, bool) {
	switch key {
	case "published_at":
		if v.PublishedAt == nil {
			return sortValueNullTime, true
		}
		return v.PublishedAt.UTC().Format(time.RFC3339Nano), true
	case "id":
		return v.ID.String(), true
	case "title":
		return v.Title, true
	case "duration":
		return strconv.Itoa(v.Duration), true
	case "view_amount":
		return strconv.Itoa(v.ViewAmount), true
	case "playlist_priority":
		return strconv.Itoa(priority), true
	}
	return "", false
}
