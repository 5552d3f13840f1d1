package video_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saveschool/catalog-backend/internal/adapter/postgres/testhelper"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/video"
	"github.com/saveschool/catalog-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*video.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return video.New(pool), pool
}

func ptr[T any](v T) *T { return &v }

// ---------------------------------------------------------------------------
// Insert / Get tests
// ---------------------------------------------------------------------------

func TestRepo_Insert_ThenGet_RoundTrip(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool, domain.RolePoster)
	source := testhelper.SeedSource(t, pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	in := domain.Video{
		ID:          uuid.New(),
		Slug:        "how-to-learn-" + uuid.New().String()[:8],
		Title:       "How to learn",
		Description: "A talk about learning",
		MediaID:     "yt-abc123",
		Duration:    615,
		ViSub:       "vi sub",
		EnSub:       "en sub",
		CreatedAt:   now,
		CreatedBy:   owner.ID,
		SourceID:    &source.ID,
	}

	if err := repo.Insert(ctx, &in); err != nil {
		t.Fatalf("Insert: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, in.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.Slug != in.Slug {
		t.Errorf("Slug mismatch: got %q, want %q", got.Slug, in.Slug)
	}
	if got.Title != in.Title {
		t.Errorf("Title mismatch: got %q, want %q", got.Title, in.Title)
	}
	if got.Duration != in.Duration {
		t.Errorf("Duration mismatch: got %d, want %d", got.Duration, in.Duration)
	}
	if got.IsPublished {
		t.Error("new video should not be published")
	}
	if got.PublishedAt != nil || got.PublishedBy != nil {
		t.Errorf("publication fields should be nil: %v %v", got.PublishedAt, got.PublishedBy)
	}
	if got.SourceID == nil || *got.SourceID != source.ID {
		t.Errorf("SourceID mismatch: got %v, want %s", got.SourceID, source.ID)
	}
	if got.CreatedBy != owner.ID {
		t.Errorf("CreatedBy mismatch: got %s, want %s", got.CreatedBy, owner.ID)
	}
	if !got.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt mismatch: got %s, want %s", got.CreatedAt, now)
	}

	bySlug, err := repo.GetBySlug(ctx, in.Slug)
	if err != nil {
		t.Fatalf("GetBySlug: unexpected error: %v", err)
	}
	if bySlug.ID != in.ID {
		t.Errorf("GetBySlug ID mismatch: got %s, want %s", bySlug.ID, in.ID)
	}
}

func TestRepo_Insert_DuplicateSlug(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool, domain.RolePoster)
	existing := testhelper.SeedVideo(t, pool, owner.ID)

	dup := domain.Video{
		ID:        uuid.New(),
		Slug:      existing.Slug,
		Title:     "Duplicate",
		MediaID:   "yt-dup",
		CreatedAt: time.Now().UTC(),
		CreatedBy: owner.ID,
	}

	err := repo.Insert(ctx, &dup)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got: %v", err)
	}
}

func TestRepo_GetBySlug_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetBySlug(context.Background(), "no-such-video")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update / Delete tests
// ---------------------------------------------------------------------------

func TestRepo_Update_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool, domain.RolePoster)
	v := testhelper.SeedVideo(t, pool, owner.ID)

	now := time.Now().UTC().Truncate(time.Microsecond)
	v.Title = "Updated title"
	v.Duration = 999
	v.UpdatedAt = &now
	v.UpdatedBy = &owner.ID

	if err := repo.Update(ctx, &v); err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, v.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Updated title" {
		t.Errorf("Title not updated: got %q", got.Title)
	}
	if got.Duration != 999 {
		t.Errorf("Duration not updated: got %d", got.Duration)
	}
	if got.UpdatedAt == nil || !got.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt mismatch: got %v, want %s", got.UpdatedAt, now)
	}
	if got.UpdatedBy == nil || *got.UpdatedBy != owner.ID {
		t.Errorf("UpdatedBy mismatch: got %v, want %s", got.UpdatedBy, owner.ID)
	}
}

func TestRepo_Update_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	v := domain.Video{ID: uuid.New(), Slug: "ghost", Title: "Ghost", MediaID: "x"}
	err := repo.Update(context.Background(), &v)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestRepo_DeleteBySlug(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool, domain.RolePoster)
	v := testhelper.SeedVideo(t, pool, owner.ID)

	existed, err := repo.DeleteBySlug(ctx, v.Slug)
	if err != nil {
		t.Fatalf("DeleteBySlug: unexpected error: %v", err)
	}
	if !existed {
		t.Error("existed should be true for a present slug")
	}

	existed, err = repo.DeleteBySlug(ctx, v.Slug)
	if err != nil {
		t.Fatalf("DeleteBySlug (repeat): unexpected error: %v", err)
	}
	if existed {
		t.Error("existed should be false the second time")
	}
}

// ---------------------------------------------------------------------------
// Publication tests
// ---------------------------------------------------------------------------

func TestRepo_MarkPublished(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool, domain.RolePoster)
	moderator := testhelper.SeedUser(t, pool, domain.RoleModerator)
	v := testhelper.SeedUnpublishedVideo(t, pool, owner.ID)

	at := time.Now().UTC().Truncate(time.Microsecond)
	if err := repo.MarkPublished(ctx, v.ID, moderator.ID, at); err != nil {
		t.Fatalf("MarkPublished: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, v.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.IsPublished {
		t.Error("video should be published")
	}
	if got.PublishedAt == nil || !got.PublishedAt.Equal(at) {
		t.Errorf("PublishedAt mismatch: got %v, want %s", got.PublishedAt, at)
	}
	if got.PublishedBy == nil || *got.PublishedBy != moderator.ID {
		t.Errorf("PublishedBy mismatch: got %v, want %s", got.PublishedBy, moderator.ID)
	}
}

func TestRepo_IncrementViews_Published(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool, domain.RolePoster)
	v := testhelper.SeedVideo(t, pool, owner.ID)

	got, err := repo.IncrementViews(ctx, v.Slug)
	if err != nil {
		t.Fatalf("IncrementViews: unexpected error: %v", err)
	}
	if got.ViewAmount != 1 {
		t.Errorf("ViewAmount: got %d, want 1", got.ViewAmount)
	}

	got, err = repo.IncrementViews(ctx, v.Slug)
	if err != nil {
		t.Fatalf("IncrementViews (repeat): %v", err)
	}
	if got.ViewAmount != 2 {
		t.Errorf("ViewAmount: got %d, want 2", got.ViewAmount)
	}
}

func TestRepo_IncrementViews_UnpublishedNotFound(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool, domain.RolePoster)
	v := testhelper.SeedUnpublishedVideo(t, pool, owner.ID)

	_, err := repo.IncrementViews(ctx, v.Slug)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unpublished video, got: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Association replacement tests
// ---------------------------------------------------------------------------

func TestRepo_ReplaceSpeakers(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool, domain.RolePoster)
	v := testhelper.SeedVideo(t, pool, owner.ID)
	s1 := testhelper.SeedSpeaker(t, pool)
	s2 := testhelper.SeedSpeaker(t, pool)
	s3 := testhelper.SeedSpeaker(t, pool)

	if err := repo.ReplaceSpeakers(ctx, v.ID, []uuid.UUID{s1.ID, s2.ID}); err != nil {
		t.Fatalf("ReplaceSpeakers: %v", err)
	}
	if n := countJoin(t, pool, "video_speakers", v.ID); n != 2 {
		t.Fatalf("expected 2 speaker links, got %d", n)
	}

	// Replacement drops the old set entirely.
	if err := repo.ReplaceSpeakers(ctx, v.ID, []uuid.UUID{s3.ID}); err != nil {
		t.Fatalf("ReplaceSpeakers (replace): %v", err)
	}
	if n := countJoin(t, pool, "video_speakers", v.ID); n != 1 {
		t.Fatalf("expected 1 speaker link after replacement, got %d", n)
	}

	if err := repo.ReplaceSpeakers(ctx, v.ID, nil); err != nil {
		t.Fatalf("ReplaceSpeakers (clear): %v", err)
	}
	if n := countJoin(t, pool, "video_speakers", v.ID); n != 0 {
		t.Fatalf("expected 0 speaker links after clear, got %d", n)
	}
}

func TestRepo_ReplaceSpeakers_UnknownSpeaker(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool, domain.RolePoster)
	v := testhelper.SeedVideo(t, pool, owner.ID)

	err := repo.ReplaceSpeakers(ctx, v.ID, []uuid.UUID{uuid.New()})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound (FK violation), got: %v", err)
	}
}

func TestRepo_ReplaceTags(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool, domain.RolePoster)
	v := testhelper.SeedVideo(t, pool, owner.ID)

	if err := repo.ReplaceTags(ctx, v.ID, []string{"golang", "education"}); err != nil {
		t.Fatalf("ReplaceTags: %v", err)
	}
	if n := countJoin(t, pool, "tags", v.ID); n != 2 {
		t.Fatalf("expected 2 tags, got %d", n)
	}

	if err := repo.ReplaceTags(ctx, v.ID, []string{"science"}); err != nil {
		t.Fatalf("ReplaceTags (replace): %v", err)
	}
	if n := countJoin(t, pool, "tags", v.ID); n != 1 {
		t.Fatalf("expected 1 tag after replacement, got %d", n)
	}
}

// ---------------------------------------------------------------------------
// Find tests
// ---------------------------------------------------------------------------

func TestRepo_Find_PublishedFilter(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool, domain.RolePoster)
	published := testhelper.SeedVideo(t, pool, owner.ID)
	unpublished := testhelper.SeedUnpublishedVideo(t, pool, owner.ID)

	got, _, err := repo.Find(ctx, domain.VideoFilter{
		IsPublished: ptr(true),
		CreatedBy:   ptr(owner.Username),
	})
	if err != nil {
		t.Fatalf("Find: unexpected error: %v", err)
	}

	ids := map[uuid.UUID]bool{}
	for _, v := range got {
		ids[v.ID] = true
	}
	if !ids[published.ID] {
		t.Error("published video missing from results")
	}
	if ids[unpublished.ID] {
		t.Error("unpublished video should be filtered out")
	}
}

func TestRepo_Find_SearchMatchesSpeakerName(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool, domain.RolePoster)
	v := testhelper.SeedVideo(t, pool, owner.ID)
	speaker := testhelper.SeedSpeaker(t, pool)

	if err := repo.ReplaceSpeakers(ctx, v.ID, []uuid.UUID{speaker.ID}); err != nil {
		t.Fatalf("ReplaceSpeakers: %v", err)
	}

	got, _, err := repo.Find(ctx, domain.VideoFilter{Search: ptr(speaker.Name)})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	found := false
	for _, r := range got {
		if r.ID == v.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("video not found by speaker name %q", speaker.Name)
	}
}

func TestRepo_Find_TitleSearchIgnoresSpeakers(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool, domain.RolePoster)
	v := testhelper.SeedVideo(t, pool, owner.ID)
	speaker := testhelper.SeedSpeaker(t, pool)

	if err := repo.ReplaceSpeakers(ctx, v.ID, []uuid.UUID{speaker.ID}); err != nil {
		t.Fatalf("ReplaceSpeakers: %v", err)
	}

	got, _, err := repo.Find(ctx, domain.VideoFilter{TitleSearch: ptr(speaker.Name)})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	for _, r := range got {
		if r.ID == v.ID {
			t.Error("TitleSearch must not match via speaker name")
		}
	}
}

func TestRepo_Find_OrderByTitle(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool, domain.RolePoster)

	for range 3 {
		testhelper.SeedVideo(t, pool, owner.ID)
	}

	got, _, err := repo.Find(ctx, domain.VideoFilter{
		CreatedBy: ptr(owner.Username),
		OrderBy:   "title",
	})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 videos, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Title < got[i-1].Title {
			t.Errorf("titles not ascending at index %d: %q < %q", i, got[i].Title, got[i-1].Title)
		}
	}
}

func TestRepo_Find_CursorPagination(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool, domain.RolePoster)

	for range 5 {
		testhelper.SeedVideo(t, pool, owner.ID)
	}

	f := domain.VideoFilter{
		CreatedBy: ptr(owner.Username),
		OrderBy:   "title",
		Limit:     2,
	}

	seen := map[uuid.UUID]bool{}
	var cursor *string
	pages := 0
	for {
		f.Cursor = cursor
		got, next, err := repo.Find(ctx, f)
		if err != nil {
			t.Fatalf("Find page %d: %v", pages, err)
		}
		for _, v := range got {
			if seen[v.ID] {
				t.Errorf("video %s appeared on more than one page", v.ID)
			}
			seen[v.ID] = true
		}
		pages++
		if next == nil {
			break
		}
		cursor = next
		if pages > 10 {
			t.Fatal("pagination did not terminate")
		}
	}

	if len(seen) != 5 {
		t.Errorf("expected 5 unique videos across pages, got %d", len(seen))
	}
}

func TestRepo_Find_BadCursor(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, _, err := repo.Find(context.Background(), domain.VideoFilter{
		OrderBy: "title",
		Cursor:  ptr("not-base64!!"),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for malformed cursor, got: %v", err)
	}
}

func TestRepo_Find_PlaylistPriorityOrder(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool, domain.RolePoster)
	playlist := testhelper.SeedPlaylist(t, pool)

	v1 := testhelper.SeedVideo(t, pool, owner.ID)
	v2 := testhelper.SeedVideo(t, pool, owner.ID)
	v3 := testhelper.SeedVideo(t, pool, owner.ID)
	testhelper.LinkPlaylistVideo(t, pool, playlist.ID, v1.ID, 3)
	testhelper.LinkPlaylistVideo(t, pool, playlist.ID, v2.ID, 1)
	testhelper.LinkPlaylistVideo(t, pool, playlist.ID, v3.ID, 2)

	got, _, err := repo.Find(ctx, domain.VideoFilter{
		PlaylistID: &playlist.ID,
		OrderBy:    "playlist_priority",
	})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 videos, got %d", len(got))
	}

	want := []uuid.UUID{v2.ID, v3.ID, v1.ID}
	for i, w := range want {
		if got[i].ID != w {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, w)
		}
	}
}

func TestRepo_Find_RandomReturnsAll(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool, domain.RolePoster)

	for range 3 {
		testhelper.SeedVideo(t, pool, owner.ID)
	}

	got, next, err := repo.Find(ctx, domain.VideoFilter{
		CreatedBy: ptr(owner.Username),
		OrderBy:   "random",
	})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 videos, got %d", len(got))
	}
	if next != nil {
		t.Error("random ordering must not produce a cursor")
	}
}

// countJoin counts rows in a video-owned table for one video.
func countJoin(t *testing.T, pool *pgxpool.Pool, table string, videoID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		"SELECT count(*) FROM "+table+" WHERE video_id = $1", videoID).Scan(&n)
	if err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
