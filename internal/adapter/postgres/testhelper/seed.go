package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saveschool/catalog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a profile carrying the given role.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Username:  "user-" + suffix,
		Name:      "Test User " + suffix,
		Email:     "user-" + suffix + "@example.com",
		IsActive:  true,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, name, email, password_hash, is_active, is_staff, created_at)
		 VALUES ($1, $2, $3, $4, '', $5, $6, $7)`,
		user.ID, user.Username, user.Name, user.Email, user.IsActive, user.IsStaff, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO profiles (user_id, role) VALUES ($1, $2)`,
		user.ID, role.String(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert profile: %v", err)
	}

	return user
}

// SeedSource creates a source row.
func SeedSource(t *testing.T, pool *pgxpool.Pool) domain.Source {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	source := domain.Source{
		ID:   uuid.New(),
		Slug: "source-" + suffix,
		Name: "Source " + suffix,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO sources (id, slug, name, description, image) VALUES ($1, $2, $3, '', '')`,
		source.ID, source.Slug, source.Name,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSource: %v", err)
	}

	return source
}

// SeedSpeaker creates a speaker row.
func SeedSpeaker(t *testing.T, pool *pgxpool.Pool) domain.Speaker {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	speaker := domain.Speaker{
		ID:   uuid.New(),
		Slug: "speaker-" + suffix,
		Name: "Speaker " + suffix,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO speakers (id, slug, name, description, image) VALUES ($1, $2, $3, '', '')`,
		speaker.ID, speaker.Slug, speaker.Name,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSpeaker: %v", err)
	}

	return speaker
}

// SeedCategory creates a category row.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	category := domain.Category{
		ID:       uuid.New(),
		Slug:     "category-" + suffix,
		Name:     "Category " + suffix,
		Priority: 1,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO categories (id, slug, name, description, image, priority)
		 VALUES ($1, $2, $3, '', '', $4)`,
		category.ID, category.Slug, category.Name, category.Priority,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return category
}

// SeedSubCategory creates a subcategory row under the given category.
func SeedSubCategory(t *testing.T, pool *pgxpool.Pool, categoryID uuid.UUID) domain.SubCategory {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	sub := domain.SubCategory{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Slug:       "subcategory-" + suffix,
		Name:       "SubCategory " + suffix,
		Priority:   1,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO subcategories (id, category_id, slug, name, description, image, priority)
		 VALUES ($1, $2, $3, $4, '', '', $5)`,
		sub.ID, sub.CategoryID, sub.Slug, sub.Name, sub.Priority,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubCategory: %v", err)
	}

	return sub
}

// SeedVideo creates a published video owned by the given user.
func SeedVideo(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID) domain.Video {
	t.Helper()
	return seedVideo(t, pool, createdBy, true)
}

// SeedUnpublishedVideo creates an unpublished video owned by the given user.
func SeedUnpublishedVideo(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID) domain.Video {
	t.Helper()
	return seedVideo(t, pool, createdBy, false)
}

func seedVideo(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID, published bool) domain.Video {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	video := domain.Video{
		ID:          uuid.New(),
		Slug:        "video-" + suffix,
		Title:       "Video " + suffix,
		MediaID:     "media-" + suffix,
		Duration:    120,
		IsPublished: published,
		CreatedAt:   now,
		CreatedBy:   createdBy,
	}
	if published {
		video.PublishedAt = &now
		video.PublishedBy = &createdBy
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO videos (id, slug, title, media_id, duration, is_published,
		                     created_at, created_by, published_at, published_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		video.ID, video.Slug, video.Title, video.MediaID, video.Duration,
		video.IsPublished, video.CreatedAt, video.CreatedBy, video.PublishedAt, video.PublishedBy,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVideo: %v", err)
	}

	return video
}

// SeedPlaylist creates a playlist row.
func SeedPlaylist(t *testing.T, pool *pgxpool.Pool) domain.Playlist {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	playlist := domain.Playlist{
		ID:   uuid.New(),
		Slug: "playlist-" + suffix,
		Name: "Playlist " + suffix,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO playlists (id, slug, name, description, image) VALUES ($1, $2, $3, '', '')`,
		playlist.ID, playlist.Slug, playlist.Name,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlaylist: %v", err)
	}

	return playlist
}

// LinkPlaylistVideo places a video into a playlist at the given position.
func LinkPlaylistVideo(t *testing.T, pool *pgxpool.Pool, playlistID, videoID uuid.UUID, priority int) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO playlist_videos (playlist_id, video_id, priority) VALUES ($1, $2, $3)`,
		playlistID, videoID, priority,
	)
	if err != nil {
		t.Fatalf("testhelper: LinkPlaylistVideo: %v", err)
	}
}
