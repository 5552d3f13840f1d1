// Package generated holds gqlgen output: the executable schema (exec.go,
// produced by go generate) and the GraphQL input, payload, and connection
// models bound in gqlgen.yml.
package generated

import (
	"time"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Filters and connections
// ---------------------------------------------------------------------------

type VideoFilterInput struct {
	IsPublished   *bool      `json:"isPublished,omitempty"`
	CreatedBy     *string    `json:"createdBy,omitempty"`
	Sponsor       *string    `json:"sponsor,omitempty"`
	Source        *string    `json:"source,omitempty"`
	SpeakerID     *uuid.UUID `json:"speakerId,omitempty"`
	CategoryID    *uuid.UUID `json:"categoryId,omitempty"`
	SubCategoryID *uuid.UUID `json:"subCategoryId,omitempty"`
	PlaylistID    *uuid.UUID `json:"playlistId,omitempty"`
	Tag           *string    `json:"tag,omitempty"`
	Search        *string    `json:"search,omitempty"`
	Title         *string    `json:"title,omitempty"`
}

type VideoConnection struct {
	Videos     []domain.Video `json:"videos"`
	NextCursor *string        `json:"nextCursor,omitempty"`
}

type SearchListResult struct {
	Videos   []domain.Video        `json:"videos"`
	Speakers []domain.SpeakerCount `json:"speakers"`
	Sources  []domain.SourceCount  `json:"sources"`
}

// ---------------------------------------------------------------------------
// Mutation inputs
// ---------------------------------------------------------------------------

type CreateVideoInput struct {
	Slug           string      `json:"slug"`
	Title          string      `json:"title"`
	Description    *string     `json:"description,omitempty"`
	Image          *string     `json:"image,omitempty"`
	MediaID        string      `json:"mediaId"`
	Duration       *int        `json:"duration,omitempty"`
	ViSub          *string     `json:"viSub,omitempty"`
	EnSub          *string     `json:"enSub,omitempty"`
	ViTranscript   *string     `json:"viTranscript,omitempty"`
	EnTranscript   *string     `json:"enTranscript,omitempty"`
	SourceID       *uuid.UUID  `json:"sourceId,omitempty"`
	SponsorID      *uuid.UUID  `json:"sponsorId,omitempty"`
	SpeakerIDs     []uuid.UUID `json:"speakerIds,omitempty"`
	CategoryIDs    []uuid.UUID `json:"categoryIds,omitempty"`
	SubCategoryIDs []uuid.UUID `json:"subCategoryIds,omitempty"`
	Tags           []string    `json:"tags,omitempty"`
}

type UpdateVideoInput struct {
	ID             uuid.UUID   `json:"id"`
	Slug           string      `json:"slug"`
	Title          string      `json:"title"`
	Description    *string     `json:"description,omitempty"`
	Image          *string     `json:"image,omitempty"`
	MediaID        string      `json:"mediaId"`
	Duration       *int        `json:"duration,omitempty"`
	ViSub          *string     `json:"viSub,omitempty"`
	EnSub          *string     `json:"enSub,omitempty"`
	ViTranscript   *string     `json:"viTranscript,omitempty"`
	EnTranscript   *string     `json:"enTranscript,omitempty"`
	SourceID       *uuid.UUID  `json:"sourceId,omitempty"`
	SponsorID      *uuid.UUID  `json:"sponsorId,omitempty"`
	SpeakerIDs     []uuid.UUID `json:"speakerIds,omitempty"`
	CategoryIDs    []uuid.UUID `json:"categoryIds,omitempty"`
	SubCategoryIDs []uuid.UUID `json:"subCategoryIds,omitempty"`
	Tags           []string    `json:"tags,omitempty"`
}

type CreateSourceInput struct {
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

type UpdateSourceInput struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
}

type CreateSpeakerInput struct {
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

type UpdateSpeakerInput struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
}

type CreateCategoryInput struct {
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
}

type CreateSubCategoryInput struct {
	CategorySlug string  `json:"categorySlug"`
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	Image        *string `json:"image,omitempty"`
	Priority     *int    `json:"priority,omitempty"`
}

type ImportVideoInput struct {
	Slug             string     `json:"slug"`
	Title            string     `json:"title"`
	Description      *string    `json:"description,omitempty"`
	Image            *string    `json:"image,omitempty"`
	MediaID          string     `json:"mediaId"`
	Duration         *int       `json:"duration,omitempty"`
	ViSub            *string    `json:"viSub,omitempty"`
	EnSub            *string    `json:"enSub,omitempty"`
	ViTranscript     *string    `json:"viTranscript,omitempty"`
	EnTranscript     *string    `json:"enTranscript,omitempty"`
	ViewAmount       *int       `json:"viewAmount,omitempty"`
	IsPublished      *bool      `json:"isPublished,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	CreatedBy        *string    `json:"createdBy,omitempty"`
	PublishedAt      *time.Time `json:"publishedAt,omitempty"`
	PublishedBy      *string    `json:"publishedBy,omitempty"`
	SourceSlug       *string    `json:"sourceSlug,omitempty"`
	SponsorSlug      *string    `json:"sponsorSlug,omitempty"`
	SpeakerSlugs     []string   `json:"speakerSlugs,omitempty"`
	CategorySlugs    []string   `json:"categorySlugs,omitempty"`
	SubCategorySlugs []string   `json:"subCategorySlugs,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
}

type ImportUserInput struct {
	Username string  `json:"username"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
	IsStaff  *bool   `json:"isStaff,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     string  `json:"role"`
	Bio      *string `json:"bio,omitempty"`
	Quote    *string `json:"quote,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Cover    *string `json:"cover,omitempty"`
	Website  *string `json:"website,omitempty"`
	Facebook *string `json:"facebook,omitempty"`
}

type ImportPlaylistInput struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
	VideoSlugs  []string `json:"videoSlugs,omitempty"`
}

// ---------------------------------------------------------------------------
// Mutation payloads
// ---------------------------------------------------------------------------

type VideoPayload struct {
	Video *domain.Video `json:"video"`
}

type SourcePayload struct {
	Source *domain.Source `json:"source"`
}

type SpeakerPayload struct {
	Speaker *domain.Speaker `json:"speaker"`
}

type CategoryPayload struct {
	Category *domain.Category `json:"category"`
}

type SubCategoryPayload struct {
	SubCategory *domain.SubCategory `json:"subCategory"`
}

type UserPayload struct {
	User *domain.User `json:"user"`
}

type PlaylistPayload struct {
	Playlist *domain.Playlist `json:"playlist"`
}
