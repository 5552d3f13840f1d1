package domain

import (
	"github.com/google/uuid"
)

// VideoFilter defines parameters for listing videos.
type VideoFilter struct {
	// IsPublished filters on the publication flag. nil means both.
	IsPublished *bool

	// CreatedBy filters by creator username.
	CreatedBy *string

	// Sponsor filters by sponsor username.
	Sponsor *string

	// Source filters by source slug.
	Source *string

	// Search matches title OR description OR any associated speaker name,
	// case-insensitively, substring.
	Search *string

	// TitleSearch matches title OR description only. Used by the global
	// search surface, which does not reach into speaker names.
	TitleSearch *string

	// Parent filters for nested collections (speaker page, category page, ...).
	SpeakerID     *uuid.UUID
	CategoryID    *uuid.UUID
	SubCategoryID *uuid.UUID
	PlaylistID    *uuid.UUID

	// TagSlug matches videos carrying a tag with this slug. Tags are scoped
	// per video, so the slug is the cross-video identity, not the tag id.
	TagSlug *string

	// OrderBy is one of the allow-listed keys, optionally prefixed with "-"
	// for descending: random, published_at, id, title, duration, view_amount,
	// playlist_priority. Default: "-published_at".
	OrderBy string

	// Limit is the maximum number of videos to return. Default: 50, max: 200.
	Limit int

	// Cursor is an opaque keyset cursor produced by a previous page.
	// Ignored for random ordering.
	Cursor *string
}
