package domain

import (
	"time"

	"github.com/google/uuid"
)

// Source is where a video originally comes from (a channel, an event, a
// publisher). Leaf entity referenced by videos.
type Source struct {
	ID          uuid.UUID
	Slug        string
	Name        string
	Description string
	Image       string
}

// Speaker is a person appearing in videos, linked via the video_speakers
// join table.
type Speaker struct {
	ID          uuid.UUID
	Slug        string
	Name        string
	Description string
	Image       string
}

// Category is a top-level browse bucket with an ordered list of subcategories.
type Category struct {
	ID          uuid.UUID
	Slug        string
	Name        string
	Description string
	Image       string
	Priority    int
}

// SubCategory belongs to exactly one Category; its slug is unique within
// that category only.
type SubCategory struct {
	ID          uuid.UUID
	CategoryID  uuid.UUID
	Slug        string
	Name        string
	Description string
	Image       string
	Priority    int
}

// Video is the central entity of the catalog.
type Video struct {
	ID           uuid.UUID
	Slug         string
	Title        string
	Description  string
	Image        string
	MediaID      string // external player identifier
	Duration     int    // seconds
	ViSub        string
	EnSub        string
	ViTranscript string
	EnTranscript string
	ViewAmount   int
	IsPublished  bool

	CreatedAt   time.Time
	CreatedBy   uuid.UUID
	PublishedAt *time.Time
	PublishedBy *uuid.UUID
	UpdatedAt   *time.Time
	UpdatedBy   *uuid.UUID

	SourceID  *uuid.UUID
	SponsorID *uuid.UUID
}

// Tag is a video-scoped label. Uniqueness is per (video, slug): two videos
// can carry visually identical tags that are distinct rows.
type Tag struct {
	ID      uuid.UUID
	VideoID uuid.UUID
	Slug    string
}

// Playlist is an ordered collection of videos.
type Playlist struct {
	ID          uuid.UUID
	Slug        string
	Name        string
	Description string
	Image       string
}

// PlaylistVideo is one ordered edge of the playlist/video relation.
type PlaylistVideo struct {
	PlaylistID uuid.UUID
	VideoID    uuid.UUID
	Priority   int
}

// Menu is a static navigation item rendered by the public site.
type Menu struct {
	ID       uuid.UUID
	Name     string
	Link     string
	Tooltip  string
	Priority int
}
