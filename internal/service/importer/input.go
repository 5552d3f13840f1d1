package importer

import (
	"strings"
	"time"

	"github.com/saveschool/catalog-backend/internal/domain"
)

// ImportVideoInput carries a fully materialized video record. Entity
// references are slugs (source, sponsor, speakers, categories,
// subcategories) or usernames (creator, publisher); tags are already slugs
// and are stored as given.
type ImportVideoInput struct {
	Slug         string
	Title        string
	Description  string
	Image        string
	MediaID      string
	Duration     int
	ViSub        string
	EnSub        string
	ViTranscript string
	EnTranscript string
	ViewAmount   int
	IsPublished  bool

	CreatedAt time.Time
	CreatedBy string // username; falls back to "admin" when unknown

	PublishedAt *time.Time
	PublishedBy string // username; required when set

	SourceSlug  string // empty means no source
	SponsorSlug string // empty means no sponsor

	SpeakerSlugs     []string
	CategorySlugs    []string
	SubCategorySlugs []string
	Tags             []string
}

// Validate checks all fields and collects all errors.
func (i ImportVideoInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Slug) == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "required"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.MediaID) == "" {
		errs = append(errs, domain.FieldError{Field: "video_id", Message: "required"})
	}
	if i.Duration < 0 {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "must not be negative"})
	}
	if i.ViewAmount < 0 {
		errs = append(errs, domain.FieldError{Field: "view_amount", Message: "must not be negative"})
	}
	if i.CreatedAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "created_at", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ImportUserInput carries one account with its profile.
type ImportUserInput struct {
	Username string
	Name     string
	Email    string
	IsActive bool
	IsStaff  bool
	// Password is optional; accounts imported without one cannot log in
	// until a password is set through another channel.
	Password string

	Role     domain.Role
	Bio      string
	Quote    string
	Avatar   string
	Cover    string
	Website  string
	Facebook string
}

// Validate checks all fields and collects all errors.
func (i ImportUserInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ImportPlaylistInput carries a playlist and its ordered video slugs.
// Position in VideoSlugs becomes the playlist priority, starting at 1.
type ImportPlaylistInput struct {
	Slug        string
	Name        string
	Description string
	Image       string
	VideoSlugs  []string
}

// Validate checks all fields and collects all errors.
func (i ImportPlaylistInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Slug) == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
