package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
)

const (
	maxSlugLen  = 200
	maxTitleLen = 500
	maxNameLen  = 200
)

// ---------------------------------------------------------------------------
// Video inputs
// ---------------------------------------------------------------------------

// VideoFields holds the writable fields shared by create and update.
type VideoFields struct {
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

	SourceID  *uuid.UUID
	SponsorID *uuid.UUID

	SpeakerIDs     []uuid.UUID
	CategoryIDs    []uuid.UUID
	SubCategoryIDs []uuid.UUID

	// Tags are raw display names; slugs are derived on write.
	Tags []string
}

func (f VideoFields) validate() []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(f.Slug) == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "required"})
	}
	if len(f.Slug) > maxSlugLen {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "too long"})
	}
	if strings.TrimSpace(f.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(f.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if strings.TrimSpace(f.MediaID) == "" {
		errs = append(errs, domain.FieldError{Field: "video_id", Message: "required"})
	}
	if f.Duration < 0 {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "must not be negative"})
	}

	for idx, tag := range f.Tags {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("tags[%d]", idx),
				Message: "required",
			})
		}
	}

	return errs
}

// CreateVideoInput holds the parameters for creating a video.
type CreateVideoInput struct {
	VideoFields
}

// Validate checks all fields and collects all errors.
func (i CreateVideoInput) Validate() error {
	if errs := i.validate(); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateVideoInput holds the parameters for updating a video. Every field
// is rewritten; callers send the full record.
type UpdateVideoInput struct {
	ID uuid.UUID
	VideoFields
}

// Validate checks all fields and collects all errors.
func (i UpdateVideoInput) Validate() error {
	errs := i.validate()
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Source / Speaker inputs
// ---------------------------------------------------------------------------

// NamedFields holds the writable fields of slug+name leaf entities.
type NamedFields struct {
	Slug        string
	Name        string
	Description string
	Image       string
}

func (f NamedFields) validate() []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(f.Slug) == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "required"})
	}
	if len(f.Slug) > maxSlugLen {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "too long"})
	}
	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(f.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	return errs
}

// CreateSourceInput holds the parameters for creating a source.
type CreateSourceInput struct {
	NamedFields
}

// Validate checks all fields and collects all errors.
func (i CreateSourceInput) Validate() error {
	if errs := i.validate(); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateSourceInput holds the parameters for updating a source.
type UpdateSourceInput struct {
	ID uuid.UUID
	NamedFields
}

// Validate checks all fields and collects all errors.
func (i UpdateSourceInput) Validate() error {
	errs := i.validate()
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateSpeakerInput holds the parameters for creating a speaker.
type CreateSpeakerInput struct {
	NamedFields
}

// Validate checks all fields and collects all errors.
func (i CreateSpeakerInput) Validate() error {
	if errs := i.validate(); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateSpeakerInput holds the parameters for updating a speaker.
type UpdateSpeakerInput struct {
	ID uuid.UUID
	NamedFields
}

// Validate checks all fields and collects all errors.
func (i UpdateSpeakerInput) Validate() error {
	errs := i.validate()
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Category inputs
// ---------------------------------------------------------------------------

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	NamedFields
	Priority int
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
	if errs := i.validate(); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateSubCategoryInput holds the parameters for creating a subcategory
// under an existing category, addressed by the parent's slug.
type CreateSubCategoryInput struct {
	CategorySlug string
	NamedFields
	Priority int
}

// Validate checks all fields and collects all errors.
func (i CreateSubCategoryInput) Validate() error {
	errs := i.validate()
	if strings.TrimSpace(i.CategorySlug) == "" {
		errs = append(errs, domain.FieldError{Field: "category_slug", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
