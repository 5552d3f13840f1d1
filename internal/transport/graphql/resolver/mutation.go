package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/internal/service/catalog"
	"github.com/saveschool/catalog-backend/internal/service/importer"
	"github.com/saveschool/catalog-backend/internal/transport/graphql/generated"
)

// ============================================================================
// Video mutations
// ============================================================================

func (r *mutationResolver) CreateVideo(ctx context.Context, input generated.CreateVideoInput) (*generated.VideoPayload, error) {
	video, err := r.catalog.CreateVideo(ctx, catalog.CreateVideoInput{
		VideoFields: createVideoFields(input),
	})
	if err != nil {
		return nil, err
	}
	return &generated.VideoPayload{Video: video}, nil
}

func (r *mutationResolver) UpdateVideo(ctx context.Context, input generated.UpdateVideoInput) (*generated.VideoPayload, error) {
	video, err := r.catalog.UpdateVideo(ctx, catalog.UpdateVideoInput{
		ID:          input.ID,
		VideoFields: updateVideoFields(input),
	})
	if err != nil {
		return nil, err
	}
	return &generated.VideoPayload{Video: video}, nil
}

func (r *mutationResolver) PublishVideo(ctx context.Context, id uuid.UUID) (*generated.VideoPayload, error) {
	video, err := r.catalog.PublishVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	return &generated.VideoPayload{Video: video}, nil
}

func (r *mutationResolver) IncreaseViews(ctx context.Context, slug string) (*generated.VideoPayload, error) {
	video, err := r.catalog.IncreaseViews(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &generated.VideoPayload{Video: video}, nil
}

func createVideoFields(in generated.CreateVideoInput) catalog.VideoFields {
	return catalog.VideoFields{
		Slug:           in.Slug,
		Title:          in.Title,
		Description:    strVal(in.Description),
		Image:          strVal(in.Image),
		MediaID:        in.MediaID,
		Duration:       intVal(in.Duration),
		ViSub:          strVal(in.ViSub),
		EnSub:          strVal(in.EnSub),
		ViTranscript:   strVal(in.ViTranscript),
		EnTranscript:   strVal(in.EnTranscript),
		SourceID:       in.SourceID,
		SponsorID:      in.SponsorID,
		SpeakerIDs:     in.SpeakerIDs,
		CategoryIDs:    in.CategoryIDs,
		SubCategoryIDs: in.SubCategoryIDs,
		Tags:           in.Tags,
	}
}

func updateVideoFields(in generated.UpdateVideoInput) catalog.VideoFields {
	return catalog.VideoFields{
		Slug:           in.Slug,
		Title:          in.Title,
		Description:    strVal(in.Description),
		Image:          strVal(in.Image),
		MediaID:        in.MediaID,
		Duration:       intVal(in.Duration),
		ViSub:          strVal(in.ViSub),
		EnSub:          strVal(in.EnSub),
		ViTranscript:   strVal(in.ViTranscript),
		EnTranscript:   strVal(in.EnTranscript),
		SourceID:       in.SourceID,
		SponsorID:      in.SponsorID,
		SpeakerIDs:     in.SpeakerIDs,
		CategoryIDs:    in.CategoryIDs,
		SubCategoryIDs: in.SubCategoryIDs,
		Tags:           in.Tags,
	}
}

// ============================================================================
// Source / Speaker mutations
// ============================================================================

func (r *mutationResolver) CreateSource(ctx context.Context, input generated.CreateSourceInput) (*generated.SourcePayload, error) {
	source, err := r.catalog.CreateSource(ctx, catalog.CreateSourceInput{
		NamedFields: namedFields(input.Slug, input.Name, input.Description, input.Image),
	})
	if err != nil {
		return nil, err
	}
	return &generated.SourcePayload{Source: source}, nil
}

func (r *mutationResolver) UpdateSource(ctx context.Context, input generated.UpdateSourceInput) (*generated.SourcePayload, error) {
	source, err := r.catalog.UpdateSource(ctx, catalog.UpdateSourceInput{
		ID:          input.ID,
		NamedFields: namedFields(input.Slug, input.Name, input.Description, input.Image),
	})
	if err != nil {
		return nil, err
	}
	return &generated.SourcePayload{Source: source}, nil
}

func (r *mutationResolver) CreateSpeaker(ctx context.Context, input generated.CreateSpeakerInput) (*generated.SpeakerPayload, error) {
	speaker, err := r.catalog.CreateSpeaker(ctx, catalog.CreateSpeakerInput{
		NamedFields: namedFields(input.Slug, input.Name, input.Description, input.Image),
	})
	if err != nil {
		return nil, err
	}
	return &generated.SpeakerPayload{Speaker: speaker}, nil
}

func (r *mutationResolver) UpdateSpeaker(ctx context.Context, input generated.UpdateSpeakerInput) (*generated.SpeakerPayload, error) {
	speaker, err := r.catalog.UpdateSpeaker(ctx, catalog.UpdateSpeakerInput{
		ID:          input.ID,
		NamedFields: namedFields(input.Slug, input.Name, input.Description, input.Image),
	})
	if err != nil {
		return nil, err
	}
	return &generated.SpeakerPayload{Speaker: speaker}, nil
}

func namedFields(slug, name string, description, image *string) catalog.NamedFields {
	return catalog.NamedFields{
		Slug:        slug,
		Name:        name,
		Description: strVal(description),
		Image:       strVal(image),
	}
}

// ============================================================================
// Category mutations
// ============================================================================

func (r *mutationResolver) CreateCategory(ctx context.Context, input generated.CreateCategoryInput) (*generated.CategoryPayload, error) {
	category, err := r.catalog.CreateCategory(ctx, catalog.CreateCategoryInput{
		NamedFields: namedFields(input.Slug, input.Name, input.Description, input.Image),
		Priority:    intVal(input.Priority),
	})
	if err != nil {
		return nil, err
	}
	return &generated.CategoryPayload{Category: category}, nil
}

func (r *mutationResolver) CreateSubCategory(ctx context.Context, input generated.CreateSubCategoryInput) (*generated.SubCategoryPayload, error) {
	subCategory, err := r.catalog.CreateSubCategory(ctx, catalog.CreateSubCategoryInput{
		CategorySlug: input.CategorySlug,
		NamedFields:  namedFields(input.Slug, input.Name, input.Description, input.Image),
		Priority:     intVal(input.Priority),
	})
	if err != nil {
		return nil, err
	}
	return &generated.SubCategoryPayload{SubCategory: subCategory}, nil
}

// ============================================================================
// Import mutations (staff only, enforced by the importer service)
// ============================================================================

func (r *mutationResolver) ImportVideo(ctx context.Context, input generated.ImportVideoInput) (*generated.VideoPayload, error) {
	video, err := r.importer.ImportVideo(ctx, importer.ImportVideoInput{
		Slug:             input.Slug,
		Title:            input.Title,
		Description:      strVal(input.Description),
		Image:            strVal(input.Image),
		MediaID:          input.MediaID,
		Duration:         intVal(input.Duration),
		ViSub:            strVal(input.ViSub),
		EnSub:            strVal(input.EnSub),
		ViTranscript:     strVal(input.ViTranscript),
		EnTranscript:     strVal(input.EnTranscript),
		ViewAmount:       intVal(input.ViewAmount),
		IsPublished:      boolVal(input.IsPublished),
		CreatedAt:        input.CreatedAt,
		CreatedBy:        strVal(input.CreatedBy),
		PublishedAt:      input.PublishedAt,
		PublishedBy:      strVal(input.PublishedBy),
		SourceSlug:       strVal(input.SourceSlug),
		SponsorSlug:      strVal(input.SponsorSlug),
		SpeakerSlugs:     input.SpeakerSlugs,
		CategorySlugs:    input.CategorySlugs,
		SubCategorySlugs: input.SubCategorySlugs,
		Tags:             input.Tags,
	})
	if err != nil {
		return nil, err
	}
	return &generated.VideoPayload{Video: video}, nil
}

func (r *mutationResolver) ImportUser(ctx context.Context, input generated.ImportUserInput) (*generated.UserPayload, error) {
	user, err := r.importer.ImportUser(ctx, importer.ImportUserInput{
		Username: input.Username,
		Name:     strVal(input.Name),
		Email:    strVal(input.Email),
		IsActive: boolValOr(input.IsActive, true),
		IsStaff:  boolVal(input.IsStaff),
		Password: strVal(input.Password),
		Role:     domain.Role(input.Role),
		Bio:      strVal(input.Bio),
		Quote:    strVal(input.Quote),
		Avatar:   strVal(input.Avatar),
		Cover:    strVal(input.Cover),
		Website:  strVal(input.Website),
		Facebook: strVal(input.Facebook),
	})
	if err != nil {
		return nil, err
	}
	return &generated.UserPayload{User: user}, nil
}

func (r *mutationResolver) ImportPlaylist(ctx context.Context, input generated.ImportPlaylistInput) (*generated.PlaylistPayload, error) {
	playlist, err := r.importer.ImportPlaylist(ctx, importer.ImportPlaylistInput{
		Slug:        input.Slug,
		Name:        input.Name,
		Description: strVal(input.Description),
		Image:       strVal(input.Image),
		VideoSlugs:  input.VideoSlugs,
	})
	if err != nil {
		return nil, err
	}
	return &generated.PlaylistPayload{Playlist: playlist}, nil
}
