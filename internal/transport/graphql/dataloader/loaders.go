package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/saveschool/catalog-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Speakers by VideoID
// ---------------------------------------------------------------------------

func newSpeakersBatchFn(repo speakerRepo) dataloader.BatchFunc[uuid.UUID, []domain.Speaker] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Speaker] {
		rows, err := repo.GetByVideoIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Speaker](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Speaker, len(keys))
		for _, r := range rows {
			grouped[r.VideoID] = append(grouped[r.VideoID], r.Speaker)
		}

		return mapResults(keys, grouped, emptySlice[domain.Speaker])
	}
}

// ---------------------------------------------------------------------------
// Categories by VideoID
// ---------------------------------------------------------------------------

func newCategoriesBatchFn(repo categoryRepo) dataloader.BatchFunc[uuid.UUID, []domain.Category] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Category] {
		rows, err := repo.GetByVideoIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Category](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Category, len(keys))
		for _, r := range rows {
			grouped[r.VideoID] = append(grouped[r.VideoID], r.Category)
		}

		return mapResults(keys, grouped, emptySlice[domain.Category])
	}
}

// ---------------------------------------------------------------------------
// SubCategories by VideoID
// ---------------------------------------------------------------------------

func newSubCategoriesBatchFn(repo categoryRepo) dataloader.BatchFunc[uuid.UUID, []domain.SubCategory] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.SubCategory] {
		rows, err := repo.GetSubCategoriesByVideoIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.SubCategory](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.SubCategory, len(keys))
		for _, r := range rows {
			grouped[r.VideoID] = append(grouped[r.VideoID], r.SubCategory)
		}

		return mapResults(keys, grouped, emptySlice[domain.SubCategory])
	}
}

// ---------------------------------------------------------------------------
// Tags by VideoID
// ---------------------------------------------------------------------------

func newTagsBatchFn(repo tagRepo) dataloader.BatchFunc[uuid.UUID, []domain.Tag] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Tag] {
		tags, err := repo.GetByVideoIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Tag](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Tag, len(keys))
		for _, t := range tags {
			grouped[t.VideoID] = append(grouped[t.VideoID], t)
		}

		return mapResults(keys, grouped, emptySlice[domain.Tag])
	}
}

// ---------------------------------------------------------------------------
// Source by ID (1:1 nullable)
// ---------------------------------------------------------------------------

func newSourceBatchFn(repo sourceRepo) dataloader.BatchFunc[uuid.UUID, *domain.Source] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Source] {
		rows, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Source](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Source, len(rows))
		for i := range rows {
			s := rows[i] // copy to avoid aliasing
			byID[s.ID] = &s
		}

		results := make([]*dataloader.Result[*domain.Source], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Source]{Data: byID[key]}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// User by ID (1:1 nullable)
// ---------------------------------------------------------------------------

func newUserBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		rows, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(rows))
		for i := range rows {
			u := rows[i] // copy to avoid aliasing
			byID[u.ID] = &u
		}

		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.User]{Data: byID[key]}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
