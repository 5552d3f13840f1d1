//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saveschool/catalog-backend/internal/adapter/postgres/testhelper"
	"github.com/saveschool/catalog-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Scenario: a poster creates a video with relations, a moderator publishes
// it, and the public read surface reflects every step.
// ---------------------------------------------------------------------------

func TestE2E_VideoLifecycle_CreatePublishBrowse(t *testing.T) {
	ts := setupTestServer(t)
	_, posterToken := seedUserWithToken(t, ts, domain.RolePoster)
	_, modToken := seedUserWithToken(t, ts, domain.RoleModerator)

	source := testhelper.SeedSource(t, ts.Pool)
	speaker := testhelper.SeedSpeaker(t, ts.Pool)
	category := testhelper.SeedCategory(t, ts.Pool)

	slug := uniqueSlug("lifecycle")

	createQuery := `mutation($input: CreateVideoInput!) {
		createVideo(input: $input) {
			video {
				id slug title isPublished viewAmount
				source { slug }
				speakers { slug }
				categories { slug }
				tags { slug }
			}
		}
	}`
	createVars := map[string]any{
		"input": map[string]any{
			"slug":        slug,
			"title":       "Lifecycle Video",
			"mediaId":     "yt-" + slug,
			"duration":    300,
			"sourceId":    source.ID.String(),
			"speakerIds":  []any{speaker.ID.String()},
			"categoryIds": []any{category.ID.String()},
			"tags":        []any{"Deep Work"},
		},
	}

	status, result := ts.graphqlQuery(t, createQuery, createVars, posterToken)
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	created := gqlPayload(t, result, "createVideo")["video"].(map[string]any)
	videoID := created["id"].(string)
	assert.Equal(t, slug, created["slug"])
	assert.Equal(t, false, created["isPublished"])
	assert.Equal(t, source.Slug, created["source"].(map[string]any)["slug"])

	speakers := created["speakers"].([]any)
	require.Len(t, speakers, 1)
	assert.Equal(t, speaker.Slug, speakers[0].(map[string]any)["slug"])

	tags := created["tags"].([]any)
	require.Len(t, tags, 1)
	assert.Equal(t, "deep-work", tags[0].(map[string]any)["slug"])

	// An unpublished video is invisible in the public listing.
	listQuery := `query($filter: VideoFilterInput) {
		videos(filter: $filter) { videos { slug } }
	}`
	publishedOnly := map[string]any{
		"filter": map[string]any{"isPublished": true, "search": slug},
	}
	status, result = ts.graphqlQuery(t, listQuery, publishedOnly, "")
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)
	listed := gqlData(t, result)["videos"].(map[string]any)["videos"].([]any)
	assert.Empty(t, listed)

	// Moderator publishes.
	publishQuery := `mutation($id: UUID!) {
		publishVideo(id: $id) { video { isPublished publishedAt } }
	}`
	status, result = ts.graphqlQuery(t, publishQuery, map[string]any{"id": videoID}, modToken)
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	published := gqlPayload(t, result, "publishVideo")["video"].(map[string]any)
	assert.Equal(t, true, published["isPublished"])
	assert.NotNil(t, published["publishedAt"])

	// Now it shows up in the listing.
	status, result = ts.graphqlQuery(t, listQuery, publishedOnly, "")
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)
	listed = gqlData(t, result)["videos"].(map[string]any)["videos"].([]any)
	require.Len(t, listed, 1)
	assert.Equal(t, slug, listed[0].(map[string]any)["slug"])

	// Anonymous view count bump.
	viewsQuery := `mutation($slug: String!) {
		increaseViews(slug: $slug) { video { viewAmount } }
	}`
	status, result = ts.graphqlQuery(t, viewsQuery, map[string]any{"slug": slug}, "")
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)
	bumped := gqlPayload(t, result, "increaseViews")["video"].(map[string]any)
	assert.Equal(t, float64(1), bumped["viewAmount"])
}

// ---------------------------------------------------------------------------
// Scenario: a poster edits their own video; editing someone else's fails.
// ---------------------------------------------------------------------------

func TestE2E_UpdateVideo_OwnershipRule(t *testing.T) {
	ts := setupTestServer(t)
	owner, ownerToken := seedUserWithToken(t, ts, domain.RolePoster)
	_, otherToken := seedUserWithToken(t, ts, domain.RolePoster)

	video := testhelper.SeedVideo(t, ts.Pool, owner.ID)

	updateQuery := `mutation($input: UpdateVideoInput!) {
		updateVideo(input: $input) { video { title } }
	}`
	vars := map[string]any{
		"input": map[string]any{
			"id":      video.ID.String(),
			"slug":    video.Slug,
			"title":   "Renamed by owner",
			"mediaId": video.MediaID,
		},
	}

	status, result := ts.graphqlQuery(t, updateQuery, vars, ownerToken)
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)
	updated := gqlPayload(t, result, "updateVideo")["video"].(map[string]any)
	assert.Equal(t, "Renamed by owner", updated["title"])

	// A different poster is denied.
	vars["input"].(map[string]any)["title"] = "Hijacked"
	_, result = ts.graphqlQuery(t, updateQuery, vars, otherToken)
	assert.Equal(t, "FORBIDDEN", gqlErrorCode(t, result))
}

// ---------------------------------------------------------------------------
// Scenario: duplicate slugs are rejected with ALREADY_EXISTS.
// ---------------------------------------------------------------------------

func TestE2E_CreateSource_DuplicateSlug(t *testing.T) {
	ts := setupTestServer(t)
	_, token := seedUserWithToken(t, ts, domain.RolePoster)

	slug := uniqueSlug("talks")
	createQuery := `mutation($input: CreateSourceInput!) {
		createSource(input: $input) { source { id slug } }
	}`
	vars := map[string]any{
		"input": map[string]any{"slug": slug, "name": "Talks"},
	}

	status, result := ts.graphqlQuery(t, createQuery, vars, token)
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	_, result = ts.graphqlQuery(t, createQuery, vars, token)
	assert.Equal(t, "ALREADY_EXISTS", gqlErrorCode(t, result))
}

// ---------------------------------------------------------------------------
// Scenario: category tree management is moderator-only.
// ---------------------------------------------------------------------------

func TestE2E_CategoryTree_ModeratorOnly(t *testing.T) {
	ts := setupTestServer(t)
	_, posterToken := seedUserWithToken(t, ts, domain.RolePoster)
	_, modToken := seedUserWithToken(t, ts, domain.RoleModerator)

	catSlug := uniqueSlug("science")
	createCategory := `mutation($input: CreateCategoryInput!) {
		createCategory(input: $input) { category { id slug } }
	}`
	catVars := map[string]any{
		"input": map[string]any{"slug": catSlug, "name": "Science", "priority": 5},
	}

	_, result := ts.graphqlQuery(t, createCategory, catVars, posterToken)
	assert.Equal(t, "FORBIDDEN", gqlErrorCode(t, result))

	status, result := ts.graphqlQuery(t, createCategory, catVars, modToken)
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	createSub := `mutation($input: CreateSubCategoryInput!) {
		createSubCategory(input: $input) { subCategory { slug } }
	}`
	subVars := map[string]any{
		"input": map[string]any{
			"categorySlug": catSlug,
			"slug":         uniqueSlug("physics"),
			"name":         "Physics",
		},
	}
	status, result = ts.graphqlQuery(t, createSub, subVars, modToken)
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	// Unknown parent category is a validation error.
	subVars["input"].(map[string]any)["categorySlug"] = "no-such-category"
	subVars["input"].(map[string]any)["slug"] = uniqueSlug("orphan")
	_, result = ts.graphqlQuery(t, createSub, subVars, modToken)
	assert.Equal(t, "NOT_FOUND", gqlErrorCode(t, result))
}
