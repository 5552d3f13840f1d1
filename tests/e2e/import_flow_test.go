//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saveschool/catalog-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Scenario: staff imports a user, then a video referencing that user and
// fresh taxonomy rows by slug, then a playlist tying videos together.
// ---------------------------------------------------------------------------

func TestE2E_ImportFlow_UserVideoPlaylist(t *testing.T) {
	ts := setupTestServer(t)
	_, staffToken := seedStaffWithToken(t, ts, domain.RoleAdministrator)

	username := uniqueSlug("archivist")

	importUser := `mutation($input: ImportUserInput!) {
		importUser(input: $input) { user { id username name } }
	}`
	userVars := map[string]any{
		"input": map[string]any{
			"username": username,
			"name":     "The Archivist",
			"role":     "POSTER",
			"isActive": true,
		},
	}
	status, result := ts.graphqlQuery(t, importUser, userVars, staffToken)
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)
	imported := gqlPayload(t, result, "importUser")["user"].(map[string]any)
	assert.Equal(t, username, imported["username"])

	// Importing the same username again updates in place, not duplicates.
	userVars["input"].(map[string]any)["name"] = "The Archivist II"
	status, result = ts.graphqlQuery(t, importUser, userVars, staffToken)
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)
	again := gqlPayload(t, result, "importUser")["user"].(map[string]any)
	assert.Equal(t, imported["id"], again["id"])
	assert.Equal(t, "The Archivist II", again["name"])

	// Import a published video attributed to the imported user. Source and
	// speaker slugs do not exist yet and must be created on the fly.
	videoSlug := uniqueSlug("imported-video")
	importVideo := `mutation($input: ImportVideoInput!) {
		importVideo(input: $input) {
			video {
				slug title isPublished viewAmount
				createdBy { username }
				source { slug }
				speakers { slug }
			}
		}
	}`
	videoVars := map[string]any{
		"input": map[string]any{
			"slug":         videoSlug,
			"title":        "Imported Talk",
			"mediaId":      "yt-" + videoSlug,
			"duration":     640,
			"viewAmount":   1200,
			"isPublished":  true,
			"createdAt":    time.Date(2021, 3, 14, 9, 26, 53, 0, time.UTC).Format(time.RFC3339),
			"createdBy":    username,
			"sourceSlug":   uniqueSlug("imported-source"),
			"speakerSlugs": []any{uniqueSlug("imported-speaker")},
			"tags":         []any{"history"},
		},
	}
	status, result = ts.graphqlQuery(t, importVideo, videoVars, staffToken)
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	video := gqlPayload(t, result, "importVideo")["video"].(map[string]any)
	assert.Equal(t, videoSlug, video["slug"])
	assert.Equal(t, true, video["isPublished"])
	assert.Equal(t, float64(1200), video["viewAmount"])
	assert.Equal(t, username, video["createdBy"].(map[string]any)["username"])
	require.Len(t, video["speakers"].([]any), 1)

	// Playlist import referencing the video by slug.
	playlistSlug := uniqueSlug("imported-playlist")
	importPlaylist := `mutation($input: ImportPlaylistInput!) {
		importPlaylist(input: $input) { playlist { slug name } }
	}`
	playlistVars := map[string]any{
		"input": map[string]any{
			"slug":       playlistSlug,
			"name":       "Imported Playlist",
			"videoSlugs": []any{videoSlug},
		},
	}
	status, result = ts.graphqlQuery(t, importPlaylist, playlistVars, staffToken)
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	// The playlist's videos resolve through the relation field.
	playlistQuery := `query($slug: String!) {
		playlist(slug: $slug) { slug videos { videos { slug } } }
	}`
	status, result = ts.graphqlQuery(t, playlistQuery, map[string]any{"slug": playlistSlug}, "")
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	playlist := gqlData(t, result)["playlist"].(map[string]any)
	videos := playlist["videos"].(map[string]any)["videos"].([]any)
	require.Len(t, videos, 1)
	assert.Equal(t, videoSlug, videos[0].(map[string]any)["slug"])
}

// ---------------------------------------------------------------------------
// Scenario: import is staff-only regardless of role.
// ---------------------------------------------------------------------------

func TestE2E_Import_RequiresStaff(t *testing.T) {
	ts := setupTestServer(t)
	_, adminToken := seedUserWithToken(t, ts, domain.RoleAdministrator)

	importUser := `mutation($input: ImportUserInput!) {
		importUser(input: $input) { user { id } }
	}`
	vars := map[string]any{
		"input": map[string]any{
			"username": uniqueSlug("denied"),
			"role":     "MEMBER",
		},
	}

	// A non-staff administrator is still denied.
	_, result := ts.graphqlQuery(t, importUser, vars, adminToken)
	assert.Equal(t, "FORBIDDEN", gqlErrorCode(t, result))

	// Anonymous callers are unauthenticated.
	_, result = ts.graphqlQuery(t, importUser, vars, "")
	assert.Equal(t, "UNAUTHENTICATED", gqlErrorCode(t, result))
}
