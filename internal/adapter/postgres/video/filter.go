package video

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200

	defaultOrder = "-published_at"
)

// orderColumns maps order keys to SQL expressions on the videos relation.
// published_at coalesces NULL (unpublished rows) to -infinity so the order
// stays total and keyset cursors can anchor on any row.
var orderColumns = map[string]string{
	"published_at":      "COALESCE(v.published_at, '-infinity')",
	"id":                "v.id",
	"title":             "v.title",
	"duration":          "v.duration",
	"view_amount":       "v.view_amount",
	"playlist_priority": "pv.priority",
}

// orderCasts maps order keys to the SQL type the decoded cursor value is
// cast to in the keyset comparison.
var orderCasts = map[string]string{
	"published_at":      "timestamptz",
	"id":                "uuid",
	"title":             "text",
	"duration":          "integer",
	"view_amount":       "integer",
	"playlist_priority": "integer",
}

// normalizeFilter applies defaults and clamps values.
func normalizeFilter(f *domain.VideoFilter) {
	key, _ := orderKey(*f)
	if key != "random" {
		if _, ok := orderColumns[key]; !ok {
			f.OrderBy = defaultOrder
		}
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
}

// orderKey splits OrderBy into its bare key and direction.
func orderKey(f domain.VideoFilter) (key string, desc bool) {
	key = f.OrderBy
	if key == "" {
		key = defaultOrder
	}
	if strings.HasPrefix(key, "-") {
		return strings.TrimPrefix(key, "-"), true
	}
	return key, false
}

// isRandom reports whether random ordering was requested.
func isRandom(f domain.VideoFilter) bool {
	key, _ := orderKey(f)
	return key == "random"
}

// encodeCursor packs the sort value and row id of the last row of a page.
func encodeCursor(sortValue string, id uuid.UUID) string {
	return base64.StdEncoding.EncodeToString([]byte(sortValue + "|" + id.String()))
}

// decodeCursor unpacks a cursor produced by encodeCursor.
func decodeCursor(cursor string) (sortValue string, id uuid.UUID, err error) {
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("malformed cursor: %w", err)
	}
	// The sort value may itself contain the separator (titles are free
	// text), so split on the last one: the id is always the final part.
	sep := strings.LastIndex(string(raw), "|")
	if sep < 0 {
		return "", uuid.Nil, fmt.Errorf("malformed cursor")
	}
	id, err = uuid.Parse(string(raw[sep+1:]))
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("malformed cursor: %w", err)
	}
	return string(raw[:sep]), id, nil
}
