package postgres

import "strings"

// AggregateOrder resolves a caller-supplied order key (optionally prefixed
// with "-" for descending) against an allow-list of key -> column, always
// appending the video_amount DESC tiebreak used by browse listings. Unknown
// or empty keys fall through to the tiebreak alone.
func AggregateOrder(orderBy string, allowed map[string]string) []string {
	var out []string

	key := strings.TrimPrefix(orderBy, "-")
	if col, ok := allowed[key]; ok && key != "video_amount" {
		dir := "ASC"
		if strings.HasPrefix(orderBy, "-") {
			dir = "DESC"
		}
		out = append(out, col+" "+dir)
	}

	return append(out, "video_amount DESC")
}
