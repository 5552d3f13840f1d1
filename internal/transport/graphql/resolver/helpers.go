package resolver

import (
	"github.com/saveschool/catalog-backend/internal/domain"
)

// strVal returns the value of an optional string argument, or "".
func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// intVal returns the value of an optional int argument, or 0.
func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// boolVal returns the value of an optional bool argument, or false.
func boolVal(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}

// boolValOr returns the value of an optional bool argument, or def when the
// argument was omitted.
func boolValOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// pageFilter builds a VideoFilter from the shared pagination arguments.
// Zero values are normalized by the repository.
func pageFilter(orderBy *string, limit *int, cursor *string) domain.VideoFilter {
	return domain.VideoFilter{
		OrderBy: strVal(orderBy),
		Limit:   intVal(limit),
		Cursor:  cursor,
	}
}
