// Package slug turns human-entered names into URL-safe identifiers.
//
// The transform folds Vietnamese diacritics to base Latin letters, collapses
// every run of non-word characters to a single hyphen, strips edge hyphens,
// and lowercases. It is deterministic and idempotent; it does NOT guarantee
// uniqueness; callers rely on the store's unique constraints for that.
package slug

import (
	"regexp"
	"strings"
)

// foldPairs maps each accented letter class to its base letter. Uppercase
// variants fold to the uppercase base before the final lowering, matching
// the case-preserving fold of the original transform.
var foldPairs = []struct {
	class *regexp.Regexp
	base  string
}{
	{regexp.MustCompile(`[àáảãạăắằẵặẳâầấậẫẩ]`), "a"},
	{regexp.MustCompile(`[ÀÁẢÃẠĂẮẰẴẶẲÂẦẤẬẪẨ]`), "A"},
	{regexp.MustCompile(`[đ]`), "d"},
	{regexp.MustCompile(`[Đ]`), "D"},
	{regexp.MustCompile(`[èéẻẽẹêềếểễệ]`), "e"},
	{regexp.MustCompile(`[ÈÉẺẼẸÊỀẾỂỄỆ]`), "E"},
	{regexp.MustCompile(`[ìíỉĩị]`), "i"},
	{regexp.MustCompile(`[ÌÍỈĨỊ]`), "I"},
	{regexp.MustCompile(`[òóỏõọôồốổỗộơờớởỡợ]`), "o"},
	{regexp.MustCompile(`[ÒÓỎÕỌÔỒỐỔỖỘƠỜỚỞỠỢ]`), "O"},
	{regexp.MustCompile(`[ùúủũụưừứửữự]`), "u"},
	{regexp.MustCompile(`[ÙÚỦŨỤƯỪỨỬỮỰ]`), "U"},
	{regexp.MustCompile(`[ỳýỷỹỵ]`), "y"},
	{regexp.MustCompile(`[ỲÝỶỸỴ]`), "Y"},
}

var nonWord = regexp.MustCompile(`\W+`)

// Fold replaces known accented letters with their base Latin letter,
// preserving case. Characters outside the known classes pass through.
func Fold(text string) string {
	out := text
	for _, p := range foldPairs {
		out = p.class.ReplaceAllString(out, p.base)
	}
	return out
}

// Make converts a display name into a slug.
func Make(name string) string {
	s := nonWord.ReplaceAllString(strings.ToLower(Fold(name)), "-")
	return strings.Trim(s, "-")
}
