package slug

import (
	"regexp"
	"testing"
)

var wellFormed = regexp.MustCompile(`^[a-z0-9_]+(-[a-z0-9_]+)*$`)

func TestMake(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  lots   of   spaces  ", "lots-of-spaces"},
		{"Đặng Thái Sơn", "dang-thai-son"},
		{"Tiếng Việt: học để làm gì?", "tieng-viet-hoc-de-lam-gi"},
		{"TED Talks!", "ted-talks"},
		{"already-a-slug", "already-a-slug"},
		{"MiXeD CaSe", "mixed-case"},
		{"100% organic", "100-organic"},
		{"--edges--", "edges"},
	}

	for _, tc := range cases {
		if got := Make(tc.in); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMake_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Hello World",
		"Đường đến trường",
		"a b c",
		"",
		"!!!",
	}
	for _, in := range inputs {
		once := Make(in)
		twice := Make(once)
		if once != twice {
			t.Errorf("Make not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestMake_OutputShape(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Hello, World!",
		"ồ ố ổ ỗ ộ",
		"tabs\tand\nnewlines",
		"under_score survives",
	}
	for _, in := range inputs {
		got := Make(in)
		if got == "" {
			continue
		}
		if !wellFormed.MatchString(got) {
			t.Errorf("Make(%q) = %q: not lowercase word chars and single hyphens", in, got)
		}
	}
}

func TestFold_PreservesCase(t *testing.T) {
	t.Parallel()

	if got := Fold("Đà Nẵng"); got != "Da Nang" {
		t.Errorf("Fold(\"Đà Nẵng\") = %q, want %q", got, "Da Nang")
	}
}
