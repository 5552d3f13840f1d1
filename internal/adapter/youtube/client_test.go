package youtube

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{"PT15S", 15},
		{"PT4M13S", 253},
		{"PT1H2M3S", 3723},
		{"PT2H", 7200},
		{"P1DT1S", 86401},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDuration(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "banana", "1h2m"} {
		if _, err := ParseDuration(raw); err == nil {
			t.Errorf("ParseDuration(%q) expected error", raw)
		}
	}
}

func TestFetchDuration_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "abc123" {
			t.Errorf("id query param = %q", got)
		}
		if got := r.URL.Query().Get("part"); got != "contentDetails" {
			t.Errorf("part query param = %q", got)
		}
		w.Write([]byte(`{"items":[{"id":"abc123","contentDetails":{"duration":"PT10M30S"}}]}`))
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, "test-key", testLogger())

	seconds, err := c.FetchDuration(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seconds != 630 {
		t.Errorf("duration = %d, want 630", seconds)
	}
}

func TestFetchDuration_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, "test-key", testLogger())

	seconds, err := c.FetchDuration(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seconds != 0 {
		t.Errorf("duration = %d, want 0 for missing video", seconds)
	}
}

func TestFetchDuration_RetriesOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"items":[{"id":"x","contentDetails":{"duration":"PT1M"}}]}`))
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, "test-key", testLogger())

	seconds, err := c.FetchDuration(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seconds != 60 {
		t.Errorf("duration = %d, want 60", seconds)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestFetchDuration_EmptyMediaID(t *testing.T) {
	t.Parallel()

	c := NewClient("test-key", testLogger())

	if _, err := c.FetchDuration(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty media id")
	}
}
