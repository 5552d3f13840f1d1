package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/saveschool/catalog-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "video", "intro"); got != nil {
		t.Fatalf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	err := MapError(pgx.ErrNoRows, "video", "intro")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMapError_UniqueViolation(t *testing.T) {
	t.Parallel()

	err := MapError(&pgconn.PgError{Code: "23505"}, "video", "intro")
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestMapError_ForeignKeyViolation(t *testing.T) {
	t.Parallel()

	err := MapError(&pgconn.PgError{Code: "23503"}, "video_speaker", "x")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMapError_CheckViolation(t *testing.T) {
	t.Parallel()

	err := MapError(&pgconn.PgError{Code: "23514"}, "video", "intro")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	err := MapError(context.Canceled, "video", "intro")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled preserved, got %v", err)
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Fatal("context error must not map to a domain error")
	}
}

func TestMapError_UnknownWrapped(t *testing.T) {
	t.Parallel()

	base := errors.New("connection reset")
	err := MapError(base, "video", "intro")
	if !errors.Is(err, base) {
		t.Fatalf("expected original error preserved, got %v", err)
	}
}
