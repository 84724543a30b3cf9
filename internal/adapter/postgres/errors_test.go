package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "lexicon_entries"); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	got := MapError(pgx.ErrNoRows, "archaisms")

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if want := "archaisms: not found"; got.Error() != want {
		t.Errorf("MapError(ErrNoRows).Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_WrappedNoRows(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("scan row: %w", pgx.ErrNoRows)
	if got := MapError(wrapped, "homographs"); !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(wrapped ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
}

func TestMapError_CheckViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "23514", Message: "violates check constraint"}
	got := MapError(pgErr, "lexicon_entries")

	if !errors.Is(got, domain.ErrValidation) {
		t.Errorf("MapError(23514) does not wrap domain.ErrValidation: %v", got)
	}
}

func TestMapError_NotNullViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "23502", Message: "null value in column"}
	if got := MapError(pgErr, "archaisms"); !errors.Is(got, domain.ErrValidation) {
		t.Errorf("MapError(23502) does not wrap domain.ErrValidation: %v", got)
	}
}

func TestMapError_UndefinedTable(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}
	got := MapError(pgErr, "lexicon_entries")

	var target *pgconn.PgError
	if !errors.As(got, &target) {
		t.Errorf("MapError(42P01) lost the PgError: %v", got)
	}
	if errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(42P01) must not map to ErrNotFound: %v", got)
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	for _, cause := range []error{context.Canceled, context.DeadlineExceeded} {
		got := MapError(cause, "lexicon_entries")
		if !errors.Is(got, cause) {
			t.Errorf("MapError(%v) = %v, want wrapped cause", cause, got)
		}
	}
}

func TestMapError_Other(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	got := MapError(cause, "orthography_mappings")
	if !errors.Is(got, cause) {
		t.Errorf("MapError(other) = %v, want wrapped cause", got)
	}
	if want := "orthography_mappings: connection reset"; got.Error() != want {
		t.Errorf("MapError(other).Error() = %q, want %q", got.Error(), want)
	}
}
