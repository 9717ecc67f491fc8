package postgres

import (
	"errors"

	"moto-backoffice/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapError translates driver errors into the storage sentinel errors the
// service layer switches on. Unknown errors pass through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation:
			return storage.ErrConflict
		}
	}
	return err
}

// ilikePattern wraps a search term for a contains match.
func ilikePattern(term string) string {
	return "%" + term + "%"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
