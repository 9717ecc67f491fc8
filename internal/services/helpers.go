package services

import (
	"errors"
	"fmt"

	"moto-backoffice/internal/storage"
)

// mapRepoError translates storage sentinel errors into the service-level
// equivalents, wrapping everything else with the operation for context.
func mapRepoError(err error, operation string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, storage.ErrConflict), errors.Is(err, storage.ErrDuplicateEmail):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return fmt.Errorf("internal error %s: %w", operation, err)
	}
}
