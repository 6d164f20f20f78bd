package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"schulhof.app/gradebook/pkg/apperror"
)

// storeErr translates store-level failures into the domain taxonomy. Unique
// violations become AlreadyExists, foreign-key violations become conflicts
// so restricted deletes surface as 409 instead of a server error.
func storeErr(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NotFound(fmt.Sprintf("%s not found", resource))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.AlreadyExists(fmt.Sprintf("%s already exists", resource))
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperror.Conflict(fmt.Sprintf("%s is referenced by related data", resource))
	default:
		return err
	}
}
