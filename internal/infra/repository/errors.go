package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/slot-exchange/internal/httperr"
)

// notFound maps a missing row to a NotFound business error carrying code.
func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(code)
	}
	return err
}
