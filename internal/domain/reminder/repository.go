package reminder

import (
	"context"

	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

type Repository interface {
	// CreateReminder inserts r unless a row for the same booking, consumer
	// and type already exists. created is false for the existing case.
	CreateReminder(
		ctx context.Context,
		r *models.Reminder,
	) (created bool, err error)
}
