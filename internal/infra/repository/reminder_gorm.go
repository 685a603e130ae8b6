package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/slot-exchange/internal/domain/reminder"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

type ReminderGormRepository struct {
	db *gorm.DB
}

func NewReminderGormRepository(db *gorm.DB) *ReminderGormRepository {
	return &ReminderGormRepository{db: db}
}

func (r *ReminderGormRepository) CreateReminder(
	ctx context.Context,
	rem *models.Reminder,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "booking_id"},
				{Name: "consumer_id"},
				{Name: "type"},
			},
			DoNothing: true,
		}).
		Create(rem)
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*ReminderGormRepository)(nil)
