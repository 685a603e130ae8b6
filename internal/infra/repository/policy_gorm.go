package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/slot-exchange/internal/domain/exchange"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
	"github.com/BruksfildServices01/slot-exchange/internal/timezone"
)

type PolicyGormRepository struct {
	db *gorm.DB
}

func NewPolicyGormRepository(db *gorm.DB) *PolicyGormRepository {
	return &PolicyGormRepository{db: db}
}

// GetPolicy never fails for a missing row: providers without stored
// configuration get the defaults.
func (r *PolicyGormRepository) GetPolicy(
	ctx context.Context,
	providerID string,
) (*models.ProviderPolicy, error) {

	var p models.ProviderPolicy
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return exchange.DefaultPolicy(providerID), nil
	}
	if err != nil {
		return nil, err
	}

	if !timezone.IsValid(p.Timezone) {
		p.Timezone = timezone.DefaultTimezone
	}

	return &p, nil
}

// Compile-time check
var _ exchange.PolicyStore = (*PolicyGormRepository)(nil)
