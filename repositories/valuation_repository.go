// File: /repositories/valuation_repository.go
package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"collateral-api/models"
)

type ValuationRepository struct {
	db *gorm.DB
}

func NewValuationRepository(db *gorm.DB) *ValuationRepository {
	return &ValuationRepository{db: db}
}

// Upsert creates the vehicle's valuation or overwrites it in place. The
// unique index on vehicle_id plus conflict handling keeps the record single
// under concurrent resolutions; the existing row's identity is preserved.
func (r *ValuationRepository) Upsert(ctx context.Context, v *models.Valuation) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "vehicle_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"estimated_value", "source", "updated_at"}),
	}).Create(v).Error
}

func (r *ValuationRepository) FindByVehicle(ctx context.Context, vehicleID string) (*models.Valuation, error) {
	var valuation models.Valuation
	err := r.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).First(&valuation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &valuation, nil
}

func (r *ValuationRepository) FindAll(ctx context.Context) ([]models.Valuation, error) {
	var valuations []models.Valuation
	err := r.db.WithContext(ctx).Preload("Vehicle").Order("updated_at DESC").Find(&valuations).Error
	if err != nil {
		return nil, err
	}
	return valuations, nil
}
