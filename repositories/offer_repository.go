// File: /repositories/offer_repository.go
package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"collateral-api/models"
)

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Create(ctx context.Context, o *models.Offer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OfferRepository) FindByID(ctx context.Context, id string) (*models.Offer, error) {
	var offer models.Offer
	err := r.db.WithContext(ctx).Preload("Vehicle").Preload("Vehicle.Valuation").Where("id = ?", id).First(&offer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepository) List(ctx context.Context, vehicleID string, status models.OfferStatus) ([]models.Offer, error) {
	q := r.db.WithContext(ctx).Model(&models.Offer{}).Preload("Vehicle")
	if vehicleID != "" {
		q = q.Where("vehicle_id = ?", vehicleID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var offers []models.Offer
	if err := q.Order("created_at DESC").Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *OfferRepository) Save(ctx context.Context, o *models.Offer) error {
	return r.db.WithContext(ctx).Omit("Vehicle").Save(o).Error
}
