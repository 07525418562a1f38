// File: /services/offer_service.go
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"collateral-api/models"
	"collateral-api/utils"
)

// Offer term bounds accepted by the pricer, boundaries inclusive.
const (
	minTermMonths = 12
	maxTermMonths = 84
)

// OfferRepository persists priced offers. FindByID returns (nil, nil) when
// no record matches.
type OfferRepository interface {
	Create(ctx context.Context, o *models.Offer) error
	FindByID(ctx context.Context, id string) (*models.Offer, error)
	List(ctx context.Context, vehicleID string, status models.OfferStatus) ([]models.Offer, error)
	Save(ctx context.Context, o *models.Offer) error
}

type OfferService struct {
	offers   OfferRepository
	vehicles VehicleRepository
	logger   *zap.Logger
}

func NewOfferService(offers OfferRepository, vehicles VehicleRepository, logger *zap.Logger) *OfferService {
	return &OfferService{
		offers:   offers,
		vehicles: vehicles,
		logger:   logger,
	}
}

// CreateOffer prices a loan offer against an existing vehicle. The monthly
// payment is derived once, here; offers are immutable afterwards except for
// their status.
func (s *OfferService) CreateOffer(ctx context.Context, vehicleID string, amount float64, termMonths int, apr float64) (*models.Offer, error) {
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "must be greater than zero"}
	}
	if termMonths < minTermMonths || termMonths > maxTermMonths {
		return nil, &ValidationError{Field: "termMonths", Message: fmt.Sprintf("must be between %d and %d", minTermMonths, maxTermMonths)}
	}
	if apr < 0 || apr > 1 {
		return nil, &ValidationError{Field: "apr", Message: "must be between 0 and 1"}
	}

	vehicle, err := s.vehicles.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("load vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	offer := &models.Offer{
		ID:             uuid.New().String(),
		VehicleID:      vehicle.ID,
		Amount:         amount,
		TermMonths:     termMonths,
		APR:            apr,
		MonthlyPayment: MonthlyPayment(amount, termMonths, apr),
		Status:         models.OfferActive,
	}
	if err := s.offers.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}

	s.logger.Info("offer created",
		zap.String("request_id", utils.RequestID(ctx)),
		zap.String("offer_id", offer.ID),
		zap.String("vehicle_id", vehicle.ID),
		zap.Float64("monthly_payment", offer.MonthlyPayment))

	offer.Vehicle = vehicle
	return offer, nil
}

func (s *OfferService) GetOffer(ctx context.Context, id string) (*models.Offer, error) {
	offer, err := s.offers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load offer: %w", err)
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}
	return offer, nil
}

// ListOffers filters by vehicle and/or status; empty arguments mean no
// filter on that dimension.
func (s *OfferService) ListOffers(ctx context.Context, vehicleID string, status models.OfferStatus) ([]models.Offer, error) {
	if status != "" && !models.ValidOfferStatus(status) {
		return nil, &ValidationError{Field: "status", Message: "must be active or inactive"}
	}
	return s.offers.List(ctx, vehicleID, status)
}

// UpdateStatus retires or reactivates an offer. Loans already created
// against the offer are untouched - their terms are a snapshot.
func (s *OfferService) UpdateStatus(ctx context.Context, id string, status models.OfferStatus) (*models.Offer, error) {
	if !models.ValidOfferStatus(status) {
		return nil, &ValidationError{Field: "status", Message: "must be active or inactive"}
	}

	offer, err := s.offers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load offer: %w", err)
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}

	offer.Status = status
	if err := s.offers.Save(ctx, offer); err != nil {
		return nil, fmt.Errorf("save offer: %w", err)
	}

	s.logger.Info("offer status updated",
		zap.String("request_id", utils.RequestID(ctx)),
		zap.String("offer_id", offer.ID),
		zap.String("status", string(status)))
	return offer, nil
}
