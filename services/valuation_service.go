// File: /services/valuation_service.go
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"collateral-api/models"
	"collateral-api/utils"
)

// Simulated estimator constants. The fallback must be a pure function of
// (year, mileage) so outputs are exactly reproducible.
const (
	simulatedBaseValue  = 20000.0
	simulatedBaseYear   = 2010
	valuePerYear        = 1000.0
	valueLostPerMile    = 0.02
	simulatedFloorValue = 5000.0
)

// VehicleRepository is the vehicle lookup capability the valuation and offer
// services consume. Find methods return (nil, nil) when no record matches.
type VehicleRepository interface {
	Create(ctx context.Context, v *models.Vehicle) error
	FindByID(ctx context.Context, id string) (*models.Vehicle, error)
	FindByVIN(ctx context.Context, vin string) (*models.Vehicle, error)
	FindAll(ctx context.Context) ([]models.Vehicle, error)
}

// ValuationRepository persists the single valuation a vehicle owns. Upsert
// must be atomic on vehicle identity (unique key + conflict handling) so
// concurrent resolutions cannot produce two rows for one vehicle.
type ValuationRepository interface {
	Upsert(ctx context.Context, v *models.Valuation) error
	FindByVehicle(ctx context.Context, vehicleID string) (*models.Valuation, error)
	FindAll(ctx context.Context) ([]models.Valuation, error)
}

type ValuationService struct {
	vehicles   VehicleRepository
	valuations ValuationRepository
	lookup     VinLookupClient
	logger     *zap.Logger
}

func NewValuationService(vehicles VehicleRepository, valuations ValuationRepository, lookup VinLookupClient, logger *zap.Logger) *ValuationService {
	return &ValuationService{
		vehicles:   vehicles,
		valuations: valuations,
		lookup:     lookup,
		logger:     logger,
	}
}

// SimulateValue is the deterministic fallback estimator: a base value
// adjusted for model year and mileage, floored at a minimum resale value.
func SimulateValue(year, mileage int) float64 {
	value := simulatedBaseValue + valuePerYear*float64(year-simulatedBaseYear) - valueLostPerMile*float64(mileage)
	if value < simulatedFloorValue {
		return simulatedFloorValue
	}
	return value
}

// ValueVehicleByID resolves the market value for an existing vehicle,
// preferring the external lookup and falling back to the simulated
// estimator. The vehicle's valuation record is created or overwritten in
// place - never duplicated.
func (s *ValuationService) ValueVehicleByID(ctx context.Context, vehicleID string) (*models.Valuation, error) {
	log := s.logger.With(zap.String("request_id", utils.RequestID(ctx)), zap.String("vehicle_id", vehicleID))

	vehicle, err := s.vehicles.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("load vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	estimatedValue, source := s.resolveValue(ctx, vehicle, log)
	return s.upsertValuation(ctx, vehicle, estimatedValue, source)
}

// ValueByVIN resolves a valuation by VIN. A known VIN delegates to the
// by-id path; an unknown VIN is registered from external lookup data, or
// fails with not-found when the lookup has nothing - a zero-value vehicle is
// never fabricated silently.
func (s *ValuationService) ValueByVIN(ctx context.Context, vin string) (*models.Valuation, error) {
	log := s.logger.With(zap.String("request_id", utils.RequestID(ctx)), zap.String("vin", vin))

	vehicle, err := s.vehicles.FindByVIN(ctx, vin)
	if err != nil {
		return nil, fmt.Errorf("load vehicle by vin: %w", err)
	}
	if vehicle != nil {
		return s.ValueVehicleByID(ctx, vehicle.ID)
	}

	res, err := s.lookup.Lookup(ctx, vin)
	if err != nil {
		log.Info("vin unknown and external lookup has no data")
		return nil, ErrVehicleNotFound
	}

	// Mileage is not part of the lookup payload; a freshly registered
	// vehicle starts at zero.
	vinCopy := vin
	vehicle = &models.Vehicle{
		ID:      uuid.New().String(),
		VIN:     &vinCopy,
		Make:    res.Make,
		Model:   res.Model,
		Year:    res.Year,
		Mileage: 0,
	}
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("register vehicle: %w", err)
	}

	estimatedValue := res.EstimatedValue
	source := models.SourceExternal
	if estimatedValue <= 0 {
		estimatedValue = SimulateValue(vehicle.Year, vehicle.Mileage)
		source = models.SourceSimulated
		log.Info("lookup had no price, using simulated value", zap.Float64("estimated_value", estimatedValue))
	}

	return s.upsertValuation(ctx, vehicle, estimatedValue, source)
}

func (s *ValuationService) FindAll(ctx context.Context) ([]models.Valuation, error) {
	return s.valuations.FindAll(ctx)
}

func (s *ValuationService) FindByVehicle(ctx context.Context, vehicleID string) (*models.Valuation, error) {
	valuation, err := s.valuations.FindByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("load valuation: %w", err)
	}
	if valuation == nil {
		return nil, ErrVehicleNotFound
	}
	return valuation, nil
}

// resolveValue tries the external capability once and swallows every failure
// into a simulated fallback; the caller only ever sees the source tag.
func (s *ValuationService) resolveValue(ctx context.Context, vehicle *models.Vehicle, log *zap.Logger) (float64, models.ValuationSource) {
	if vehicle.VIN != nil && *vehicle.VIN != "" {
		res, err := s.lookup.Lookup(ctx, *vehicle.VIN)
		if err == nil && res.EstimatedValue > 0 {
			log.Info("external valuation resolved", zap.Float64("estimated_value", res.EstimatedValue))
			return res.EstimatedValue, models.SourceExternal
		}
		log.Info("external lookup unavailable, falling back to simulation")
	}

	value := SimulateValue(vehicle.Year, vehicle.Mileage)
	log.Info("simulated valuation generated", zap.Float64("estimated_value", value))
	return value, models.SourceSimulated
}

func (s *ValuationService) upsertValuation(ctx context.Context, vehicle *models.Vehicle, value float64, source models.ValuationSource) (*models.Valuation, error) {
	valuation := &models.Valuation{
		ID:             uuid.New().String(),
		VehicleID:      vehicle.ID,
		EstimatedValue: value,
		Source:         source,
	}
	if err := s.valuations.Upsert(ctx, valuation); err != nil {
		return nil, fmt.Errorf("upsert valuation: %w", err)
	}

	// Re-read so the caller sees the stored identity: on conflict the
	// existing row keeps its id and timestamps.
	stored, err := s.valuations.FindByVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, fmt.Errorf("reload valuation: %w", err)
	}
	if stored == nil {
		return nil, fmt.Errorf("valuation for vehicle %s missing after upsert", vehicle.ID)
	}
	stored.Vehicle = vehicle
	return stored, nil
}
