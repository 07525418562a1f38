// File: /services/fakes_test.go
package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"collateral-api/models"
)

// In-memory repository fakes backing the service tests.

type fakeVehicleRepo struct {
	mu       sync.Mutex
	vehicles map[string]*models.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[string]*models.Vehicle)}
}

func (f *fakeVehicleRepo) Create(ctx context.Context, v *models.Vehicle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}
	copied := *v
	f.vehicles[v.ID] = &copied
	return nil
}

func (f *fakeVehicleRepo) FindByID(ctx context.Context, id string) (*models.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.vehicles[id]
	if !ok {
		return nil, nil
	}
	copied := *v
	return &copied, nil
}

func (f *fakeVehicleRepo) FindByVIN(ctx context.Context, vin string) (*models.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.vehicles {
		if v.VIN != nil && *v.VIN == vin {
			copied := *v
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeVehicleRepo) FindAll(ctx context.Context) ([]models.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Vehicle, 0, len(f.vehicles))
	for _, v := range f.vehicles {
		out = append(out, *v)
	}
	return out, nil
}

type fakeValuationRepo struct {
	mu        sync.Mutex
	byVehicle map[string]*models.Valuation
}

func newFakeValuationRepo() *fakeValuationRepo {
	return &fakeValuationRepo{byVehicle: make(map[string]*models.Valuation)}
}

// Upsert mirrors the database behavior: on conflict the stored row keeps
// its identity and creation time, only value/source/updated_at change.
func (f *fakeValuationRepo) Upsert(ctx context.Context, v *models.Valuation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.byVehicle[v.VehicleID]; ok {
		existing.EstimatedValue = v.EstimatedValue
		existing.Source = v.Source
		existing.UpdatedAt = time.Now()
		return nil
	}
	copied := *v
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	f.byVehicle[v.VehicleID] = &copied
	return nil
}

func (f *fakeValuationRepo) FindByVehicle(ctx context.Context, vehicleID string) (*models.Valuation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.byVehicle[vehicleID]
	if !ok {
		return nil, nil
	}
	copied := *v
	return &copied, nil
}

func (f *fakeValuationRepo) FindAll(ctx context.Context) ([]models.Valuation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Valuation, 0, len(f.byVehicle))
	for _, v := range f.byVehicle {
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeValuationRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byVehicle)
}

type fakeOfferRepo struct {
	mu     sync.Mutex
	offers map[string]*models.Offer
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{offers: make(map[string]*models.Offer)}
}

func (f *fakeOfferRepo) Create(ctx context.Context, o *models.Offer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	copied := *o
	copied.Vehicle = nil
	f.offers[o.ID] = &copied
	return nil
}

func (f *fakeOfferRepo) FindByID(ctx context.Context, id string) (*models.Offer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.offers[id]
	if !ok {
		return nil, nil
	}
	copied := *o
	return &copied, nil
}

func (f *fakeOfferRepo) List(ctx context.Context, vehicleID string, status models.OfferStatus) ([]models.Offer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Offer
	for _, o := range f.offers {
		if vehicleID != "" && o.VehicleID != vehicleID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOfferRepo) Save(ctx context.Context, o *models.Offer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *o
	copied.Vehicle = nil
	f.offers[o.ID] = &copied
	return nil
}

type fakeLoanRepo struct {
	mu     sync.Mutex
	loans  map[string]*models.Loan
	offers *fakeOfferRepo
}

func newFakeLoanRepo(offers *fakeOfferRepo) *fakeLoanRepo {
	return &fakeLoanRepo{loans: make(map[string]*models.Loan), offers: offers}
}

func (f *fakeLoanRepo) Create(ctx context.Context, l *models.Loan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	copied := *l
	copied.Offer = nil
	f.loans[l.ID] = &copied
	return nil
}

// FindByID mimics the gorm repository's eager loading by attaching the
// stored offer.
func (f *fakeLoanRepo) FindByID(ctx context.Context, id string) (*models.Loan, error) {
	f.mu.Lock()
	l, ok := f.loans[id]
	f.mu.Unlock()
	if !ok {
		return nil, nil
	}
	copied := *l
	if f.offers != nil {
		offer, _ := f.offers.FindByID(ctx, l.OfferID)
		copied.Offer = offer
	}
	return &copied, nil
}

func (f *fakeLoanRepo) FindAll(ctx context.Context) ([]models.Loan, error) {
	f.mu.Lock()
	ids := make([]string, 0, len(f.loans))
	for id := range f.loans {
		ids = append(ids, id)
	}
	f.mu.Unlock()

	out := make([]models.Loan, 0, len(ids))
	for _, id := range ids {
		l, err := f.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeLoanRepo) Save(ctx context.Context, l *models.Loan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *l
	copied.Offer = nil
	f.loans[l.ID] = &copied
	return nil
}

func (f *fakeLoanRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.loans)
}

// fakeVinLookup scripts the external capability.
type fakeVinLookup struct {
	result *VinLookupResult
	err    error
	calls  int
}

func (f *fakeVinLookup) Lookup(ctx context.Context, vin string) (*VinLookupResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeNotifier struct {
	notified []string
	err      error
}

func (f *fakeNotifier) NotifyPendingReview(loan *models.Loan) error {
	f.notified = append(f.notified, loan.ID)
	return f.err
}

var errFakeDown = errors.New("backend down")

func seedVehicle(repo *fakeVehicleRepo, vin string, year, mileage int) *models.Vehicle {
	v := &models.Vehicle{
		ID:      uuid.New().String(),
		Make:    "Ford",
		Model:   "F-150",
		Year:    year,
		Mileage: mileage,
	}
	if vin != "" {
		v.VIN = &vin
	}
	_ = repo.Create(context.Background(), v)
	return v
}
