// File: /repositories/loan_repository.go
package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"collateral-api/models"
)

type LoanRepository struct {
	db *gorm.DB
}

func NewLoanRepository(db *gorm.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

// Reviewers need the full collateral context in one fetch, so every read
// preloads the offer, its vehicle and the vehicle's valuation.
func (r *LoanRepository) withCollateral(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Offer").
		Preload("Offer.Vehicle").
		Preload("Offer.Vehicle.Valuation")
}

func (r *LoanRepository) Create(ctx context.Context, l *models.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) FindByID(ctx context.Context, id string) (*models.Loan, error) {
	var loan models.Loan
	err := r.withCollateral(ctx).Where("id = ?", id).First(&loan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

func (r *LoanRepository) FindAll(ctx context.Context) ([]models.Loan, error) {
	var loans []models.Loan
	err := r.withCollateral(ctx).Order("created_at DESC").Find(&loans).Error
	if err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *LoanRepository) Save(ctx context.Context, l *models.Loan) error {
	return r.db.WithContext(ctx).Omit("Offer").Save(l).Error
}
