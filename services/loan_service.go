// File: /services/loan_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"collateral-api/models"
	"collateral-api/utils"
)

// LoanRepository persists applications. Reads always come back with the
// offer, its vehicle and the vehicle's valuation eagerly loaded, since a
// review decision needs the full collateral context in one fetch. FindByID
// returns (nil, nil) when no record matches.
type LoanRepository interface {
	Create(ctx context.Context, l *models.Loan) error
	FindByID(ctx context.Context, id string) (*models.Loan, error)
	FindAll(ctx context.Context) ([]models.Loan, error)
	Save(ctx context.Context, l *models.Loan) error
}

// ReviewNotifier pushes a heads-up about a freshly filed application to the
// review team. Notification failures are logged, never surfaced.
type ReviewNotifier interface {
	NotifyPendingReview(loan *models.Loan) error
}

type LoanService struct {
	loans    LoanRepository
	offers   OfferRepository
	notifier ReviewNotifier
	logger   *zap.Logger
}

// NewLoanService wires the application workflow. notifier may be nil.
func NewLoanService(loans LoanRepository, offers OfferRepository, notifier ReviewNotifier, logger *zap.Logger) *LoanService {
	return &LoanService{
		loans:    loans,
		offers:   offers,
		notifier: notifier,
		logger:   logger,
	}
}

type LoanApplication struct {
	ApplicantName        string
	ApplicantIncome      float64
	ApplicantMonthlyDebt float64
	OfferID              string
}

// Apply files a loan application against an active offer. The offer's
// economics are snapshotted onto the loan, the eligibility check runs as an
// advisory annotation, and the application always lands in pending_review
// for a human decision.
func (s *LoanService) Apply(ctx context.Context, in LoanApplication) (*models.Loan, error) {
	if strings.TrimSpace(in.ApplicantName) == "" {
		return nil, &ValidationError{Field: "applicantName", Message: "is required"}
	}
	if in.ApplicantIncome <= 0 {
		return nil, &ValidationError{Field: "applicantIncome", Message: "must be greater than zero"}
	}
	if in.ApplicantMonthlyDebt < 0 {
		return nil, &ValidationError{Field: "applicantMonthlyDebt", Message: "must not be negative"}
	}

	offer, err := s.offers.FindByID(ctx, in.OfferID)
	if err != nil {
		return nil, fmt.Errorf("load offer: %w", err)
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}
	if offer.Status != models.OfferActive {
		return nil, ErrOfferNotActive
	}

	log := s.logger.With(
		zap.String("request_id", utils.RequestID(ctx)),
		zap.String("offer_id", offer.ID))

	loan := &models.Loan{
		ID:                   uuid.New().String(),
		OfferID:              offer.ID,
		ApplicantName:        strings.TrimSpace(in.ApplicantName),
		ApplicantIncome:      in.ApplicantIncome,
		ApplicantMonthlyDebt: in.ApplicantMonthlyDebt,
		Amount:               offer.Amount,
		TermMonths:           offer.TermMonths,
		APR:                  offer.APR,
		MonthlyPayment:       offer.MonthlyPayment,
		Status:               models.LoanPendingReview,
	}

	eligibility := EvaluateEligibility(loan.MonthlyPayment, loan.ApplicantIncome, loan.ApplicantMonthlyDebt)
	if !eligibility.Eligible {
		notes := ReviewAdvisoryNote
		loan.ReviewNotes = &notes
		log.Info("application flagged for review", zap.String("reason", eligibility.Reason))
	}

	if err := s.loans.Create(ctx, loan); err != nil {
		return nil, fmt.Errorf("create loan: %w", err)
	}

	saved, err := s.loans.FindByID(ctx, loan.ID)
	if err != nil {
		return nil, fmt.Errorf("reload loan: %w", err)
	}
	if saved == nil {
		return nil, fmt.Errorf("loan %s missing after create", loan.ID)
	}

	log.Info("application filed", zap.String("loan_id", saved.ID))

	if s.notifier != nil {
		if err := s.notifier.NotifyPendingReview(saved); err != nil {
			log.Warn("review notification failed", zap.Error(err))
		}
	}

	return saved, nil
}

// UpdateStatus applies a reviewer decision. The target status is validated
// against the review transition policy, notes are overwritten only when a
// new value is supplied, and the review timestamp is stamped.
func (s *LoanService) UpdateStatus(ctx context.Context, loanID string, status models.LoanStatus, reviewNotes *string) (*models.Loan, error) {
	loan, err := s.loans.FindByID(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("load loan: %w", err)
	}
	if loan == nil {
		return nil, ErrLoanNotFound
	}

	if !models.CanTransition(loan.Status, status) {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("cannot move %s to %s", loan.Status, status)}
	}

	loan.Status = status
	if reviewNotes != nil {
		loan.ReviewNotes = reviewNotes
	}
	now := time.Now()
	loan.ReviewedAt = &now

	if err := s.loans.Save(ctx, loan); err != nil {
		return nil, fmt.Errorf("save loan: %w", err)
	}

	s.logger.Info("loan reviewed",
		zap.String("request_id", utils.RequestID(ctx)),
		zap.String("loan_id", loan.ID),
		zap.String("status", string(status)))
	return loan, nil
}

func (s *LoanService) FindOne(ctx context.Context, id string) (*models.Loan, error) {
	loan, err := s.loans.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load loan: %w", err)
	}
	if loan == nil {
		return nil, ErrLoanNotFound
	}
	return loan, nil
}

func (s *LoanService) FindAll(ctx context.Context) ([]models.Loan, error) {
	return s.loans.FindAll(ctx)
}
