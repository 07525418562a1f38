// File: /services/loan_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"collateral-api/models"
)

func newLoanFixture(notifier ReviewNotifier) (*LoanService, *fakeOfferRepo, *fakeLoanRepo) {
	offers := newFakeOfferRepo()
	loans := newFakeLoanRepo(offers)
	svc := NewLoanService(loans, offers, notifier, zap.NewNop())
	return svc, offers, loans
}

func seedOffer(offers *fakeOfferRepo, monthlyPayment float64, status models.OfferStatus) *models.Offer {
	offer := &models.Offer{
		ID:             uuid.New().String(),
		VehicleID:      uuid.New().String(),
		Amount:         15000,
		TermMonths:     36,
		APR:            0.12,
		MonthlyPayment: monthlyPayment,
		Status:         status,
	}
	_ = offers.Create(context.Background(), offer)
	return offer
}

func TestApplyUnknownOffer(t *testing.T) {
	svc, _, loans := newLoanFixture(nil)

	_, err := svc.Apply(context.Background(), LoanApplication{
		ApplicantName:   "Alice",
		ApplicantIncome: 60000,
		OfferID:         "missing",
	})
	assert.ErrorIs(t, err, ErrOfferNotFound)
	assert.Equal(t, 0, loans.count())
}

func TestApplyAgainstInactiveOffer(t *testing.T) {
	svc, offers, loans := newLoanFixture(nil)
	offer := seedOffer(offers, 500, models.OfferInactive)

	_, err := svc.Apply(context.Background(), LoanApplication{
		ApplicantName:   "Alice",
		ApplicantIncome: 60000,
		OfferID:         offer.ID,
	})
	assert.ErrorIs(t, err, ErrOfferNotActive)
	assert.Equal(t, 0, loans.count())
}

func TestApplyValidation(t *testing.T) {
	svc, offers, loans := newLoanFixture(nil)
	offer := seedOffer(offers, 500, models.OfferActive)

	tests := []struct {
		name  string
		in    LoanApplication
		field string
	}{
		{"blank name", LoanApplication{ApplicantName: "  ", ApplicantIncome: 60000, OfferID: offer.ID}, "applicantName"},
		{"zero income", LoanApplication{ApplicantName: "Alice", ApplicantIncome: 0, OfferID: offer.ID}, "applicantIncome"},
		{"negative debt", LoanApplication{ApplicantName: "Alice", ApplicantIncome: 60000, ApplicantMonthlyDebt: -5, OfferID: offer.ID}, "applicantMonthlyDebt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Apply(context.Background(), tt.in)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
	assert.Equal(t, 0, loans.count())
}

func TestApplyEligibleApplicant(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, offers, _ := newLoanFixture(notifier)
	offer := seedOffer(offers, 1200, models.OfferActive)

	loan, err := svc.Apply(context.Background(), LoanApplication{
		ApplicantName:        "Alice",
		ApplicantIncome:      90000,
		ApplicantMonthlyDebt: 500,
		OfferID:              offer.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, models.LoanPendingReview, loan.Status)
	assert.Nil(t, loan.ReviewNotes)
	require.NotNil(t, loan.Offer)
	assert.Equal(t, offer.ID, loan.Offer.ID)
	assert.Equal(t, []string{loan.ID}, notifier.notified)
}

func TestApplyIneligibleApplicantStaysPending(t *testing.T) {
	svc, offers, _ := newLoanFixture(nil)
	offer := seedOffer(offers, 600, models.OfferActive)

	loan, err := svc.Apply(context.Background(), LoanApplication{
		ApplicantName:        "Bob",
		ApplicantIncome:      24000,
		ApplicantMonthlyDebt: 500,
		OfferID:              offer.ID,
	})
	require.NoError(t, err)

	// Advisory only: annotated, never auto-rejected.
	assert.Equal(t, models.LoanPendingReview, loan.Status)
	require.NotNil(t, loan.ReviewNotes)
	assert.Equal(t, ReviewAdvisoryNote, *loan.ReviewNotes)
}

func TestApplySnapshotsOfferTerms(t *testing.T) {
	svc, offers, _ := newLoanFixture(nil)
	offer := seedOffer(offers, 498.21, models.OfferActive)

	loan, err := svc.Apply(context.Background(), LoanApplication{
		ApplicantName:   "Alice",
		ApplicantIncome: 90000,
		OfferID:         offer.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, offer.Amount, loan.Amount)
	assert.Equal(t, offer.TermMonths, loan.TermMonths)
	assert.Equal(t, offer.APR, loan.APR)
	assert.Equal(t, offer.MonthlyPayment, loan.MonthlyPayment)

	// Retiring the offer later never changes the application's economics.
	stored, err := offers.FindByID(context.Background(), offer.ID)
	require.NoError(t, err)
	stored.Status = models.OfferInactive
	require.NoError(t, offers.Save(context.Background(), stored))

	reloaded, err := svc.FindOne(context.Background(), loan.ID)
	require.NoError(t, err)
	assert.Equal(t, offer.MonthlyPayment, reloaded.MonthlyPayment)
	assert.Equal(t, offer.Amount, reloaded.Amount)
}

func TestApplySurvivesNotifierFailure(t *testing.T) {
	notifier := &fakeNotifier{err: errFakeDown}
	svc, offers, _ := newLoanFixture(notifier)
	offer := seedOffer(offers, 500, models.OfferActive)

	loan, err := svc.Apply(context.Background(), LoanApplication{
		ApplicantName:   "Alice",
		ApplicantIncome: 90000,
		OfferID:         offer.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.LoanPendingReview, loan.Status)
}

func TestUpdateStatusRoundTrip(t *testing.T) {
	svc, offers, _ := newLoanFixture(nil)
	offer := seedOffer(offers, 500, models.OfferActive)

	loan, err := svc.Apply(context.Background(), LoanApplication{
		ApplicantName:   "Alice",
		ApplicantIncome: 90000,
		OfferID:         offer.ID,
	})
	require.NoError(t, err)

	notes := "looks good"
	updated, err := svc.UpdateStatus(context.Background(), loan.ID, models.LoanApproved, &notes)
	require.NoError(t, err)

	fetched, err := svc.FindOne(context.Background(), loan.ID)
	require.NoError(t, err)

	assert.Equal(t, models.LoanApproved, fetched.Status)
	require.NotNil(t, fetched.ReviewNotes)
	assert.Equal(t, "looks good", *fetched.ReviewNotes)
	require.NotNil(t, fetched.ReviewedAt)
	assert.False(t, fetched.ReviewedAt.Before(fetched.CreatedAt))
	assert.Equal(t, updated.Status, fetched.Status)
}

func TestUpdateStatusPreservesNotesWhenAbsent(t *testing.T) {
	svc, offers, _ := newLoanFixture(nil)
	offer := seedOffer(offers, 600, models.OfferActive)

	// Ineligible applicant so the advisory note is present.
	loan, err := svc.Apply(context.Background(), LoanApplication{
		ApplicantName:        "Bob",
		ApplicantIncome:      24000,
		ApplicantMonthlyDebt: 500,
		OfferID:              offer.ID,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), loan.ID, models.LoanRejected, nil)
	require.NoError(t, err)

	require.NotNil(t, updated.ReviewNotes)
	assert.Equal(t, ReviewAdvisoryNote, *updated.ReviewNotes)
}

func TestUpdateStatusUnknownLoan(t *testing.T) {
	svc, _, _ := newLoanFixture(nil)

	_, err := svc.UpdateStatus(context.Background(), "missing", models.LoanApproved, nil)
	assert.ErrorIs(t, err, ErrLoanNotFound)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, offers, _ := newLoanFixture(nil)
	offer := seedOffer(offers, 500, models.OfferActive)

	loan, err := svc.Apply(context.Background(), LoanApplication{
		ApplicantName:   "Alice",
		ApplicantIncome: 90000,
		OfferID:         offer.ID,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), loan.ID, models.LoanStatus("escalated"), nil)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestFindAllLoadsCollateralContext(t *testing.T) {
	svc, offers, _ := newLoanFixture(nil)
	offer := seedOffer(offers, 500, models.OfferActive)

	_, err := svc.Apply(context.Background(), LoanApplication{
		ApplicantName:   "Alice",
		ApplicantIncome: 90000,
		OfferID:         offer.ID,
	})
	require.NoError(t, err)

	loans, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, loans, 1)
	require.NotNil(t, loans[0].Offer)
	assert.Equal(t, offer.ID, loans[0].Offer.ID)
	assert.WithinDuration(t, time.Now(), loans[0].CreatedAt, time.Minute)
}
