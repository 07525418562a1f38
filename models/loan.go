// File: /models/loan.go
package models

import (
	"time"
)

// LoanStatus is a closed enumeration validated at every transition boundary.
type LoanStatus string

const (
	LoanPendingReview LoanStatus = "pending_review"
	LoanApproved      LoanStatus = "approved"
	LoanRejected      LoanStatus = "rejected"
)

// ReviewTransitions is the named transition policy for the review workflow.
// Every status pair is currently permitted, matching the manual review
// process where a reviewer may revisit any decision; tightening the workflow
// later only needs a table edit, call sites all go through CanTransition.
var ReviewTransitions = map[LoanStatus][]LoanStatus{
	LoanPendingReview: {LoanApproved, LoanRejected},
	LoanApproved:      {LoanPendingReview, LoanRejected},
	LoanRejected:      {LoanPendingReview, LoanApproved},
}

// CanTransition reports whether from -> to is permitted by the review policy.
// Unknown statuses are never permitted.
func CanTransition(from, to LoanStatus) bool {
	if from == to {
		return from == LoanPendingReview || from == LoanApproved || from == LoanRejected
	}
	allowed, ok := ReviewTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Loan is a single application against an offer. Amount, TermMonths, APR and
// MonthlyPayment are a frozen snapshot of the offer taken at apply time, so
// later offer changes never alter an application's economics.
type Loan struct {
	ID                   string     `json:"id" gorm:"primaryKey;size:36"`
	OfferID              string     `json:"offer_id" gorm:"index;size:36;not null"`
	ApplicantName        string     `json:"applicant_name" gorm:"not null;size:191"`
	ApplicantIncome      float64    `json:"applicant_income" gorm:"not null"`
	ApplicantMonthlyDebt float64    `json:"applicant_monthly_debt" gorm:"not null;default:0"`
	Amount               float64    `json:"amount" gorm:"not null"`
	TermMonths           int        `json:"term_months" gorm:"not null"`
	APR                  float64    `json:"apr" gorm:"not null"`
	MonthlyPayment       float64    `json:"monthly_payment" gorm:"not null"`
	Status               LoanStatus `json:"status" gorm:"type:varchar(20);index;not null;default:'pending_review'"`
	ReviewNotes          *string    `json:"review_notes" gorm:"type:text"`
	CreatedAt            time.Time  `json:"created_at"`
	ReviewedAt           *time.Time `json:"reviewed_at"`

	Offer *Offer `json:"offer,omitempty" gorm:"foreignKey:OfferID"`
}
