// File: /services/eligibility.go
package services

import (
	"fmt"
)

// maxDebtToIncome is the underwriting threshold: total monthly obligations
// must not exceed 40% of monthly income.
const maxDebtToIncome = 0.4

// ReviewAdvisoryNote is attached to an application that fails the DTI check.
// It is advisory only; the application still lands in pending_review.
const ReviewAdvisoryNote = "auto-check: debt-to-income above 40% threshold, manual review recommended"

// Eligibility is the outcome of the financial check. Reason is empty when
// the applicant is eligible.
type Eligibility struct {
	Eligible bool
	Reason   string
}

// EvaluateEligibility runs the debt-to-income rule against an applicant's
// profile and the monthly payment they would take on. Offer state (active or
// not) is the workflow's concern, not this check's.
func EvaluateEligibility(monthlyPayment, annualIncome, monthlyDebt float64) Eligibility {
	monthlyIncome := annualIncome / 12
	totalMonthlyDebt := monthlyPayment + monthlyDebt

	if totalMonthlyDebt > maxDebtToIncome*monthlyIncome {
		return Eligibility{
			Eligible: false,
			Reason: fmt.Sprintf("total monthly debt %.2f exceeds %.0f%% of monthly income %.2f",
				totalMonthlyDebt, maxDebtToIncome*100, monthlyIncome),
		}
	}
	return Eligibility{Eligible: true}
}
