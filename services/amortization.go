// File: /services/amortization.go
package services

import (
	"math"
)

// MonthlyPayment computes the level payment that retires principal plus
// interest over termMonths at the given annual rate (a 0-1 ratio).
//
// Degenerate cases are documented behavior, not errors: a non-positive term
// returns the principal unchanged, and a zero rate is a simple division with
// no compounding. The result is rounded half-away-from-zero to cents, and
// the function is pure - identical inputs always produce identical output.
func MonthlyPayment(principal float64, termMonths int, annualRate float64) float64 {
	if termMonths <= 0 {
		return principal
	}
	if annualRate == 0 {
		return roundCents(principal / float64(termMonths))
	}

	monthlyRate := annualRate / 12
	denom := 1 - math.Pow(1+monthlyRate, -float64(termMonths))
	payment := principal * monthlyRate / denom
	return roundCents(payment)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
