// File: /services/amortization_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name       string
		principal  float64
		termMonths int
		annualRate float64
		want       float64
	}{
		{"standard amortization", 10000, 36, 0.12, 332.14},
		{"zero rate is simple division", 1000, 10, 0, 100.00},
		{"zero term returns principal", 5000, 0, 0.12, 5000},
		{"negative term returns principal", 5000, -3, 0.12, 5000},
		{"twelve percent over five years", 25000, 60, 0.12, 556.11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyPayment(tt.principal, tt.termMonths, tt.annualRate)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthlyPaymentIsDeterministic(t *testing.T) {
	first := MonthlyPayment(13750.55, 48, 0.0725)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, MonthlyPayment(13750.55, 48, 0.0725))
	}
}
