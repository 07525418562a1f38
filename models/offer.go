// File: /models/offer.go
package models

import (
	"time"
)

// OfferStatus is a closed enumeration. Only active offers can back a new
// loan application.
type OfferStatus string

const (
	OfferActive   OfferStatus = "active"
	OfferInactive OfferStatus = "inactive"
)

// ValidOfferStatus reports whether s is a persistable offer status.
func ValidOfferStatus(s OfferStatus) bool {
	return s == OfferActive || s == OfferInactive
}

// Offer is a priced lending proposal against a vehicle. Everything except
// Status is immutable after creation; MonthlyPayment is the amortization
// result of (Amount, TermMonths, APR) computed at creation time.
type Offer struct {
	ID             string      `json:"id" gorm:"primaryKey;size:36"`
	VehicleID      string      `json:"vehicle_id" gorm:"index;size:36;not null"`
	Amount         float64     `json:"amount" gorm:"not null"`
	TermMonths     int         `json:"term_months" gorm:"not null"`
	APR            float64     `json:"apr" gorm:"not null"`
	MonthlyPayment float64     `json:"monthly_payment" gorm:"not null"`
	Status         OfferStatus `json:"status" gorm:"type:varchar(16);index;not null;default:'active'"`
	CreatedAt      time.Time   `json:"created_at"`

	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	Loans   []Loan   `json:"loans,omitempty" gorm:"foreignKey:OfferID"`
}
