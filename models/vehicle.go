// File: /models/vehicle.go
package models

import (
	"time"
)

type Vehicle struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	VIN       *string   `json:"vin" gorm:"uniqueIndex;size:64"`
	Make      string    `json:"make" gorm:"not null;size:100"`
	Model     string    `json:"model" gorm:"not null;size:100"`
	Year      int       `json:"year" gorm:"not null"`
	Mileage   int       `json:"mileage" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// A vehicle carries at most one current valuation; re-valuation
	// overwrites it in place.
	Valuation *Valuation `json:"valuation,omitempty" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	Offers    []Offer    `json:"offers,omitempty" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}
