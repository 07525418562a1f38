// File: /models/valuation.go
package models

import (
	"time"
)

// ValuationSource tells where an estimated value came from. It is a
// user-visible trust signal and is always persisted with the valuation.
type ValuationSource string

const (
	SourceExternal  ValuationSource = "external"
	SourceSimulated ValuationSource = "simulated"
)

type Valuation struct {
	ID             string          `json:"id" gorm:"primaryKey;size:36"`
	VehicleID      string          `json:"vehicle_id" gorm:"uniqueIndex;size:36;not null"`
	EstimatedValue float64         `json:"estimated_value" gorm:"not null"`
	Source         ValuationSource `json:"source" gorm:"type:varchar(16);not null;default:'simulated'"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}
