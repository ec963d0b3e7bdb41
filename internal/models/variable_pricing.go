package models

import "time"

// VariablePricing is a time-bounded price override for one service.
// Active windows for the same service must not overlap; the check runs
// at creation time (see usecase/pricing).
type VariablePricing struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceID uint    `gorm:"index;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`

	SpecialPriceCents int64 `gorm:"not null" json:"special_price_cents"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
