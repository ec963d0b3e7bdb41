package models

import "time"

// Service is a sellable offering. Prices are stored in minor units
// (cents) to keep money arithmetic exact.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	// SalePriceCents is the standard price charged to customers.
	// ActualPriceCents is a reference/cost price and never enters
	// any total computation.
	SalePriceCents   int64 `gorm:"not null" json:"sale_price_cents"`
	ActualPriceCents int64 `gorm:"not null" json:"actual_price_cents"`

	ImageURL string `gorm:"size:255" json:"image_url"`

	CategoryID uint            `json:"category_id"`
	Category   ServiceCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`

	ShopID uint      `json:"shop_id"`
	Shop   ShopOwner `gorm:"foreignKey:ShopID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	StaffMembers []Staff `gorm:"many2many:service_staff;" json:"staff_members"`

	DurationMin int        `json:"duration_min"`
	Tags        StringList `gorm:"type:text" json:"tags"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
