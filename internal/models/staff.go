package models

import "time"

type Staff struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	ShopID uint      `json:"shop_id"`
	Shop   ShopOwner `gorm:"foreignKey:ShopID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// Weekday names the staff member works, e.g. "monday".
	WorkingDays StringList `gorm:"type:text" json:"working_days"`

	// Dates (YYYY-MM-DD) the staff member is unavailable.
	UnavailableDates StringList `gorm:"type:text" json:"unavailable_dates"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
