package models

import "time"

type ShopOwner struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerName    string `gorm:"size:100;not null" json:"owner_name"`
	ShopName     string `gorm:"size:100;not null" json:"shop_name"`
	ShopLocation string `gorm:"size:255" json:"shop_location"`
	District     string `gorm:"size:100" json:"district"`
	State        string `gorm:"size:100" json:"state"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	ContactNumber  string `gorm:"size:20" json:"contact_number"`
	WhatsappNumber string `gorm:"size:20" json:"whatsapp_number"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Approved bool `gorm:"default:false" json:"approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
