package models

import "time"

// User is a customer account. The platform superadmin lives in the same
// table with role "superadmin"; the role column distinguishes them.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	PhoneNumber  string `gorm:"size:20" json:"phone_number"`

	District string `gorm:"size:100" json:"district"`
	Gender   string `gorm:"size:20" json:"gender"`
	Age      int    `json:"age"`

	Role string `gorm:"size:20;default:'user'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
