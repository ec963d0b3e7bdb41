package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Reference is the public booking code handed to customers.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	// Type is "USER" for customer-initiated bookings and "STAFF"
	// for bookings created at the counter.
	Type string `gorm:"size:10;default:'USER'" json:"type"`

	Services []Service `gorm:"many2many:appointment_services;" json:"services"`

	SelectedStaffID uint  `json:"selected_staff_id"`
	SelectedStaff   Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"selected_staff"`

	// TotalAmountCents is a snapshot taken at creation time. It is
	// never recomputed, even if service prices change later.
	TotalAmountCents int64 `gorm:"not null" json:"total_amount_cents"`

	AppointmentDate time.Time `gorm:"type:date" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:8" json:"appointment_time"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	// Customer-initiated bookings carry a user reference.
	UserID *uint `json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	// Staff-created bookings carry free-form customer contact fields
	// plus the staff member who took the booking.
	CustomerName     string `gorm:"size:100" json:"customer_name,omitempty"`
	CustomerPhone    string `gorm:"size:20" json:"customer_phone,omitempty"`
	CustomerEmail    string `gorm:"size:100" json:"customer_email,omitempty"`
	CreatedByStaffID *uint  `json:"created_by_staff_id,omitempty"`
	CreatedByStaff   *Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"created_by_staff,omitempty"`

	ShopID uint      `json:"shop_id"`
	Shop   ShopOwner `gorm:"foreignKey:ShopID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
