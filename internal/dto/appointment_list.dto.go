package dto

import "time"

type AppointmentListDTO struct {
	ID               uint      `json:"id"`
	Reference        string    `json:"reference"`
	Type             string    `json:"type"`
	AppointmentDate  time.Time `json:"appointment_date"`
	AppointmentTime  string    `json:"appointment_time"`
	Status           string    `json:"status"`
	CustomerName     string    `json:"customer_name"`
	StaffName        string    `json:"staff_name"`
	TotalAmountCents int64     `json:"total_amount_cents"`
}
