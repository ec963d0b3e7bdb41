package appointment

import "github.com/salonhub/salon-booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
	StatusNoShow    Status = "NO_SHOW"
)

// ===============================
// Appointment Type
// ===============================

type Type string

const (
	TypeUser  Type = "USER"
	TypeStaff Type = "STAFF"
)

// ParseStatus validates a status value coming from a request body.
// Transitions themselves are unrestricted: any known status may be
// assigned regardless of the current one.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// InitialStatus returns the status assigned at creation. Staff bookings
// are taken at the counter and start confirmed; customer bookings wait
// for confirmation.
func InitialStatus(t Type) Status {
	if t == TypeStaff {
		return StatusConfirmed
	}
	return StatusPending
}
