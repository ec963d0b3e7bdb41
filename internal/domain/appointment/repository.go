package appointment

import (
	"context"
	"time"

	"github.com/salonhub/salon-booking-api/internal/models"
)

type Repository interface {
	// -------- Existence guard --------
	FindServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	FindStaff(
		ctx context.Context,
		id uint,
	) (*models.Staff, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListShopAppointments(
		ctx context.Context,
		shopID uint,
		date *time.Time,
		status *Status,
	) ([]models.Appointment, error)
}
