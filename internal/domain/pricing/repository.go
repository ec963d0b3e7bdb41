package pricing

import (
	"context"
	"time"

	"github.com/salonhub/salon-booking-api/internal/models"
)

type Repository interface {
	// -------- Service --------
	FindService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Variable pricing --------
	// FindActiveWindows returns every active override for the service
	// whose [start,end] window covers the date. More than one result
	// means the overlap invariant was violated in the data.
	FindActiveWindows(
		ctx context.Context,
		serviceID uint,
		on time.Time,
	) ([]models.VariablePricing, error)

	// FindOverlappingWindow returns an active override for the service
	// intersecting [start,end], or nil when none exists.
	FindOverlappingWindow(
		ctx context.Context,
		serviceID uint,
		start time.Time,
		end time.Time,
	) (*models.VariablePricing, error)

	CreateVariablePricing(
		ctx context.Context,
		vp *models.VariablePricing,
	) error
}
