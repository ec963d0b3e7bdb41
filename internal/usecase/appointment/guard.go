package appointment

import (
	"context"

	domain "github.com/salonhub/salon-booking-api/internal/domain/appointment"
	"github.com/salonhub/salon-booking-api/internal/httperr"
	"github.com/salonhub/salon-booking-api/internal/models"
)

// verifyBookable runs before any total computation on both creation
// paths. Every requested service id must resolve and the selected staff
// member must exist; nothing is persisted when either check fails.
func verifyBookable(
	ctx context.Context,
	repo domain.Repository,
	serviceIDs []uint,
	staffID uint,
) ([]models.Service, *models.Staff, error) {

	services, err := repo.FindServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, nil, err
	}

	found := make(map[uint]bool, len(services))
	for _, svc := range services {
		found[svc.ID] = true
	}
	for _, id := range serviceIDs {
		if !found[id] {
			return nil, nil, httperr.ErrBusiness("some_services_not_found")
		}
	}

	staff, err := repo.FindStaff(ctx, staffID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("selected_staff_not_found")
	}

	return services, staff, nil
}
