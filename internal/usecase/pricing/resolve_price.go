package pricing

import (
	"context"
	"log"
	"time"

	domain "github.com/salonhub/salon-booking-api/internal/domain/pricing"
	"github.com/salonhub/salon-booking-api/internal/httperr"
)

// ======================================================
// RESOLVE PRICE
// ======================================================

type ResolvePrice struct {
	repo domain.Repository
}

func NewResolvePrice(repo domain.Repository) *ResolvePrice {
	return &ResolvePrice{repo: repo}
}

// Execute returns the effective unit price (in cents) for a service on
// a date: the active override covering the date when one exists, the
// standard sale price otherwise.
func (uc *ResolvePrice) Execute(
	ctx context.Context,
	serviceID uint,
	on time.Time,
) (int64, error) {

	svc, err := uc.repo.FindService(ctx, serviceID)
	if err != nil {
		return 0, httperr.ErrBusiness("service_not_found")
	}

	windows, err := uc.repo.FindActiveWindows(ctx, serviceID, on)
	if err != nil {
		return 0, err
	}

	if len(windows) > 1 {
		// Overlapping active windows violate the creation-time
		// invariant; keep serving but flag the data.
		log.Printf(
			"pricing: service %d has %d active overrides covering %s",
			serviceID, len(windows), on.Format("2006-01-02"),
		)
	}

	if len(windows) > 0 {
		return windows[0].SpecialPriceCents, nil
	}

	return svc.SalePriceCents, nil
}
