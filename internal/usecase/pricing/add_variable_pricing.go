package pricing

import (
	"context"
	"time"

	domain "github.com/salonhub/salon-booking-api/internal/domain/pricing"
	"github.com/salonhub/salon-booking-api/internal/httperr"
	"github.com/salonhub/salon-booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AddVariablePricingInput struct {
	ServiceID         uint
	StartDate         time.Time
	EndDate           time.Time
	SpecialPriceCents int64
}

// ======================================================
// USE CASE
// ======================================================

type AddVariablePricing struct {
	repo domain.Repository
}

func NewAddVariablePricing(repo domain.Repository) *AddVariablePricing {
	return &AddVariablePricing{repo: repo}
}

// Execute creates a price override after checking that no other active
// window for the same service intersects the new range. The check and
// the insert are two separate statements; a concurrent conflicting
// insert can slip between them.
func (uc *AddVariablePricing) Execute(
	ctx context.Context,
	in AddVariablePricingInput,
) (*models.VariablePricing, error) {

	if _, err := uc.repo.FindService(ctx, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if !in.StartDate.Before(in.EndDate) {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}

	existing, err := uc.repo.FindOverlappingWindow(
		ctx,
		in.ServiceID,
		in.StartDate,
		in.EndDate,
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness("pricing_overlap")
	}

	vp := &models.VariablePricing{
		ServiceID:         in.ServiceID,
		StartDate:         in.StartDate,
		EndDate:           in.EndDate,
		SpecialPriceCents: in.SpecialPriceCents,
		Active:            true,
	}

	if err := uc.repo.CreateVariablePricing(ctx, vp); err != nil {
		return nil, err
	}

	return vp, nil
}
