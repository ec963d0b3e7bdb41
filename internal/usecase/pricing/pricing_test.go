package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/salon-booking-api/internal/domain/pricing"
	"github.com/salonhub/salon-booking-api/internal/httperr"
	"github.com/salonhub/salon-booking-api/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakePricingRepo struct {
	services map[uint]*models.Service
	windows  []models.VariablePricing

	created []*models.VariablePricing
}

var _ pricing.Repository = (*fakePricingRepo)(nil)

func (r *fakePricingRepo) FindService(_ context.Context, id uint) (*models.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return svc, nil
}

func (r *fakePricingRepo) FindActiveWindows(
	_ context.Context,
	serviceID uint,
	on time.Time,
) ([]models.VariablePricing, error) {
	var out []models.VariablePricing
	for _, w := range r.windows {
		if w.ServiceID == serviceID && w.Active && pricing.Covers(w.StartDate, w.EndDate, on) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakePricingRepo) FindOverlappingWindow(
	_ context.Context,
	serviceID uint,
	start time.Time,
	end time.Time,
) (*models.VariablePricing, error) {
	for _, w := range r.windows {
		if w.ServiceID == serviceID && w.Active && pricing.Overlaps(w.StartDate, w.EndDate, start, end) {
			found := w
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakePricingRepo) CreateVariablePricing(_ context.Context, vp *models.VariablePricing) error {
	r.created = append(r.created, vp)
	return nil
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newRepoWithOverride() *fakePricingRepo {
	return &fakePricingRepo{
		services: map[uint]*models.Service{
			1: {ID: 1, SalePriceCents: 10000},
		},
		windows: []models.VariablePricing{
			{
				ID:                1,
				ServiceID:         1,
				StartDate:         date("2024-06-01"),
				EndDate:           date("2024-06-10"),
				SpecialPriceCents: 8000,
				Active:            true,
			},
		},
	}
}

// ======================================================
// RESOLVE PRICE
// ======================================================

func TestResolvePriceUsesOverrideInsideWindow(t *testing.T) {
	uc := NewResolvePrice(newRepoWithOverride())

	price, err := uc.Execute(context.Background(), 1, date("2024-06-05"))
	require.NoError(t, err)
	assert.Equal(t, int64(8000), price)
}

func TestResolvePriceFallsBackOutsideWindow(t *testing.T) {
	uc := NewResolvePrice(newRepoWithOverride())

	price, err := uc.Execute(context.Background(), 1, date("2024-06-15"))
	require.NoError(t, err)
	assert.Equal(t, int64(10000), price)
}

func TestResolvePriceWindowBoundsInclusive(t *testing.T) {
	uc := NewResolvePrice(newRepoWithOverride())

	for _, day := range []string{"2024-06-01", "2024-06-10"} {
		price, err := uc.Execute(context.Background(), 1, date(day))
		require.NoError(t, err)
		assert.Equal(t, int64(8000), price, "date %s", day)
	}
}

func TestResolvePriceIgnoresInactiveWindow(t *testing.T) {
	repo := newRepoWithOverride()
	repo.windows[0].Active = false

	uc := NewResolvePrice(repo)

	price, err := uc.Execute(context.Background(), 1, date("2024-06-05"))
	require.NoError(t, err)
	assert.Equal(t, int64(10000), price)
}

func TestResolvePriceMultipleCoveringWindowsTakesFirst(t *testing.T) {
	repo := newRepoWithOverride()
	repo.windows = append(repo.windows, models.VariablePricing{
		ID:                2,
		ServiceID:         1,
		StartDate:         date("2024-06-03"),
		EndDate:           date("2024-06-08"),
		SpecialPriceCents: 6000,
		Active:            true,
	})

	uc := NewResolvePrice(repo)

	price, err := uc.Execute(context.Background(), 1, date("2024-06-05"))
	require.NoError(t, err)
	assert.Equal(t, int64(8000), price, "first window wins when data overlaps")
}

func TestResolvePriceUnknownService(t *testing.T) {
	uc := NewResolvePrice(newRepoWithOverride())

	_, err := uc.Execute(context.Background(), 99, date("2024-06-05"))
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

// ======================================================
// ADD VARIABLE PRICING
// ======================================================

func TestAddVariablePricing(t *testing.T) {
	repo := newRepoWithOverride()
	uc := NewAddVariablePricing(repo)

	vp, err := uc.Execute(context.Background(), AddVariablePricingInput{
		ServiceID:         1,
		StartDate:         date("2024-07-01"),
		EndDate:           date("2024-07-10"),
		SpecialPriceCents: 9000,
	})
	require.NoError(t, err)

	assert.True(t, vp.Active)
	assert.Equal(t, int64(9000), vp.SpecialPriceCents)
	require.Len(t, repo.created, 1)
}

func TestAddVariablePricingUnknownService(t *testing.T) {
	repo := newRepoWithOverride()
	uc := NewAddVariablePricing(repo)

	_, err := uc.Execute(context.Background(), AddVariablePricingInput{
		ServiceID: 99,
		StartDate: date("2024-07-01"),
		EndDate:   date("2024-07-10"),
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
	assert.Empty(t, repo.created)
}

func TestAddVariablePricingRejectsInvalidRange(t *testing.T) {
	repo := newRepoWithOverride()
	uc := NewAddVariablePricing(repo)

	for _, tc := range []struct{ start, end string }{
		{"2024-07-10", "2024-07-01"},
		{"2024-07-01", "2024-07-01"},
	} {
		_, err := uc.Execute(context.Background(), AddVariablePricingInput{
			ServiceID: 1,
			StartDate: date(tc.start),
			EndDate:   date(tc.end),
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_date_range"), "%s..%s", tc.start, tc.end)
	}
	assert.Empty(t, repo.created)
}

func TestAddVariablePricingRejectsOverlap(t *testing.T) {
	repo := newRepoWithOverride()
	uc := NewAddVariablePricing(repo)

	_, err := uc.Execute(context.Background(), AddVariablePricingInput{
		ServiceID:         1,
		StartDate:         date("2024-06-05"),
		EndDate:           date("2024-06-20"),
		SpecialPriceCents: 7000,
	})
	assert.True(t, httperr.IsBusiness(err, "pricing_overlap"))
	assert.Empty(t, repo.created)
}
