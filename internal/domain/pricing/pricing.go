package pricing

import (
	"time"

	"github.com/salonhub/salon-booking-api/internal/models"
)

// ===============================
// Price resolution rules
// ===============================

// Covers reports whether an override window applies on the given date.
// Both bounds are inclusive.
func Covers(start, end, on time.Time) bool {
	return !on.Before(start) && !on.After(end)
}

// Overlaps reports whether the ranges [aStart,aEnd] and [bStart,bEnd]
// intersect. Bounds are inclusive, matching the coverage rule above.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// EffectivePriceCents returns the price actually charged for a service:
// the override price when an active window is supplied, the standard
// sale price otherwise.
func EffectivePriceCents(svc *models.Service, override *models.VariablePricing) int64 {
	if override != nil {
		return override.SpecialPriceCents
	}
	return svc.SalePriceCents
}

// TotalCents sums standard sale prices for the requested ids. Every id
// must be present in byID. Duplicate ids are priced independently.
func TotalCents(ids []uint, byID map[uint]models.Service) int64 {
	var total int64
	for _, id := range ids {
		svc := byID[id]
		total += svc.SalePriceCents
	}
	return total
}

// IndexByID builds the lookup TotalCents consumes.
func IndexByID(services []models.Service) map[uint]models.Service {
	byID := make(map[uint]models.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}
	return byID
}
