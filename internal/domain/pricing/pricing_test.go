package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salonhub/salon-booking-api/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCoversInclusiveBounds(t *testing.T) {
	start := date("2024-06-01")
	end := date("2024-06-10")

	assert.True(t, Covers(start, end, date("2024-06-01")), "start bound is inclusive")
	assert.True(t, Covers(start, end, date("2024-06-10")), "end bound is inclusive")
	assert.True(t, Covers(start, end, date("2024-06-05")))

	assert.False(t, Covers(start, end, date("2024-05-31")))
	assert.False(t, Covers(start, end, date("2024-06-11")))
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"disjoint before", "2024-06-01", "2024-06-10", "2024-06-11", "2024-06-20", false},
		{"disjoint after", "2024-06-11", "2024-06-20", "2024-06-01", "2024-06-10", false},
		{"touching at bound", "2024-06-01", "2024-06-10", "2024-06-10", "2024-06-20", true},
		{"partial", "2024-06-05", "2024-06-15", "2024-06-01", "2024-06-10", true},
		{"contained", "2024-06-03", "2024-06-05", "2024-06-01", "2024-06-10", true},
		{"containing", "2024-06-01", "2024-06-10", "2024-06-03", "2024-06-05", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(date(tc.aStart), date(tc.aEnd), date(tc.bStart), date(tc.bEnd))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEffectivePriceCents(t *testing.T) {
	svc := &models.Service{ID: 1, SalePriceCents: 10000}

	assert.Equal(t, int64(10000), EffectivePriceCents(svc, nil))

	override := &models.VariablePricing{ServiceID: 1, SpecialPriceCents: 8000}
	assert.Equal(t, int64(8000), EffectivePriceCents(svc, override))
}

func TestTotalCents(t *testing.T) {
	byID := IndexByID([]models.Service{
		{ID: 1, SalePriceCents: 10000},
		{ID: 2, SalePriceCents: 5000},
	})

	assert.Equal(t, int64(15000), TotalCents([]uint{1, 2}, byID))
	assert.Equal(t, int64(0), TotalCents(nil, byID))
}

func TestTotalCentsDuplicatesPricedIndependently(t *testing.T) {
	byID := IndexByID([]models.Service{
		{ID: 1, SalePriceCents: 10000},
	})

	assert.Equal(t, int64(20000), TotalCents([]uint{1, 1}, byID))
}
