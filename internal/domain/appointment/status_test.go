package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salonhub/salon-booking-api/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "CONFIRMED", "CANCELLED", "COMPLETED", "NO_SHOW"} {
		got, err := ParseStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}
}

func TestParseStatusRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "pending", "DONE", "PENDING "} {
		_, err := ParseStatus(s)
		assert.True(t, httperr.IsBusiness(err, "invalid_status"), "input %q", s)
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusConfirmed, InitialStatus(TypeStaff))
	assert.Equal(t, StatusPending, InitialStatus(TypeUser))
}
