package appointment

import (
	"context"

	"github.com/salonhub/salon-booking-api/internal/audit"
	domain "github.com/salonhub/salon-booking-api/internal/domain/appointment"
	"github.com/salonhub/salon-booking-api/internal/httperr"
	"github.com/salonhub/salon-booking-api/internal/models"
)

type SetAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute overwrites the status unconditionally. There is no transition
// guard: a completed appointment can be set back to pending.
func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID uint,
	status domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	ap.Status = string(status)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   ap.ShopID,
		ActorID:  &actorID,
		Action:   "appointment_status_" + string(status),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
