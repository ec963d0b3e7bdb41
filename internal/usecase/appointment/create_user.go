package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salonhub/salon-booking-api/internal/audit"
	domain "github.com/salonhub/salon-booking-api/internal/domain/appointment"
	"github.com/salonhub/salon-booking-api/internal/domain/pricing"
	"github.com/salonhub/salon-booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateUserAppointmentInput struct {
	UserID          uint
	ServiceIDs      []uint
	SelectedStaffID uint
	ShopID          uint

	AppointmentDate time.Time
	AppointmentTime string
	Notes           string
}

// ======================================================
// USE CASE
// ======================================================

type CreateUserAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateUserAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateUserAppointment {
	return &CreateUserAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateUserAppointment) Execute(
	ctx context.Context,
	in CreateUserAppointmentInput,
) (*models.Appointment, error) {

	services, staff, err := verifyBookable(
		ctx,
		uc.repo,
		in.ServiceIDs,
		in.SelectedStaffID,
	)
	if err != nil {
		return nil, err
	}

	// Totals snapshot standard sale prices; the booking date does not
	// enter creation-time pricing. Variable overrides only surface
	// through the price query path.
	total := pricing.TotalCents(in.ServiceIDs, pricing.IndexByID(services))

	userID := in.UserID
	ap := &models.Appointment{
		Reference:        uuid.NewString(),
		Type:             string(domain.TypeUser),
		Services:         services,
		SelectedStaffID:  staff.ID,
		TotalAmountCents: total,
		AppointmentDate:  in.AppointmentDate,
		AppointmentTime:  in.AppointmentTime,
		Status:           string(domain.InitialStatus(domain.TypeUser)),
		UserID:           &userID,
		ShopID:           in.ShopID,
		Notes:            in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   in.ShopID,
		ActorID:  &userID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
