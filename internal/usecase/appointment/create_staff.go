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

type CreateStaffAppointmentInput struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	CreatedByStaffID uint

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

type CreateStaffAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateStaffAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateStaffAppointment {
	return &CreateStaffAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates exactly like the customer path; the two flows
// differ only in initial status and customer-identity fields.
func (uc *CreateStaffAppointment) Execute(
	ctx context.Context,
	in CreateStaffAppointmentInput,
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

	total := pricing.TotalCents(in.ServiceIDs, pricing.IndexByID(services))

	creatorID := in.CreatedByStaffID
	ap := &models.Appointment{
		Reference:        uuid.NewString(),
		Type:             string(domain.TypeStaff),
		Services:         services,
		SelectedStaffID:  staff.ID,
		TotalAmountCents: total,
		AppointmentDate:  in.AppointmentDate,
		AppointmentTime:  in.AppointmentTime,
		Status:           string(domain.InitialStatus(domain.TypeStaff)),
		CustomerName:     in.CustomerName,
		CustomerPhone:    in.CustomerPhone,
		CustomerEmail:    in.CustomerEmail,
		CreatedByStaffID: &creatorID,
		ShopID:           in.ShopID,
		Notes:            in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   in.ShopID,
		ActorID:  &creatorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
