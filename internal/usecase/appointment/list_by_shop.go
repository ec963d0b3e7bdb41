package appointment

import (
	"context"
	"time"

	domain "github.com/salonhub/salon-booking-api/internal/domain/appointment"
	"github.com/salonhub/salon-booking-api/internal/dto"
)

type ListShopAppointments struct {
	repo domain.Repository
}

func NewListShopAppointments(
	repo domain.Repository,
) *ListShopAppointments {
	return &ListShopAppointments{
		repo: repo,
	}
}

func (uc *ListShopAppointments) Execute(
	ctx context.Context,
	shopID uint,
	date *time.Time,
	status *domain.Status,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListShopAppointments(ctx, shopID, date, status)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		customer := ap.CustomerName
		if ap.User != nil {
			customer = ap.User.Name
		}

		out = append(out, dto.AppointmentListDTO{
			ID:               ap.ID,
			Reference:        ap.Reference,
			Type:             ap.Type,
			AppointmentDate:  ap.AppointmentDate,
			AppointmentTime:  ap.AppointmentTime,
			Status:           ap.Status,
			CustomerName:     customer,
			StaffName:        ap.SelectedStaff.Name,
			TotalAmountCents: ap.TotalAmountCents,
		})
	}

	return out, nil
}
