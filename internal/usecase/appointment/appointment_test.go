package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/salonhub/salon-booking-api/internal/domain/appointment"
	"github.com/salonhub/salon-booking-api/internal/httperr"
	"github.com/salonhub/salon-booking-api/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeAppointmentRepo struct {
	services     map[uint]models.Service
	staff        map[uint]*models.Staff
	appointments map[uint]*models.Appointment

	nextID  uint
	created []*models.Appointment
	updated []*models.Appointment
}

var _ domain.Repository = (*fakeAppointmentRepo)(nil)

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		services: map[uint]models.Service{
			1: {ID: 1, SalePriceCents: 10000},
			2: {ID: 2, SalePriceCents: 5000},
		},
		staff: map[uint]*models.Staff{
			7: {ID: 7, Name: "Alice", ShopID: 3},
		},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

func (r *fakeAppointmentRepo) FindServicesByIDs(_ context.Context, ids []uint) ([]models.Service, error) {
	var out []models.Service
	seen := map[uint]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if svc, ok := r.services[id]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindStaff(_ context.Context, id uint) (*models.Staff, error) {
	st, ok := r.staff[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return st, nil
}

func (r *fakeAppointmentRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = r.nextID
	r.nextID++
	r.appointments[ap.ID] = ap
	r.created = append(r.created, ap)
	return nil
}

func (r *fakeAppointmentRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return ap, nil
}

func (r *fakeAppointmentRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.appointments[ap.ID] = ap
	r.updated = append(r.updated, ap)
	return nil
}

func (r *fakeAppointmentRepo) ListShopAppointments(
	_ context.Context,
	shopID uint,
	date *time.Time,
	status *domain.Status,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ShopID != shopID {
			continue
		}
		if date != nil && !ap.AppointmentDate.Equal(*date) {
			continue
		}
		if status != nil && ap.Status != string(*status) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// ======================================================
// CREATE — USER
// ======================================================

func TestCreateUserAppointment(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := NewCreateUserAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), CreateUserAppointmentInput{
		UserID:          42,
		ServiceIDs:      []uint{1, 2},
		SelectedStaffID: 7,
		ShopID:          3,
		AppointmentDate: day("2024-06-05"),
		AppointmentTime: "14:30",
	})
	require.NoError(t, err)

	assert.Equal(t, "PENDING", ap.Status)
	assert.Equal(t, "USER", ap.Type)
	assert.Equal(t, int64(15000), ap.TotalAmountCents)
	assert.NotEmpty(t, ap.Reference)
	require.NotNil(t, ap.UserID)
	assert.Equal(t, uint(42), *ap.UserID)
	require.Len(t, repo.created, 1)
}

func TestCreateUserAppointmentDuplicateServicesPricedTwice(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := NewCreateUserAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), CreateUserAppointmentInput{
		UserID:          42,
		ServiceIDs:      []uint{1, 1},
		SelectedStaffID: 7,
		ShopID:          3,
		AppointmentDate: day("2024-06-05"),
		AppointmentTime: "14:30",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20000), ap.TotalAmountCents)
}

func TestCreateUserAppointmentUnknownService(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := NewCreateUserAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), CreateUserAppointmentInput{
		UserID:          42,
		ServiceIDs:      []uint{1, 99},
		SelectedStaffID: 7,
		ShopID:          3,
		AppointmentDate: day("2024-06-05"),
		AppointmentTime: "14:30",
	})
	assert.True(t, httperr.IsBusiness(err, "some_services_not_found"))
	assert.Empty(t, repo.created, "nothing persisted on validation failure")
}

func TestCreateUserAppointmentUnknownStaff(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := NewCreateUserAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), CreateUserAppointmentInput{
		UserID:          42,
		ServiceIDs:      []uint{1},
		SelectedStaffID: 99,
		ShopID:          3,
		AppointmentDate: day("2024-06-05"),
		AppointmentTime: "14:30",
	})
	assert.True(t, httperr.IsBusiness(err, "selected_staff_not_found"))
	assert.Empty(t, repo.created)
}

// ======================================================
// CREATE — STAFF
// ======================================================

func TestCreateStaffAppointment(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := NewCreateStaffAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), CreateStaffAppointmentInput{
		CustomerName:     "Walk In",
		CustomerPhone:    "555-0100",
		CreatedByStaffID: 7,
		ServiceIDs:       []uint{2},
		SelectedStaffID:  7,
		ShopID:           3,
		AppointmentDate:  day("2024-06-05"),
		AppointmentTime:  "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "CONFIRMED", ap.Status, "counter bookings start confirmed")
	assert.Equal(t, "STAFF", ap.Type)
	assert.Equal(t, int64(5000), ap.TotalAmountCents)
	assert.Nil(t, ap.UserID)
	assert.Equal(t, "Walk In", ap.CustomerName)
	require.NotNil(t, ap.CreatedByStaffID)
	assert.Equal(t, uint(7), *ap.CreatedByStaffID)
}

// ======================================================
// SET STATUS
// ======================================================

func TestSetAppointmentStatus(t *testing.T) {
	repo := newFakeAppointmentRepo()
	create := NewCreateUserAppointment(repo, nil)

	ap, err := create.Execute(context.Background(), CreateUserAppointmentInput{
		UserID:          42,
		ServiceIDs:      []uint{1},
		SelectedStaffID: 7,
		ShopID:          3,
		AppointmentDate: day("2024-06-05"),
		AppointmentTime: "14:30",
	})
	require.NoError(t, err)

	uc := NewSetAppointmentStatus(repo, nil)

	updated, err := uc.Execute(context.Background(), ap.ID, 7, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", updated.Status)

	// Transitions are unrestricted: completed can go back to pending.
	updated, err = uc.Execute(context.Background(), ap.ID, 7, domain.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, "PENDING", updated.Status)
}

func TestSetAppointmentStatusNotFound(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := NewSetAppointmentStatus(repo, nil)

	_, err := uc.Execute(context.Background(), 99, 7, domain.StatusCancelled)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	assert.Empty(t, repo.updated)
}

// ======================================================
// GET / LIST
// ======================================================

func TestGetAppointmentNotFound(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := NewGetAppointment(repo)

	_, err := uc.Execute(context.Background(), 99)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestListShopAppointmentsFilters(t *testing.T) {
	repo := newFakeAppointmentRepo()
	create := NewCreateStaffAppointment(repo, nil)

	for _, d := range []string{"2024-06-05", "2024-06-06"} {
		_, err := create.Execute(context.Background(), CreateStaffAppointmentInput{
			CustomerName:     "Walk In",
			CustomerPhone:    "555-0100",
			CreatedByStaffID: 7,
			ServiceIDs:       []uint{1},
			SelectedStaffID:  7,
			ShopID:           3,
			AppointmentDate:  day(d),
			AppointmentTime:  "10:00",
		})
		require.NoError(t, err)
	}

	uc := NewListShopAppointments(repo)

	all, err := uc.Execute(context.Background(), 3, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	d := day("2024-06-05")
	byDate, err := uc.Execute(context.Background(), 3, &d, nil)
	require.NoError(t, err)
	assert.Len(t, byDate, 1)

	pending := domain.StatusPending
	none, err := uc.Execute(context.Background(), 3, nil, &pending)
	require.NoError(t, err)
	assert.Empty(t, none)
}
