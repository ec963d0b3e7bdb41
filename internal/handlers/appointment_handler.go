package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/salonhub/salon-booking-api/internal/domain/appointment"
	"github.com/salonhub/salon-booking-api/internal/httperr"
	"github.com/salonhub/salon-booking-api/internal/httpresp"
	"github.com/salonhub/salon-booking-api/internal/middleware"
	ucAppointment "github.com/salonhub/salon-booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUser  *ucAppointment.CreateUserAppointment
	createStaff *ucAppointment.CreateStaffAppointment
	setStatus   *ucAppointment.SetAppointmentStatus
	get         *ucAppointment.GetAppointment
	listByShop  *ucAppointment.ListShopAppointments
}

func NewAppointmentHandler(
	createUser *ucAppointment.CreateUserAppointment,
	createStaff *ucAppointment.CreateStaffAppointment,
	setStatus *ucAppointment.SetAppointmentStatus,
	get *ucAppointment.GetAppointment,
	listByShop *ucAppointment.ListShopAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUser:  createUser,
		createStaff: createStaff,
		setStatus:   setStatus,
		get:         get,
		listByShop:  listByShop,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUserAppointmentRequest struct {
	ServiceIDs      []uint `json:"service_ids" binding:"required,min=1"`
	SelectedStaffID uint   `json:"selected_staff_id" binding:"required"`
	ShopID          uint   `json:"shop_id" binding:"required"`

	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
	Notes           string `json:"notes"`
}

type CreateStaffAppointmentRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`

	ServiceIDs      []uint `json:"service_ids" binding:"required,min=1"`
	SelectedStaffID uint   `json:"selected_staff_id" binding:"required"`
	ShopID          uint   `json:"shop_id" binding:"required"`

	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
	Notes           string `json:"notes"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE (customer)
// ======================================================

func (h *AppointmentHandler) CreateUser(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateUserAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid appointment date.")
		return
	}

	ap, err := h.createUser.Execute(c.Request.Context(), ucAppointment.CreateUserAppointmentInput{
		UserID:          userID,
		ServiceIDs:      req.ServiceIDs,
		SelectedStaffID: req.SelectedStaffID,
		ShopID:          req.ShopID,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		Notes:           req.Notes,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// CREATE (staff, at the counter)
// ======================================================

func (h *AppointmentHandler) CreateStaff(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateStaffAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid appointment date.")
		return
	}

	ap, err := h.createStaff.Execute(c.Request.Context(), ucAppointment.CreateStaffAppointmentInput{
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		CustomerEmail:    req.CustomerEmail,
		CreatedByStaffID: staffID,
		ServiceIDs:       req.ServiceIDs,
		SelectedStaffID:  req.SelectedStaffID,
		ShopID:           req.ShopID,
		AppointmentDate:  date,
		AppointmentTime:  req.AppointmentTime,
		Notes:            req.Notes,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		httperr.BadRequest(c, "invalid_status", "Unknown appointment status.")
		return
	}

	ap, err := h.setStatus.Execute(c.Request.Context(), uint(id), actorID, status)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), uint(id))
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ListByShop(c *gin.Context) {
	shopID, err := strconv.ParseUint(c.Param("shopId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Invalid shop id.")
		return
	}

	var date *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		date = &d
	}

	var status *domain.Status
	if statusStr := c.Query("status"); statusStr != "" {
		s, err := domain.ParseStatus(statusStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_status", "Unknown appointment status.")
			return
		}
		status = &s
	}

	out, err := h.listByShop.Execute(c.Request.Context(), uint(shopID), date, status)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeAppointmentError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "some_services_not_found"):
		httperr.NotFound(c, "some_services_not_found", "Some services were not found.")
	case httperr.IsBusiness(err, "selected_staff_not_found"):
		httperr.NotFound(c, "selected_staff_not_found", "Selected staff not found.")
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	default:
		httperr.Internal(c, "appointment_error", "Could not process appointment.")
	}
}
