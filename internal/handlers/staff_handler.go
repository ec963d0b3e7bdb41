package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salonhub/salon-booking-api/internal/httperr"
	"github.com/salonhub/salon-booking-api/internal/httpresp"
	"github.com/salonhub/salon-booking-api/internal/middleware"
	"github.com/salonhub/salon-booking-api/internal/models"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

// --------- Requests ---------

type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	WorkingDays      []string `json:"working_days"`
	UnavailableDates []string `json:"unavailable_dates"`
}

type ResetStaffPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type UpdateWorkingDaysRequest struct {
	WorkingDays []string `json:"working_days" binding:"required"`
}

type UpdateUnavailableDatesRequest struct {
	UnavailableDates []string `json:"unavailable_dates" binding:"required"`
}

// --------- Handlers ---------

// Create adds a staff member under the authenticated shop owner.
func (h *StaffHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.Staff{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_exists", "Email already exists.")
		return
	}

	var owner models.ShopOwner
	if err := h.db.First(&owner, shopID).Error; err != nil {
		httperr.NotFound(c, "shop_owner_not_found", "Shop owner not found.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not hash password.")
		return
	}

	staff := models.Staff{
		ShopID:           owner.ID,
		Name:             req.Name,
		Email:            email,
		PasswordHash:     string(hashed),
		WorkingDays:      req.WorkingDays,
		UnavailableDates: req.UnavailableDates,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Could not create staff member.")
		return
	}

	httpresp.Created(c, staff)
}

func (h *StaffHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(uint)

	var staff []models.Staff
	if err := h.db.
		Where("shop_id = ?", shopID).
		Order("id ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Could not list staff.")
		return
	}

	httpresp.List(c, staff)
}

func (h *StaffHandler) ResetPassword(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var req ResetStaffPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	staff, ok := h.staffForShop(c, id, shopID)
	if !ok {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not hash password.")
		return
	}

	staff.PasswordHash = string(hashed)

	if err := h.db.Save(staff).Error; err != nil {
		httperr.Internal(c, "failed_to_reset_password", "Could not reset password.")
		return
	}

	httpresp.OK(c, staff)
}

func (h *StaffHandler) UpdateWorkingDays(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var req UpdateWorkingDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	staff, ok := h.staffForShop(c, id, shopID)
	if !ok {
		return
	}

	staff.WorkingDays = req.WorkingDays

	if err := h.db.Save(staff).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Could not update staff member.")
		return
	}

	httpresp.OK(c, staff)
}

func (h *StaffHandler) UpdateUnavailableDates(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var req UpdateUnavailableDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	staff, ok := h.staffForShop(c, id, shopID)
	if !ok {
		return
	}

	staff.UnavailableDates = req.UnavailableDates

	if err := h.db.Save(staff).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Could not update staff member.")
		return
	}

	httpresp.OK(c, staff)
}

// staffForShop loads a staff member scoped to the owner's shop and
// writes the error response itself when the lookup fails.
func (h *StaffHandler) staffForShop(c *gin.Context, id string, shopID uint) (*models.Staff, bool) {
	var staff models.Staff
	if err := h.db.
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&staff).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "staff_not_found", "Staff member not found.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_staff", "Could not load staff member.")
		return nil, false
	}

	return &staff, true
}
