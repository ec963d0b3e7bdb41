package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonhub/salon-booking-api/internal/httperr"
	"github.com/salonhub/salon-booking-api/internal/httpresp"
	"github.com/salonhub/salon-booking-api/internal/middleware"
	"github.com/salonhub/salon-booking-api/internal/models"
	ucPricing "github.com/salonhub/salon-booking-api/internal/usecase/pricing"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db           *gorm.DB
	resolvePrice *ucPricing.ResolvePrice
	addPricing   *ucPricing.AddVariablePricing
}

func NewServiceHandler(
	db *gorm.DB,
	resolvePrice *ucPricing.ResolvePrice,
	addPricing *ucPricing.AddVariablePricing,
) *ServiceHandler {
	return &ServiceHandler{
		db:           db,
		resolvePrice: resolvePrice,
		addPricing:   addPricing,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CreateServiceRequest struct {
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description"`
	SalePriceCents   int64    `json:"sale_price_cents" binding:"required,min=0"`
	ActualPriceCents int64    `json:"actual_price_cents" binding:"min=0"`
	ImageURL         string   `json:"image_url"`
	CategoryID       uint     `json:"category_id" binding:"required"`
	StaffIDs         []uint   `json:"staff_ids" binding:"required,min=1"`
	DurationMin      int      `json:"duration_min"`
	Tags             []string `json:"tags"`
}

type UpdateServiceRequest struct {
	Name             *string  `json:"name,omitempty"`
	Description      *string  `json:"description,omitempty"`
	SalePriceCents   *int64   `json:"sale_price_cents,omitempty"`
	ActualPriceCents *int64   `json:"actual_price_cents,omitempty"`
	ImageURL         *string  `json:"image_url,omitempty"`
	CategoryID       *uint    `json:"category_id,omitempty"`
	StaffIDs         []uint   `json:"staff_ids,omitempty"`
	DurationMin      *int     `json:"duration_min,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	Active           *bool    `json:"active,omitempty"`
}

type CreateVariablePricingRequest struct {
	StartDate         string `json:"start_date" binding:"required"`
	EndDate           string `json:"end_date" binding:"required"`
	SpecialPriceCents int64  `json:"special_price_cents" binding:"required,min=0"`
}

// ======================================================
// CATEGORIES
// ======================================================

func (h *ServiceHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var count int64
	h.db.Model(&models.ServiceCategory{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "category_exists", "Category with this name already exists.")
		return
	}

	category := models.ServiceCategory{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.db.Create(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_create_category", "Could not create category.")
		return
	}

	httpresp.Created(c, category)
}

func (h *ServiceHandler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var category models.ServiceCategory
	if err := h.db.First(&category, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "category_not_found", "Category not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_category", "Could not load category.")
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		var other models.ServiceCategory
		err := h.db.Where("name = ?", *req.Name).First(&other).Error
		if err == nil && other.ID != category.ID {
			httperr.Conflict(c, "category_exists", "Category with this name already exists.")
			return
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := h.db.Save(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_update_category", "Could not update category.")
		return
	}

	httpresp.OK(c, category)
}

func (h *ServiceHandler) ListCategories(c *gin.Context) {
	var categories []models.ServiceCategory
	if err := h.db.Order("id ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Could not list categories.")
		return
	}

	httpresp.List(c, categories)
}

// ======================================================
// SERVICES
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var category models.ServiceCategory
	if err := h.db.First(&category, req.CategoryID).Error; err != nil {
		httperr.NotFound(c, "category_not_found", "Category not found.")
		return
	}

	var staff []models.Staff
	if err := h.db.Where("id IN ?", req.StaffIDs).Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_get_staff", "Could not load staff.")
		return
	}
	if len(staff) != len(req.StaffIDs) {
		httperr.NotFound(c, "some_staff_not_found", "Some staff members were not found.")
		return
	}

	service := models.Service{
		Name:             req.Name,
		Description:      req.Description,
		SalePriceCents:   req.SalePriceCents,
		ActualPriceCents: req.ActualPriceCents,
		ImageURL:         req.ImageURL,
		CategoryID:       category.ID,
		ShopID:           shopID,
		StaffMembers:     staff,
		DurationMin:      req.DurationMin,
		Tags:             req.Tags,
		Active:           true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Preload("StaffMembers").
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&service).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.CategoryID != nil {
		var category models.ServiceCategory
		if err := h.db.First(&category, *req.CategoryID).Error; err != nil {
			httperr.NotFound(c, "category_not_found", "Category not found.")
			return
		}
		service.CategoryID = category.ID
	}

	if req.StaffIDs != nil {
		var staff []models.Staff
		if err := h.db.Where("id IN ?", req.StaffIDs).Find(&staff).Error; err != nil {
			httperr.Internal(c, "failed_to_get_staff", "Could not load staff.")
			return
		}
		if len(staff) != len(req.StaffIDs) {
			httperr.NotFound(c, "some_staff_not_found", "Some staff members were not found.")
			return
		}
		if err := h.db.Model(&service).Association("StaffMembers").Replace(staff); err != nil {
			httperr.Internal(c, "failed_to_update_service", "Could not update staff assignment.")
			return
		}
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.SalePriceCents != nil {
		service.SalePriceCents = *req.SalePriceCents
	}
	if req.ActualPriceCents != nil {
		service.ActualPriceCents = *req.ActualPriceCents
	}
	if req.ImageURL != nil {
		service.ImageURL = *req.ImageURL
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.Tags != nil {
		service.Tags = req.Tags
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Omit("StaffMembers").Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	httpresp.OK(c, service)
}

// Delete deactivates a service instead of removing the row, so placed
// appointments keep their references.
func (h *ServiceHandler) Delete(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&service).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service.")
		return
	}

	service.Active = false

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service.")
		return
	}

	c.Status(204)
}

func (h *ServiceHandler) ListByShop(c *gin.Context) {
	shopID := c.Param("shopId")

	var services []models.Service
	if err := h.db.
		Preload("Category").
		Preload("StaffMembers").
		Where("shop_id = ? AND active = ?", shopID, true).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// PRICING
// ======================================================

func (h *ServiceHandler) AddVariablePricing(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	var req CreateVariablePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid start date.")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid end date.")
		return
	}

	vp, err := h.addPricing.Execute(c.Request.Context(), ucPricing.AddVariablePricingInput{
		ServiceID:         uint(serviceID),
		StartDate:         start,
		EndDate:           end,
		SpecialPriceCents: req.SpecialPriceCents,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Service not found.")
		case httperr.IsBusiness(err, "invalid_date_range"):
			httperr.BadRequest(c, "invalid_date_range", "End date must be after start date.")
		case httperr.IsBusiness(err, "pricing_overlap"):
			httperr.Conflict(c, "pricing_overlap", "Overlapping variable pricing exists for this date range.")
		default:
			httperr.Internal(c, "failed_to_create_pricing", "Could not create variable pricing.")
		}
		return
	}

	httpresp.Created(c, vp)
}

// GetPrice resolves the effective price of a service on a date.
// Defaults to today when no date is supplied.
func (h *ServiceHandler) GetPrice(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	on := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		on, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
	}

	price, err := h.resolvePrice.Execute(c.Request.Context(), uint(id), on)
	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_resolve_price", "Could not resolve price.")
		return
	}

	httpresp.OK(c, gin.H{
		"service_id":  uint(id),
		"date":        on.Format("2006-01-02"),
		"price_cents": price,
	})
}
