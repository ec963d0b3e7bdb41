package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonhub/salon-booking-api/internal/httperr"
	"github.com/salonhub/salon-booking-api/internal/httpresp"
	"github.com/salonhub/salon-booking-api/internal/models"
)

type LocationHandler struct {
	db *gorm.DB
}

func NewLocationHandler(db *gorm.DB) *LocationHandler {
	return &LocationHandler{db: db}
}

// --------- Requests ---------

type CreateStateRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateDistrictRequest struct {
	Name string `json:"name" binding:"required"`
}

// --------- Handlers ---------

func (h *LocationHandler) CreateState(c *gin.Context) {
	var req CreateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var count int64
	h.db.Model(&models.State{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "state_exists", "State already exists.")
		return
	}

	state := models.State{Name: req.Name}
	if err := h.db.Create(&state).Error; err != nil {
		httperr.Internal(c, "failed_to_create_state", "Could not create state.")
		return
	}

	httpresp.Created(c, state)
}

func (h *LocationHandler) ListStates(c *gin.Context) {
	var states []models.State
	if err := h.db.Order("name ASC").Find(&states).Error; err != nil {
		httperr.Internal(c, "failed_to_list_states", "Could not list states.")
		return
	}

	httpresp.List(c, states)
}

func (h *LocationHandler) CreateDistrict(c *gin.Context) {
	stateID := c.Param("stateId")

	var req CreateDistrictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var state models.State
	if err := h.db.First(&state, stateID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "state_not_found", "State not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_state", "Could not load state.")
		return
	}

	var count int64
	h.db.Model(&models.District{}).
		Where("name = ? AND state_id = ?", req.Name, state.ID).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "district_exists", "District already exists in this state.")
		return
	}

	district := models.District{Name: req.Name, StateID: state.ID}
	if err := h.db.Create(&district).Error; err != nil {
		httperr.Internal(c, "failed_to_create_district", "Could not create district.")
		return
	}

	httpresp.Created(c, district)
}

func (h *LocationHandler) ListDistricts(c *gin.Context) {
	stateID := c.Param("stateId")

	var state models.State
	if err := h.db.First(&state, stateID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "state_not_found", "State not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_state", "Could not load state.")
		return
	}

	var districts []models.District
	if err := h.db.
		Where("state_id = ?", state.ID).
		Order("name ASC").
		Find(&districts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_districts", "Could not list districts.")
		return
	}

	httpresp.List(c, districts)
}
