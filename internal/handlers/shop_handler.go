package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salonhub/salon-booking-api/internal/httperr"
	"github.com/salonhub/salon-booking-api/internal/httpresp"
	"github.com/salonhub/salon-booking-api/internal/models"
)

type ShopHandler struct {
	db *gorm.DB
}

func NewShopHandler(db *gorm.DB) *ShopHandler {
	return &ShopHandler{db: db}
}

// --------- Handlers ---------

// Register creates a shop owner directly (superadmin action). Unlike
// the self-service registration request, no approval gate applies to
// the creation itself; approval still controls login.
func (h *ShopHandler) Register(c *gin.Context) {
	var req RegisterShopOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.ShopOwner{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_exists", "Email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not hash password.")
		return
	}

	owner := models.ShopOwner{
		OwnerName:      req.OwnerName,
		ShopName:       req.ShopName,
		ShopLocation:   req.ShopLocation,
		District:       req.District,
		State:          req.State,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		ContactNumber:  req.ContactNumber,
		WhatsappNumber: req.WhatsappNumber,
		Email:          email,
		PasswordHash:   string(hashed),
	}

	if err := h.db.Create(&owner).Error; err != nil {
		httperr.Internal(c, "failed_to_create_shop_owner", "Could not create shop owner.")
		return
	}

	httpresp.Created(c, owner)
}

func (h *ShopHandler) Approve(c *gin.Context) {
	id := c.Param("id")

	var owner models.ShopOwner
	if err := h.db.First(&owner, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "shop_owner_not_found", "Shop owner not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_shop_owner", "Could not load shop owner.")
		return
	}

	owner.Approved = true

	if err := h.db.Save(&owner).Error; err != nil {
		httperr.Internal(c, "failed_to_approve_shop_owner", "Could not approve shop owner.")
		return
	}

	httpresp.OK(c, owner)
}

func (h *ShopHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var owner models.ShopOwner
	if err := h.db.First(&owner, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "shop_owner_not_found", "Shop owner not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_shop_owner", "Could not load shop owner.")
		return
	}

	httpresp.OK(c, owner)
}
