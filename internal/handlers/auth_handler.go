package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salonhub/salon-booking-api/internal/config"
	account "github.com/salonhub/salon-booking-api/internal/domain/account"
	"github.com/salonhub/salon-booking-api/internal/httperr"
	"github.com/salonhub/salon-booking-api/internal/httpresp"
	"github.com/salonhub/salon-booking-api/internal/middleware"
	"github.com/salonhub/salon-booking-api/internal/models"
	"github.com/salonhub/salon-booking-api/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	accounts account.Directory
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, accounts account.Directory) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, accounts: accounts}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"user_type" binding:"required"`
}

type RegisterShopOwnerRequest struct {
	OwnerName    string `json:"owner_name" binding:"required"`
	ShopName     string `json:"shop_name" binding:"required"`
	ShopLocation string `json:"shop_location"`
	District     string `json:"district"`
	State        string `json:"state"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	ContactNumber  string `json:"contact_number"`
	WhatsappNumber string `json:"whatsapp_number"`

	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RegisterUserRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phone_number"`
	District    string `json:"district"`
	Gender      string `json:"gender"`
	Age         int    `json:"age"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// --------- Handlers ---------

// Login resolves credentials through the store bound to the requested
// account kind. Each kind has its own table; an email that exists for a
// staff member does not authenticate as a shop owner.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	kind, err := account.ParseKind(req.UserType)
	if err != nil {
		httperr.BadRequest(c, "invalid_user_type", "Unknown user type.")
		return
	}

	store, err := h.accounts.Lookup(kind)
	if err != nil {
		httperr.BadRequest(c, "invalid_user_type", "Unknown user type.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	principal, err := store.FindByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(principal.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	token, err := h.generateToken(principal, kind)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	httpresp.OK(c, gin.H{
		"access_token": token,
		"user_type":    string(kind),
		"user_id":      principal.ID,
		"email":        principal.Email,
	})
}

// RegisterShopOwner files a registration request. The owner starts
// unapproved and cannot log in until a superadmin approves them.
func (h *AuthHandler) RegisterShopOwner(c *gin.Context) {
	var req RegisterShopOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	var count int64
	h.db.Model(&models.ShopOwner{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_exists", "Email already registered.")
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
		Approved:       false,
	}

	if err := h.db.Create(&owner).Error; err != nil {
		httperr.Internal(c, "failed_to_create_shop_owner", "Could not register shop owner.")
		return
	}

	httpresp.Created(c, owner)
}

// RegisterUser creates a customer account ready to log in.
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_exists", "Email already registered.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not hash password.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		PhoneNumber:  req.PhoneNumber,
		District:     req.District,
		Gender:       req.Gender,
		Age:          req.Age,
		Role:         "user",
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not register user.")
		return
	}

	httpresp.Created(c, user)
}

// ChangePassword works for any account kind; the kind comes from the
// token, not the request body.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	userType := c.MustGet(middleware.ContextUserType).(string)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		httperr.BadRequest(c, "password_mismatch", "Passwords do not match.")
		return
	}

	kind, err := account.ParseKind(userType)
	if err != nil {
		httperr.Unauthorized(c, "invalid_user_type", "Unknown user type.")
		return
	}

	store, err := h.accounts.Lookup(kind)
	if err != nil {
		httperr.Unauthorized(c, "invalid_user_type", "Unknown user type.")
		return
	}

	principal, err := store.FindByID(c.Request.Context(), userID)
	if err != nil {
		httperr.Unauthorized(c, "user_not_found", "User not found.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(principal.PasswordHash),
		[]byte(req.CurrentPassword),
	); err != nil {
		httperr.Unauthorized(c, "invalid_current_password", "Current password is incorrect.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not hash password.")
		return
	}

	if err := store.UpdatePassword(c.Request.Context(), userID, string(hashed)); err != nil {
		httperr.Internal(c, "failed_to_change_password", "Could not change password.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Password changed successfully"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(p *account.Principal, kind account.Kind) (string, error) {
	claims := jwt.MapClaims{
		"sub":      p.ID,
		"email":    p.Email,
		"userType": string(kind),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
