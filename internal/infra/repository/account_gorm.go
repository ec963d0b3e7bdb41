package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/salonhub/salon-booking-api/internal/domain/account"
	"github.com/salonhub/salon-booking-api/internal/models"
)

// Per-kind credential stores. Each account kind owns its table; there
// is deliberately no shared base user abstraction.

// --------------------------------------------------
// Users table (customers and the superadmin row)
// --------------------------------------------------

type UserAccountStore struct {
	db   *gorm.DB
	role string
}

func NewUserAccountStore(db *gorm.DB) *UserAccountStore {
	return &UserAccountStore{db: db, role: "user"}
}

func NewSuperadminAccountStore(db *gorm.DB) *UserAccountStore {
	return &UserAccountStore{db: db, role: "superadmin"}
}

func (s *UserAccountStore) FindByEmail(
	ctx context.Context,
	email string,
) (*domain.Principal, error) {

	var u models.User
	if err := s.db.WithContext(ctx).
		Where("email = ? AND role = ?", email, s.role).
		First(&u).Error; err != nil {
		return nil, err
	}
	return userPrincipal(&u), nil
}

func (s *UserAccountStore) FindByID(
	ctx context.Context,
	id uint,
) (*domain.Principal, error) {

	var u models.User
	if err := s.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, s.role).
		First(&u).Error; err != nil {
		return nil, err
	}
	return userPrincipal(&u), nil
}

func (s *UserAccountStore) UpdatePassword(
	ctx context.Context,
	id uint,
	hash string,
) error {
	return s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

func userPrincipal(u *models.User) *domain.Principal {
	return &domain.Principal{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
}

// --------------------------------------------------
// Shop owners
// --------------------------------------------------

type ShopOwnerAccountStore struct {
	db *gorm.DB
}

func NewShopOwnerAccountStore(db *gorm.DB) *ShopOwnerAccountStore {
	return &ShopOwnerAccountStore{db: db}
}

// FindByEmail only resolves approved owners; a pending registration
// cannot log in.
func (s *ShopOwnerAccountStore) FindByEmail(
	ctx context.Context,
	email string,
) (*domain.Principal, error) {

	var so models.ShopOwner
	if err := s.db.WithContext(ctx).
		Where("email = ? AND approved = ?", email, true).
		First(&so).Error; err != nil {
		return nil, err
	}
	return shopOwnerPrincipal(&so), nil
}

func (s *ShopOwnerAccountStore) FindByID(
	ctx context.Context,
	id uint,
) (*domain.Principal, error) {

	var so models.ShopOwner
	if err := s.db.WithContext(ctx).First(&so, id).Error; err != nil {
		return nil, err
	}
	return shopOwnerPrincipal(&so), nil
}

func (s *ShopOwnerAccountStore) UpdatePassword(
	ctx context.Context,
	id uint,
	hash string,
) error {
	return s.db.WithContext(ctx).
		Model(&models.ShopOwner{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

func shopOwnerPrincipal(so *models.ShopOwner) *domain.Principal {
	return &domain.Principal{
		ID:           so.ID,
		Name:         so.OwnerName,
		Email:        so.Email,
		PasswordHash: so.PasswordHash,
	}
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

type StaffAccountStore struct {
	db *gorm.DB
}

func NewStaffAccountStore(db *gorm.DB) *StaffAccountStore {
	return &StaffAccountStore{db: db}
}

func (s *StaffAccountStore) FindByEmail(
	ctx context.Context,
	email string,
) (*domain.Principal, error) {

	var st models.Staff
	if err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&st).Error; err != nil {
		return nil, err
	}
	return staffPrincipal(&st), nil
}

func (s *StaffAccountStore) FindByID(
	ctx context.Context,
	id uint,
) (*domain.Principal, error) {

	var st models.Staff
	if err := s.db.WithContext(ctx).First(&st, id).Error; err != nil {
		return nil, err
	}
	return staffPrincipal(&st), nil
}

func (s *StaffAccountStore) UpdatePassword(
	ctx context.Context,
	id uint,
	hash string,
) error {
	return s.db.WithContext(ctx).
		Model(&models.Staff{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

func staffPrincipal(st *models.Staff) *domain.Principal {
	return &domain.Principal{
		ID:           st.ID,
		Name:         st.Name,
		Email:        st.Email,
		PasswordHash: st.PasswordHash,
	}
}

// NewAccountDirectory wires every kind to its store.
func NewAccountDirectory(db *gorm.DB) domain.Directory {
	return domain.Directory{
		domain.KindSuperadmin: NewSuperadminAccountStore(db),
		domain.KindShopOwner:  NewShopOwnerAccountStore(db),
		domain.KindStaff:      NewStaffAccountStore(db),
		domain.KindUser:       NewUserAccountStore(db),
	}
}

// Compile-time checks
var (
	_ domain.Store = (*UserAccountStore)(nil)
	_ domain.Store = (*ShopOwnerAccountStore)(nil)
	_ domain.Store = (*StaffAccountStore)(nil)
)
