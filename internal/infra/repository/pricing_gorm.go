package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/salonhub/salon-booking-api/internal/domain/pricing"
	"github.com/salonhub/salon-booking-api/internal/models"
)

type PricingGormRepository struct {
	db *gorm.DB
}

func NewPricingGormRepository(db *gorm.DB) *PricingGormRepository {
	return &PricingGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *PricingGormRepository) FindService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Variable pricing
// --------------------------------------------------

func (r *PricingGormRepository) FindActiveWindows(
	ctx context.Context,
	serviceID uint,
	on time.Time,
) ([]models.VariablePricing, error) {

	var windows []models.VariablePricing
	if err := r.db.WithContext(ctx).
		Where(
			"service_id = ? AND active = ? AND start_date <= ? AND end_date >= ?",
			serviceID, true, on, on,
		).
		Order("id ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}

	return windows, nil
}

func (r *PricingGormRepository) FindOverlappingWindow(
	ctx context.Context,
	serviceID uint,
	start time.Time,
	end time.Time,
) (*models.VariablePricing, error) {

	var vp models.VariablePricing
	err := r.db.WithContext(ctx).
		Where(
			"service_id = ? AND active = ? AND start_date <= ? AND end_date >= ?",
			serviceID, true, end, start,
		).
		First(&vp).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &vp, nil
}

func (r *PricingGormRepository) CreateVariablePricing(
	ctx context.Context,
	vp *models.VariablePricing,
) error {
	return r.db.WithContext(ctx).Create(vp).Error
}

// Compile-time check
var _ domain.Repository = (*PricingGormRepository)(nil)
