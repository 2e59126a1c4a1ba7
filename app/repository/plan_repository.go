package repository

import (
	"github.com/MHollmann/VendGuard/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// planRepository implements the PlanRepository interface
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

// Create creates a new plan in the database
func (r *planRepository) Create(plan *models.Plan) error {
	return r.db.Create(plan).Error
}

// GetByID retrieves a plan by its ID
func (r *planRepository) GetByID(id uint) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetPrice returns the configured price for a plan
func (r *planRepository) GetPrice(id uint) (decimal.Decimal, error) {
	var plan models.Plan
	err := r.db.Select("price").First(&plan, id).Error
	if err != nil {
		return decimal.Zero, err
	}
	return plan.Price, nil
}

// GetActive retrieves all active plans
func (r *planRepository) GetActive() ([]models.Plan, error) {
	var plans []models.Plan
	err := r.db.Where("is_active = ?", true).Order("price ASC").Find(&plans).Error
	return plans, err
}
