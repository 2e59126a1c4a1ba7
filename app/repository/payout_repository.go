package repository

import (
	"github.com/MHollmann/VendGuard/app/models"
	"gorm.io/gorm"
)

// payoutRepository implements the PayoutRepository interface
type payoutRepository struct {
	db *gorm.DB
}

// NewPayoutRepository creates a new payout repository instance
func NewPayoutRepository(db *gorm.DB) PayoutRepository {
	return &payoutRepository{db: db}
}

// Create creates a new payout in the database
func (r *payoutRepository) Create(payout *models.Payout) error {
	return r.db.Create(payout).Error
}

// GetByID retrieves a payout by its ID
func (r *payoutRepository) GetByID(id uint) (*models.Payout, error) {
	var payout models.Payout
	err := r.db.First(&payout, id).Error
	if err != nil {
		return nil, err
	}
	return &payout, nil
}

// FindPending returns the newest pending payout for (company, plan, type)
func (r *payoutRepository) FindPending(companyID, planID uint, payoutType string) (*models.Payout, error) {
	var payout models.Payout
	err := r.db.
		Where("company_id = ? AND plan_id = ? AND type = ? AND status = ?",
			companyID, planID, payoutType, models.PAYOUT_STATUS_PENDING).
		Order("created_at DESC").
		First(&payout).Error
	if err != nil {
		return nil, err
	}
	return &payout, nil
}

// Delete removes a payout record
func (r *payoutRepository) Delete(id uint) error {
	return r.db.Delete(&models.Payout{}, id).Error
}
