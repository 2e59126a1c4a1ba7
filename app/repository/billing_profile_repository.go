package repository

import (
	"strings"

	"github.com/MHollmann/VendGuard/app/models"
	"gorm.io/gorm"
)

// billingProfileRepository implements the BillingProfileRepository interface
type billingProfileRepository struct {
	db *gorm.DB
}

// NewBillingProfileRepository creates a new billing profile repository instance
func NewBillingProfileRepository(db *gorm.DB) BillingProfileRepository {
	return &billingProfileRepository{db: db}
}

// Create creates a new billing profile in the database
func (r *billingProfileRepository) Create(profile *models.BillingProfile) error {
	return r.db.Create(profile).Error
}

// GetByCompanyID retrieves all billing profiles for a company
func (r *billingProfileRepository) GetByCompanyID(companyID uint) ([]models.BillingProfile, error) {
	var profiles []models.BillingProfile
	err := r.db.Where("company_id = ?", companyID).Find(&profiles).Error
	return profiles, err
}

// GetRootSubscriptionID resolves the subscription held for the company's
// root admin user. An empty subscription id on the root profile is
// reported the same way as a missing profile.
func (r *billingProfileRepository) GetRootSubscriptionID(companyID uint) (string, error) {
	var profile models.BillingProfile
	err := r.db.
		Where("company_id = ? AND is_root = ?", companyID, true).
		Order("id ASC").
		First(&profile).Error
	if err != nil {
		return "", err
	}
	subID := strings.TrimSpace(profile.SubscriptionID)
	if subID == "" {
		return "", gorm.ErrRecordNotFound
	}
	return subID, nil
}
