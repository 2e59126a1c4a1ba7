package repository

import (
	"github.com/MHollmann/VendGuard/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CompanyRepository defines the interface for vendor account operations
type CompanyRepository interface {
	Create(company *models.Company) error
	GetByID(id uint) (*models.Company, error)
	// GetRegistrationTimestamp returns the vendor registration time as
	// unix epoch seconds.
	GetRegistrationTimestamp(id uint) (int64, error)
	GetPlanID(id uint) (uint, error)
	// SetStatus writes the account status. Setting a status the account
	// already has touches zero rows.
	SetStatus(id uint, status string) error
	List(offset, limit int) ([]models.Company, error)
	Count() (int64, error)
}

// PlanRepository defines the interface for vendor plan operations
type PlanRepository interface {
	Create(plan *models.Plan) error
	GetByID(id uint) (*models.Plan, error)
	GetPrice(id uint) (decimal.Decimal, error)
	GetActive() ([]models.Plan, error)
}

// BillingProfileRepository defines the interface for gateway subscription linkage
type BillingProfileRepository interface {
	Create(profile *models.BillingProfile) error
	GetByCompanyID(companyID uint) ([]models.BillingProfile, error)
	// GetRootSubscriptionID resolves the subscription held for the
	// company's root admin user. Returns gorm.ErrRecordNotFound when the
	// company has no root profile or the profile carries no subscription.
	GetRootSubscriptionID(companyID uint) (string, error)
}

// PayoutRepository defines the interface for vendor payout operations
type PayoutRepository interface {
	Create(payout *models.Payout) error
	GetByID(id uint) (*models.Payout, error)
	// FindPending returns the newest pending payout matching company, plan
	// and payout type, or gorm.ErrRecordNotFound.
	FindPending(companyID, planID uint, payoutType string) (*models.Payout, error)
	Delete(id uint) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	Company        CompanyRepository
	Plan           PlanRepository
	BillingProfile BillingProfileRepository
	Payout         PayoutRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Company:        NewCompanyRepository(db),
		Plan:           NewPlanRepository(db),
		BillingProfile: NewBillingProfileRepository(db),
		Payout:         NewPayoutRepository(db),
	}
}
