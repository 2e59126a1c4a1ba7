package repository

import (
	"github.com/MHollmann/VendGuard/app/models"
	"gorm.io/gorm"
)

// companyRepository implements the CompanyRepository interface
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository instance
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

// Create creates a new company in the database
func (r *companyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// GetByID retrieves a company by its ID
func (r *companyRepository) GetByID(id uint) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetRegistrationTimestamp returns the registration time as epoch seconds
func (r *companyRepository) GetRegistrationTimestamp(id uint) (int64, error) {
	var company models.Company
	err := r.db.Select("registered_at").First(&company, id).Error
	if err != nil {
		return 0, err
	}
	return company.RegisteredAt.Unix(), nil
}

// GetPlanID returns the plan currently assigned to a company
func (r *companyRepository) GetPlanID(id uint) (uint, error) {
	var company models.Company
	err := r.db.Select("plan_id").First(&company, id).Error
	if err != nil {
		return 0, err
	}
	return company.PlanID, nil
}

// SetStatus writes the account status. The conditional WHERE keeps the
// write idempotent: re-applying the current status touches no rows and
// fires no update hooks.
func (r *companyRepository) SetStatus(id uint, status string) error {
	return r.db.Model(&models.Company{}).
		Where("id = ? AND status <> ?", id, status).
		Update("status", status).Error
}

// List retrieves companies with pagination
func (r *companyRepository) List(offset, limit int) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Offset(offset).Limit(limit).Order("created_at DESC").Find(&companies).Error
	return companies, err
}

// Count returns the total number of companies
func (r *companyRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Company{}).Count(&count).Error
	return count, err
}
