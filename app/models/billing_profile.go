package models

import "time"

// BillingProfile links a company user to the recurring-billing subscription
// held for them at the payment gateway. A company has at most one root
// profile, belonging to its primary admin user; that profile carries the
// subscription the compliance check evaluates.
type BillingProfile struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	CompanyID         uint      `gorm:"not null;index:idx_billing_profiles_company_root,priority:1" json:"company_id"`
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	IsRoot            bool      `gorm:"not null;default:false;index:idx_billing_profiles_company_root,priority:2" json:"is_root"`
	SubscriptionID    string    `gorm:"type:varchar(64);index" json:"subscription_id"`
	CustomerProfileID string    `gorm:"type:varchar(64)" json:"customer_profile_id"`
	PaymentProfileID  string    `gorm:"type:varchar(64)" json:"payment_profile_id"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
