package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PAYOUT_TYPE_PAYOUT = "payout"
	PAYOUT_TYPE_CHARGE = "charge"
	PAYOUT_TYPE_REFUND = "refund"
)

const (
	PAYOUT_STATUS_PENDING   = "pending"
	PAYOUT_STATUS_COMPLETED = "completed"
)

// Payout is a scheduled payment owed to a vendor under a specific plan.
// A pending payout computed under a previous plan is removed when the
// vendor switches plans inside the grace period.
type Payout struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UUID      string          `gorm:"type:varchar(36);uniqueIndex;not null" json:"uuid"`
	CompanyID uint            `gorm:"not null;index:idx_payouts_company_plan,priority:1" json:"company_id"`
	PlanID    uint            `gorm:"not null;index:idx_payouts_company_plan,priority:2" json:"plan_id"`
	Type      string          `gorm:"type:varchar(16);not null;default:'payout'" json:"type"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status    string          `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate assigns a public identifier before the record is stored
func (p *Payout) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.New().String()
	}
	return nil
}

// IsPending reports whether the payout has not been executed yet
func (p *Payout) IsPending() bool {
	return p.Status == PAYOUT_STATUS_PENDING
}
