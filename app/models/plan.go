package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PlanIntervalMonth = "month"
	PlanIntervalYear  = "year"
)

// Plan is a paid vendor plan. Price is the amount the payment gateway is
// expected to bill per interval; the compliance check compares it against
// the gateway-reported subscription amount.
type Plan struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Name            string          `gorm:"type:varchar(100);not null" json:"name"`
	Price           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	BillingInterval string          `gorm:"type:varchar(16);not null;default:'month'" json:"billing_interval"`
	IsActive        bool            `gorm:"default:true;index" json:"is_active"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
