package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	COMPANY_STATUS_NEW       = "new"
	COMPANY_STATUS_ACTIVE    = "active"
	COMPANY_STATUS_SUSPENDED = "suspended"
	COMPANY_STATUS_PENDING   = "pending"
)

// Company is a marketplace vendor account. Storefront access for the
// vendor hangs off Status; the billing compliance check is the only thing
// in this service that writes it.
type Company struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Email        string         `gorm:"type:varchar(200);index" json:"email" validate:"omitempty,email,max=200"`
	Status       string         `gorm:"type:varchar(20);default:'new';index" json:"status" validate:"oneof=new active suspended pending"`
	PlanID       uint           `gorm:"not null;index" json:"plan_id"`
	RegisteredAt time.Time      `gorm:"type:timestamp;not null" json:"registered_at"`
	// Counters are incremented in Redis and flushed in batches.
	CheckCount      uint64 `gorm:"not null;default:0" json:"check_count"`
	SuspensionCount uint64 `gorm:"not null;default:0" json:"suspension_count"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Company) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

// IsSuspended reports whether the vendor storefront is currently suspended
func (c *Company) IsSuspended() bool {
	return c.Status == COMPANY_STATUS_SUSPENDED
}

// IsNew reports whether the account is still in its initial state
func (c *Company) IsNew() bool {
	return c.Status == COMPANY_STATUS_NEW
}
