package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	SubscriptionStatusActive     = "active"
	SubscriptionStatusExpired    = "expired"
	SubscriptionStatusSuspended  = "suspended"
	SubscriptionStatusCanceled   = "canceled"
	SubscriptionStatusTerminated = "terminated"
)

// SubscriptionSnapshot is the normalized view of one gateway subscription,
// recomputed on every evaluation and never persisted. Status is the
// lower-cased provider string; compliance passes only on exactly "active".
type SubscriptionSnapshot struct {
	SubscriptionID    string
	Status            string
	Amount            decimal.Decimal
	StartDate         *time.Time
	IntervalUnit      string
	CustomerProfileID string
	PaymentProfileID  string
	NextBillingDate   *time.Time
	// PlanMismatch is set when the locally configured plan price does not
	// equal the gateway-reported billing amount.
	PlanMismatch bool
}

// IsActive reports whether the gateway considers the subscription billable
func (s *SubscriptionSnapshot) IsActive() bool {
	return s != nil && s.Status == SubscriptionStatusActive
}

// GatewaySubscription is the raw provider record before plan matching.
type GatewaySubscription struct {
	SubscriptionID    string
	Status            string
	Amount            string
	StartDate         string
	IntervalUnit      string
	CustomerProfileID string
	PaymentProfileID  string
	NextBillingDate   string
}
