package apiv1

import "time"

// Pong is the ping response body
type Pong struct {
	Ping string `json:"ping"`
}

// CompanyStatus is the admin view of a vendor account
type CompanyStatus struct {
	ID               uint      `json:"id"`
	Status           string    `json:"status"`
	PlanID           uint      `json:"plan_id"`
	RegisteredAt     time.Time `json:"registered_at"`
	InGracePeriod    bool      `json:"in_grace_period"`
	HasPendingPayout bool      `json:"has_pending_payout"`
	CheckCount       uint64    `json:"check_count"`
	SuspensionCount  uint64    `json:"suspension_count"`
}
