package hooks

import (
	"context"
	"log"
	"time"

	"github.com/MHollmann/VendGuard/internal/pkg/compliance"
)

const (
	UserTypeAdmin    = "admin"
	UserTypeVendor   = "vendor"
	UserTypeCustomer = "customer"
)

const (
	AreaAdmin      = "admin"
	AreaStorefront = "storefront"
)

const (
	LoginStatusOK     = "ok"
	LoginStatusFailed = "failed"
)

// LoginEvent is delivered by the host platform after a login attempt.
type LoginEvent struct {
	UserID    uint   `json:"user_id"`
	CompanyID uint   `json:"company_id"`
	UserType  string `json:"user_type"`
	Area      string `json:"area"`
	Status    string `json:"status"`
}

// CompanyUpdateEvent is delivered after a company profile update.
// PlanID is the plan after the update, CurrentPlan the one before it.
type CompanyUpdateEvent struct {
	CompanyID      uint   `json:"company_id"`
	PlanID         uint   `json:"plan_id"`
	CurrentPlan    uint   `json:"current_plan"`
	PreviousStatus string `json:"previous_status"`
}

// Damper suppresses repeat compliance evaluations for a company inside a
// bounded window. Implementations must be safe to skip entirely (a nil
// Damper means every delivery is evaluated).
type Damper interface {
	MarkChecked(companyID uint, window time.Duration) bool
}

// Handler wires the compliance core to the two platform events. Its
// methods never return an error: compliance outcomes only ever change
// stored account status, they must not fail the triggering login/update.
type Handler struct {
	grace      *compliance.GraceEvaluator
	service    *compliance.Service
	reconciler *compliance.Reconciler
	damper     Damper
	cfg        compliance.Config

	// now is swapped out in tests.
	now func() time.Time
}

// NewHandler creates the event handler. damper may be nil.
func NewHandler(
	grace *compliance.GraceEvaluator,
	service *compliance.Service,
	reconciler *compliance.Reconciler,
	damper Damper,
	cfg compliance.Config,
) *Handler {
	return &Handler{
		grace:      grace,
		service:    service,
		reconciler: reconciler,
		damper:     damper,
		cfg:        cfg,
		now:        time.Now,
	}
}

// OnLogin runs the billing-compliance check after a successful vendor or
// vendor-admin login outside the storefront. Everything else is ignored.
func (h *Handler) OnLogin(ctx context.Context, ev LoginEvent) {
	if ev.Status != LoginStatusOK {
		return
	}
	if ev.Area == AreaStorefront {
		return
	}
	if ev.UserType != UserTypeAdmin && ev.UserType != UserTypeVendor {
		return
	}
	if ev.CompanyID == 0 {
		return
	}

	if h.grace.InGracePeriod(ev.CompanyID, h.now()) {
		return
	}

	if h.damper != nil && h.cfg.RecheckWindow > 0 {
		if !h.damper.MarkChecked(ev.CompanyID, h.cfg.RecheckWindow) {
			log.Printf("hooks: company %d checked recently, skipping", ev.CompanyID)
			return
		}
	}

	h.service.CheckVendor(ctx, ev.CompanyID)
}

// OnCompanyUpdate removes a stale pending payout when a plan change lands
// during the grace period. The reconciler re-checks the grace gate and the
// plan/status preconditions itself.
func (h *Handler) OnCompanyUpdate(ctx context.Context, ev CompanyUpdateEvent) {
	if ev.CompanyID == 0 {
		return
	}
	if ev.PlanID == ev.CurrentPlan {
		return
	}

	h.reconciler.ReconcilePlanChange(ctx, ev.CompanyID, ev.PlanID, ev.CurrentPlan, ev.PreviousStatus, h.now())
}
