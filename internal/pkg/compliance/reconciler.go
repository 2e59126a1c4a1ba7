package compliance

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/MHollmann/VendGuard/app/models"
	"github.com/MHollmann/VendGuard/app/repository"
	"gorm.io/gorm"
)

// Reconciler removes stale pending payouts when a vendor changes plan
// while still inside the grace period. A payout computed under the old
// plan would otherwise be paid out under conditions that no longer hold.
type Reconciler struct {
	payouts repository.PayoutRepository
	grace   *GraceEvaluator
}

// NewReconciler creates a plan-change reconciler.
func NewReconciler(payouts repository.PayoutRepository, grace *GraceEvaluator) *Reconciler {
	return &Reconciler{payouts: payouts, grace: grace}
}

// ReconcilePlanChange deletes at most one pending payout tied to the old
// plan. It only acts when the plan actually changed, the account was past
// its initial state, and the vendor is still inside the grace window.
// A missing payout is not an error: double deliveries of the same event
// find nothing left to delete.
func (r *Reconciler) ReconcilePlanChange(ctx context.Context, companyID, newPlanID, oldPlanID uint, previousStatus string, now time.Time) {
	if companyID == 0 {
		return
	}
	if newPlanID == oldPlanID {
		return
	}
	if previousStatus == models.COMPANY_STATUS_NEW {
		return
	}
	if !r.grace.InGracePeriod(companyID, now) {
		return
	}

	payout, err := r.payouts.FindPending(companyID, oldPlanID, models.PAYOUT_TYPE_PAYOUT)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("compliance: pending payout lookup for company %d plan %d failed: %v", companyID, oldPlanID, err)
		}
		return
	}

	if err := r.payouts.Delete(payout.ID); err != nil {
		log.Printf("compliance: failed to delete stale payout %d for company %d: %v", payout.ID, companyID, err)
		return
	}
	log.Printf("compliance: removed stale payout %d (company %d, old plan %d)", payout.ID, companyID, oldPlanID)
}
