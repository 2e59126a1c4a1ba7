package compliance

import (
	"context"
	"testing"
	"time"

	"github.com/MHollmann/VendGuard/app/models"
	"github.com/stretchr/testify/assert"
)

func reconcilerFixture(t *testing.T, registeredAt time.Time, payouts ...*models.Payout) (*Reconciler, *fakePayoutRepo) {
	t.Helper()
	companies := newFakeCompanyRepo(&models.Company{
		ID:           7,
		Status:       models.COMPANY_STATUS_ACTIVE,
		PlanID:       5,
		RegisteredAt: registeredAt,
	})
	grace := NewGraceEvaluator(companies, Config{GracePeriodDays: 14})
	payoutRepo := newFakePayoutRepo(payouts...)
	return NewReconciler(payoutRepo, grace), payoutRepo
}

func pendingPayout(id, companyID, planID uint) *models.Payout {
	return &models.Payout{
		ID:        id,
		CompanyID: companyID,
		PlanID:    planID,
		Type:      models.PAYOUT_TYPE_PAYOUT,
		Status:    models.PAYOUT_STATUS_PENDING,
	}
}

func TestReconcileDeletesStalePayout(t *testing.T) {
	now := time.Now()
	r, payouts := reconcilerFixture(t, now.AddDate(0, 0, -2), pendingPayout(42, 7, 3))

	r.ReconcilePlanChange(context.Background(), 7, 5, 3, models.COMPANY_STATUS_ACTIVE, now)

	assert.Equal(t, []uint{42}, payouts.deleted)
}

func TestReconcileNoMatchingPayoutIsNoop(t *testing.T) {
	now := time.Now()
	r, payouts := reconcilerFixture(t, now.AddDate(0, 0, -2), pendingPayout(42, 7, 9))

	r.ReconcilePlanChange(context.Background(), 7, 5, 3, models.COMPANY_STATUS_ACTIVE, now)

	assert.Empty(t, payouts.deleted)
}

func TestReconcileOutsideGracePeriodIsNoop(t *testing.T) {
	now := time.Now()
	r, payouts := reconcilerFixture(t, now.AddDate(0, 0, -30), pendingPayout(42, 7, 3))

	r.ReconcilePlanChange(context.Background(), 7, 5, 3, models.COMPANY_STATUS_ACTIVE, now)

	assert.Empty(t, payouts.deleted)
}

func TestReconcileUnchangedPlanIsNoop(t *testing.T) {
	now := time.Now()
	r, payouts := reconcilerFixture(t, now.AddDate(0, 0, -2), pendingPayout(42, 7, 3))

	r.ReconcilePlanChange(context.Background(), 7, 3, 3, models.COMPANY_STATUS_ACTIVE, now)

	assert.Empty(t, payouts.deleted)
}

func TestReconcileNewAccountIsNoop(t *testing.T) {
	now := time.Now()
	r, payouts := reconcilerFixture(t, now.AddDate(0, 0, -2), pendingPayout(42, 7, 3))

	r.ReconcilePlanChange(context.Background(), 7, 5, 3, models.COMPANY_STATUS_NEW, now)

	assert.Empty(t, payouts.deleted)
}

func TestReconcileDoubleDeliveryDeletesOnce(t *testing.T) {
	now := time.Now()
	r, payouts := reconcilerFixture(t, now.AddDate(0, 0, -2), pendingPayout(42, 7, 3))

	r.ReconcilePlanChange(context.Background(), 7, 5, 3, models.COMPANY_STATUS_ACTIVE, now)
	r.ReconcilePlanChange(context.Background(), 7, 5, 3, models.COMPANY_STATUS_ACTIVE, now)

	assert.Equal(t, []uint{42}, payouts.deleted, "second delivery finds nothing to delete")
}
