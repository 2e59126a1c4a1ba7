package compliance

import (
	"context"
	"log"

	"github.com/MHollmann/VendGuard/app/models"
	"github.com/MHollmann/VendGuard/app/repository"
	"github.com/MHollmann/VendGuard/internal/pkg/billing"
)

// Metrics receives compliance events for counting. Implementations must
// not block; increments are best-effort.
type Metrics interface {
	RecordCheck(companyID uint)
	RecordSuspension(companyID uint)
}

// Service evaluates a vendor's billing compliance and applies the
// suspension transition when the vendor fails it.
type Service struct {
	companies repository.CompanyRepository
	profiles  repository.BillingProfileRepository
	fetcher   billing.SnapshotFetcher
	metrics   Metrics
}

// NewService creates a compliance service from injected stores and fetcher.
func NewService(
	companies repository.CompanyRepository,
	profiles repository.BillingProfileRepository,
	fetcher billing.SnapshotFetcher,
) *Service {
	return &Service{
		companies: companies,
		profiles:  profiles,
		fetcher:   fetcher,
	}
}

// SetMetrics attaches an event counter. A nil metrics sink is fine.
func (s *Service) SetMetrics(m Metrics) {
	s.metrics = m
}

// CheckVendor resolves the vendor's root subscription, fetches its state
// from the gateway and suspends the vendor unless the subscription is
// active on the expected plan. The compliant path takes no action and
// reports no explicit success. Every failure mode fails closed into a
// suspension rather than an error; the triggering event must complete
// either way.
func (s *Service) CheckVendor(ctx context.Context, companyID uint) {
	if companyID == 0 {
		return
	}
	if s.metrics != nil {
		s.metrics.RecordCheck(companyID)
	}

	subscriptionID, err := s.profiles.GetRootSubscriptionID(companyID)
	if err != nil {
		log.Printf("compliance: company %d has no root subscription: %v", companyID, err)
		s.Suspend(companyID)
		return
	}

	planID, err := s.companies.GetPlanID(companyID)
	if err != nil {
		log.Printf("compliance: plan lookup for company %d failed: %v", companyID, err)
		s.Suspend(companyID)
		return
	}

	snapshot, err := s.fetcher.Fetch(ctx, subscriptionID, planID)
	if err != nil {
		log.Printf("compliance: snapshot for company %d subscription %s unavailable: %v", companyID, subscriptionID, err)
		s.Suspend(companyID)
		return
	}

	if !snapshot.IsActive() || snapshot.PlanMismatch {
		log.Printf("compliance: suspending company %d (status=%q plan_mismatch=%t)",
			companyID, snapshot.Status, snapshot.PlanMismatch)
		s.Suspend(companyID)
	}
}

// Suspend sets the vendor account to suspended. Safe to call repeatedly:
// the status write touches nothing when the account is already suspended,
// and a zero company id (non-vendor user) is never transitioned.
func (s *Service) Suspend(companyID uint) {
	if companyID == 0 {
		return
	}
	if err := s.companies.SetStatus(companyID, models.COMPANY_STATUS_SUSPENDED); err != nil {
		log.Printf("compliance: failed to suspend company %d: %v", companyID, err)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordSuspension(companyID)
	}
}
