package compliance

import (
	"log"
	"time"

	"github.com/MHollmann/VendGuard/app/repository"
)

// Config carries the thresholds for the compliance core. Built once at
// startup and injected; components never read ambient configuration.
type Config struct {
	// GracePeriodDays is the number of whole days after registration
	// during which a vendor is exempt from billing-compliance suspension.
	// Zero or negative disables the grace period entirely (fail closed).
	GracePeriodDays int

	// RecheckWindow bounds how often a vendor is re-evaluated on login
	// when a cache is available. Zero disables the damper.
	RecheckWindow time.Duration
}

// GraceEvaluator decides whether a vendor is still inside its
// post-registration grace window.
type GraceEvaluator struct {
	companies repository.CompanyRepository
	days      int
}

// NewGraceEvaluator creates a grace evaluator for the configured day threshold.
func NewGraceEvaluator(companies repository.CompanyRepository, cfg Config) *GraceEvaluator {
	return &GraceEvaluator{companies: companies, days: cfg.GracePeriodDays}
}

// InGracePeriod reports whether the vendor registered fewer than the
// configured number of whole days before now. A zero company id is never
// a vendor and never gracious; lookup failures count as outside the
// window. Day differences are computed on UTC calendar dates, so the
// result only flips at UTC midnight boundaries. Once false for a given
// registration timestamp it stays false.
func (g *GraceEvaluator) InGracePeriod(companyID uint, now time.Time) bool {
	if companyID == 0 {
		return false
	}
	if g.days <= 0 {
		return false
	}

	registeredAt, err := g.companies.GetRegistrationTimestamp(companyID)
	if err != nil {
		log.Printf("compliance: registration lookup for company %d failed: %v", companyID, err)
		return false
	}

	return daysBetween(time.Unix(registeredAt, 0), now) < g.days
}

// daysBetween counts whole UTC calendar days from a to b.
func daysBetween(a, b time.Time) int {
	au, bu := a.UTC(), b.UTC()
	am := time.Date(au.Year(), au.Month(), au.Day(), 0, 0, 0, 0, time.UTC)
	bm := time.Date(bu.Year(), bu.Month(), bu.Day(), 0, 0, 0, 0, time.UTC)
	return int(bm.Sub(am) / (24 * time.Hour))
}
