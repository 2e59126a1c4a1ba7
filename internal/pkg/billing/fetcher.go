package billing

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/MHollmann/VendGuard/app/repository"
	"github.com/shopspring/decimal"
)

// SnapshotFetcher produces subscription snapshots for compliance checks.
type SnapshotFetcher interface {
	Fetch(ctx context.Context, subscriptionID string, planID uint) (*SubscriptionSnapshot, error)
}

// Fetcher queries the gateway and normalizes the raw record into a
// SubscriptionSnapshot, including the plan-match flag.
type Fetcher struct {
	gateway Gateway
	plans   repository.PlanRepository
}

// NewFetcher creates a snapshot fetcher from an injected gateway and plan store.
func NewFetcher(gateway Gateway, plans repository.PlanRepository) *Fetcher {
	return &Fetcher{gateway: gateway, plans: plans}
}

// Fetch returns the normalized snapshot for one subscription, or an error
// when the gateway call fails or local plan data is inconsistent. Callers
// must treat any error as "subscription not active".
func (f *Fetcher) Fetch(ctx context.Context, subscriptionID string, planID uint) (*SubscriptionSnapshot, error) {
	raw, err := f.gateway.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	// The gateway reports the amount as a JSON number while the plan
	// price lives in a DECIMAL column. Both go through decimal so
	// representation differences can never produce a false mismatch.
	amount, err := decimal.NewFromString(raw.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: unparsable amount %q", ErrGateway, raw.Amount)
	}

	price, err := f.plans.GetPrice(planID)
	if err != nil {
		return nil, fmt.Errorf("plan %d price lookup: %w", planID, err)
	}

	snapshot := &SubscriptionSnapshot{
		SubscriptionID:    raw.SubscriptionID,
		Status:            raw.Status,
		Amount:            amount,
		IntervalUnit:      raw.IntervalUnit,
		CustomerProfileID: raw.CustomerProfileID,
		PaymentProfileID:  raw.PaymentProfileID,
		PlanMismatch:      !price.Equal(amount),
	}
	snapshot.StartDate = parseGatewayDate(raw.StartDate)
	snapshot.NextBillingDate = parseGatewayDate(raw.NextBillingDate)

	if snapshot.PlanMismatch {
		log.Printf("billing: subscription %s amount %s does not match plan %d price %s",
			subscriptionID, amount.String(), planID, price.String())
	}

	return snapshot, nil
}

func parseGatewayDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}
