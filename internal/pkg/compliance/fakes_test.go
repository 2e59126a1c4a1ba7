package compliance

import (
	"context"

	"github.com/MHollmann/VendGuard/app/models"
	"github.com/MHollmann/VendGuard/internal/pkg/billing"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// fakeCompanyRepo is an in-memory CompanyRepository. SetStatus mirrors the
// SQL implementation: writing the status an account already has records
// no transition.
type fakeCompanyRepo struct {
	companies   map[uint]*models.Company
	transitions []string
}

func newFakeCompanyRepo(companies ...*models.Company) *fakeCompanyRepo {
	repo := &fakeCompanyRepo{companies: make(map[uint]*models.Company)}
	for _, c := range companies {
		repo.companies[c.ID] = c
	}
	return repo
}

func (r *fakeCompanyRepo) Create(company *models.Company) error {
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) GetByID(id uint) (*models.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeCompanyRepo) GetRegistrationTimestamp(id uint) (int64, error) {
	c, err := r.GetByID(id)
	if err != nil {
		return 0, err
	}
	return c.RegisteredAt.Unix(), nil
}

func (r *fakeCompanyRepo) GetPlanID(id uint) (uint, error) {
	c, err := r.GetByID(id)
	if err != nil {
		return 0, err
	}
	return c.PlanID, nil
}

func (r *fakeCompanyRepo) SetStatus(id uint, status string) error {
	c, ok := r.companies[id]
	if !ok || c.Status == status {
		return nil
	}
	c.Status = status
	r.transitions = append(r.transitions, status)
	return nil
}

func (r *fakeCompanyRepo) List(offset, limit int) ([]models.Company, error) {
	return nil, nil
}

func (r *fakeCompanyRepo) Count() (int64, error) {
	return int64(len(r.companies)), nil
}

// fakeProfileRepo resolves root subscription ids from a static map.
type fakeProfileRepo struct {
	subscriptions map[uint]string
}

func (r *fakeProfileRepo) Create(profile *models.BillingProfile) error { return nil }

func (r *fakeProfileRepo) GetByCompanyID(companyID uint) ([]models.BillingProfile, error) {
	return nil, nil
}

func (r *fakeProfileRepo) GetRootSubscriptionID(companyID uint) (string, error) {
	subID, ok := r.subscriptions[companyID]
	if !ok || subID == "" {
		return "", gorm.ErrRecordNotFound
	}
	return subID, nil
}

// fakeFetcher returns a canned snapshot or error per subscription id.
type fakeFetcher struct {
	snapshots map[string]*billing.SubscriptionSnapshot
	err       error
	calls     int
}

func (f *fakeFetcher) Fetch(ctx context.Context, subscriptionID string, planID uint) (*billing.SubscriptionSnapshot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	snapshot, ok := f.snapshots[subscriptionID]
	if !ok {
		return nil, billing.ErrGateway
	}
	return snapshot, nil
}

// fakePayoutRepo is an in-memory PayoutRepository.
type fakePayoutRepo struct {
	payouts map[uint]*models.Payout
	deleted []uint
}

func newFakePayoutRepo(payouts ...*models.Payout) *fakePayoutRepo {
	repo := &fakePayoutRepo{payouts: make(map[uint]*models.Payout)}
	for _, p := range payouts {
		repo.payouts[p.ID] = p
	}
	return repo
}

func (r *fakePayoutRepo) Create(payout *models.Payout) error {
	r.payouts[payout.ID] = payout
	return nil
}

func (r *fakePayoutRepo) GetByID(id uint) (*models.Payout, error) {
	p, ok := r.payouts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePayoutRepo) FindPending(companyID, planID uint, payoutType string) (*models.Payout, error) {
	for _, p := range r.payouts {
		if p.CompanyID == companyID && p.PlanID == planID && p.Type == payoutType && p.Status == models.PAYOUT_STATUS_PENDING {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePayoutRepo) Delete(id uint) error {
	delete(r.payouts, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func activeSnapshot(subID string, amount string) *billing.SubscriptionSnapshot {
	dec, _ := decimal.NewFromString(amount)
	return &billing.SubscriptionSnapshot{
		SubscriptionID: subID,
		Status:         billing.SubscriptionStatusActive,
		Amount:         dec,
	}
}
