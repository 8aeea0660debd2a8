package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goodheart/internal/adapter/repo"
	"goodheart/internal/domain"
	"goodheart/internal/metrics"
)

type notifierSpy struct {
	mu    sync.Mutex
	calls int
}

func (n *notifierSpy) DonationCommitted(campaign *domain.Campaign, donor *domain.Donor, ngo *domain.NGO, amount int64, totalDonorsCount int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
}

func (n *notifierSpy) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls
}

// conflictingCampaigns reports an active campaign on read but fails the
// conditional update, mimicking a status change landing between the two.
type conflictingCampaigns struct {
	*repo.CampaignRepositoryMemory
}

func (c *conflictingCampaigns) ApplyDonation(ctx context.Context, campaignID, donorID string, amount int64) (*domain.DonationReceipt, error) {
	return nil, domain.ErrConflict
}

type fixture struct {
	svc       *Service
	campaigns *repo.CampaignRepositoryMemory
	notifier  *notifierSpy
	metrics   *metrics.Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	campaigns := repo.NewCampaignRepositoryMemory()
	donors := repo.NewDonorRepositoryMemory()
	ngos := repo.NewNGORepositoryMemory()

	now := time.Now()
	donors.Add(domain.Donor{ID: "d1", Name: "Ada", Email: "ada@example.com", CreatedAt: now})
	ngos.Add(domain.NGO{ID: "ngo-1", Name: "Relief Fund", Email: "relief@example.com", CreatedAt: now})
	campaigns.Seed(&domain.Campaign{
		ID:         "c1",
		Title:      "Flood Relief",
		NGOID:      "ngo-1",
		GoalAmount: 1000,
		Status:     domain.CampaignActive,
		CreatedAt:  now,
		ApprovedAt: &now,
	})
	campaigns.Seed(&domain.Campaign{
		ID:         "c2",
		Title:      "Awaiting Review",
		NGOID:      "ngo-1",
		GoalAmount: 1000,
		Status:     domain.CampaignPending,
		CreatedAt:  now,
	})

	notifier := &notifierSpy{}
	m := metrics.New(prometheus.NewRegistry())
	return &fixture{
		svc:       New(campaigns, donors, ngos, notifier, m, zerolog.Nop()),
		campaigns: campaigns,
		notifier:  notifier,
		metrics:   m,
	}
}

func TestDonateSuccess(t *testing.T) {
	f := newFixture(t)

	receipt, err := f.svc.Donate(context.Background(), domain.DonationRequest{
		CampaignID: "c1", DonorID: "d1", Amount: 200,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(200), receipt.RaisedAmount)
	assert.Equal(t, 1, receipt.TotalDonorsCount)
	assert.Equal(t, 1, f.notifier.count())
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.DonationsTotal))
	assert.Equal(t, float64(200), testutil.ToFloat64(f.metrics.DonationAmountTotal))
}

func TestDonateRepeatDonorCountsEveryDonation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Donate(ctx, domain.DonationRequest{CampaignID: "c1", DonorID: "d1", Amount: 50})
	require.NoError(t, err)
	receipt, err := f.svc.Donate(ctx, domain.DonationRequest{CampaignID: "c1", DonorID: "d1", Amount: 50})
	require.NoError(t, err)

	assert.Equal(t, int64(100), receipt.RaisedAmount)
	assert.Equal(t, 2, receipt.TotalDonorsCount)
}

func TestDonateInvalidAmount(t *testing.T) {
	f := newFixture(t)

	for _, amount := range []int64{0, -5} {
		_, err := f.svc.Donate(context.Background(), domain.DonationRequest{
			CampaignID: "c1", DonorID: "d1", Amount: amount,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	}
	assert.Equal(t, 0, f.notifier.count())
}

func TestDonateUnknownCampaign(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Donate(context.Background(), domain.DonationRequest{
		CampaignID: "missing", DonorID: "d1", Amount: 10,
	})
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestDonatePendingCampaign(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Donate(context.Background(), domain.DonationRequest{
		CampaignID: "c2", DonorID: "d1", Amount: 10,
	})
	assert.ErrorIs(t, err, domain.ErrCampaignNotActive)

	campaign, gerr := f.campaigns.GetByID(context.Background(), "c2")
	require.NoError(t, gerr)
	assert.Zero(t, campaign.RaisedAmount)
	assert.Empty(t, campaign.Donors)
	assert.Equal(t, 0, f.notifier.count())
}

func TestDonateUnknownDonor(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Donate(context.Background(), domain.DonationRequest{
		CampaignID: "c1", DonorID: "ghost", Amount: 10,
	})
	assert.ErrorIs(t, err, domain.ErrDonorNotFound)

	campaign, _ := f.campaigns.GetByID(context.Background(), "c1")
	assert.Zero(t, campaign.RaisedAmount)
}

func TestDonateConflictPassedThrough(t *testing.T) {
	f := newFixture(t)
	f.svc.campaigns = &conflictingCampaigns{f.campaigns}

	_, err := f.svc.Donate(context.Background(), domain.DonationRequest{
		CampaignID: "c1", DonorID: "d1", Amount: 10,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 0, f.notifier.count())
	assert.Equal(t, float64(0), testutil.ToFloat64(f.metrics.DonationsTotal))
}

func TestCreateCampaign(t *testing.T) {
	f := newFixture(t)

	campaign, err := f.svc.CreateCampaign(context.Background(), "ngo-1", "  New Wells  ", "Clean water access.", 5000)
	require.NoError(t, err)
	assert.Equal(t, "New Wells", campaign.Title)
	assert.Equal(t, domain.CampaignPending, campaign.Status)
	assert.NotEmpty(t, campaign.ID)
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.CampaignsCreated))

	stored, gerr := f.campaigns.GetByID(context.Background(), campaign.ID)
	require.NoError(t, gerr)
	assert.False(t, stored.AcceptsDonations())
}

func TestCreateCampaignValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name        string
		title, desc string
		goal        int64
	}{
		{"empty title", "", "desc", 100},
		{"blank title", "   ", "desc", 100},
		{"empty description", "Title", "", 100},
		{"zero goal", "Title", "desc", 0},
		{"negative goal", "Title", "desc", -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.CreateCampaign(ctx, "ngo-1", tc.title, tc.desc, tc.goal)
			assert.ErrorIs(t, err, domain.ErrInvalidCampaign)
		})
	}
}

func TestCreateCampaignUnknownNGO(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateCampaign(context.Background(), "ghost", "Title", "desc", 100)
	assert.ErrorIs(t, err, domain.ErrNGONotFound)
}
