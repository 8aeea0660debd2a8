package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"goodheart/internal/domain"
)

// In-memory stores used in development and by tests. The campaign store
// enforces the same conditional-update semantics as the Postgres
// implementation: the status check and the ledger mutation happen under one
// lock, so a raced status change yields ErrConflict rather than a lost update.

// CampaignRepositoryMemory is a mutex-guarded domain.CampaignRepository.
type CampaignRepositoryMemory struct {
	mu        sync.Mutex
	campaigns map[string]*domain.Campaign
}

func NewCampaignRepositoryMemory() *CampaignRepositoryMemory {
	return &CampaignRepositoryMemory{campaigns: make(map[string]*domain.Campaign)}
}

func (r *CampaignRepositoryMemory) Create(ctx context.Context, campaign *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := cloneCampaign(campaign)
	if stored.Status == "" {
		stored.Status = domain.CampaignPending
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.campaigns[stored.ID] = stored
	campaign.Status = stored.Status
	campaign.CreatedAt = stored.CreatedAt
	return nil
}

// Seed stores a campaign as-is, totals included. Test and dev-mode helper.
func (r *CampaignRepositoryMemory) Seed(campaign *domain.Campaign) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.campaigns[campaign.ID] = cloneCampaign(campaign)
}

func (r *CampaignRepositoryMemory) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	campaign, ok := r.campaigns[id]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	return cloneCampaign(campaign), nil
}

func (r *CampaignRepositoryMemory) ListActive(ctx context.Context) ([]domain.Campaign, error) {
	return r.list(func(c *domain.Campaign) bool { return c.Status == domain.CampaignActive })
}

func (r *CampaignRepositoryMemory) ListByNGO(ctx context.Context, ngoID string) ([]domain.Campaign, error) {
	return r.list(func(c *domain.Campaign) bool { return c.NGOID == ngoID })
}

func (r *CampaignRepositoryMemory) list(match func(*domain.Campaign) bool) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []domain.Campaign
	for _, campaign := range r.campaigns {
		if match(campaign) {
			items = append(items, *cloneCampaign(campaign))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (r *CampaignRepositoryMemory) ApplyDonation(ctx context.Context, campaignID, donorID string, amount int64) (*domain.DonationReceipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	campaign, ok := r.campaigns[campaignID]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	if !campaign.AcceptsDonations() {
		return nil, domain.ErrConflict
	}
	campaign.RaisedAmount += amount
	campaign.TotalDonorsCount++
	campaign.Donors = append(campaign.Donors, domain.LedgerEntry{
		DonorID:   donorID,
		Amount:    amount,
		DonatedAt: time.Now(),
	})
	return &domain.DonationReceipt{
		CampaignID:       campaignID,
		RaisedAmount:     campaign.RaisedAmount,
		TotalDonorsCount: campaign.TotalDonorsCount,
	}, nil
}

func (r *CampaignRepositoryMemory) SetStatus(ctx context.Context, id string, status domain.CampaignStatus, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	campaign, ok := r.campaigns[id]
	if !ok {
		return domain.ErrCampaignNotFound
	}
	campaign.Status = status
	switch status {
	case domain.CampaignActive:
		if campaign.ApprovedAt == nil {
			now := time.Now()
			campaign.ApprovedAt = &now
		}
	case domain.CampaignRejected:
		if campaign.RejectionReason == nil && reason != "" {
			campaign.RejectionReason = &reason
		}
	}
	return nil
}

func (r *CampaignRepositoryMemory) DonorHistory(ctx context.Context, donorID string) ([]domain.DonorHistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []domain.DonorHistoryEntry
	for _, campaign := range r.campaigns {
		for _, entry := range campaign.Donors {
			if entry.DonorID == donorID {
				items = append(items, domain.DonorHistoryEntry{
					CampaignID:    campaign.ID,
					CampaignTitle: campaign.Title,
					Amount:        entry.Amount,
					DonatedAt:     entry.DonatedAt,
				})
			}
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].DonatedAt.After(items[j].DonatedAt) })
	return items, nil
}

func cloneCampaign(campaign *domain.Campaign) *domain.Campaign {
	clone := *campaign
	clone.Donors = append([]domain.LedgerEntry(nil), campaign.Donors...)
	if campaign.ApprovedAt != nil {
		t := *campaign.ApprovedAt
		clone.ApprovedAt = &t
	}
	if campaign.RejectionReason != nil {
		s := *campaign.RejectionReason
		clone.RejectionReason = &s
	}
	return &clone
}

// DonorRepositoryMemory is a map-backed domain.DonorRepository.
type DonorRepositoryMemory struct {
	mu     sync.RWMutex
	donors map[string]domain.Donor
}

func NewDonorRepositoryMemory() *DonorRepositoryMemory {
	return &DonorRepositoryMemory{donors: make(map[string]domain.Donor)}
}

func (r *DonorRepositoryMemory) Add(donor domain.Donor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.donors[donor.ID] = donor
}

func (r *DonorRepositoryMemory) GetByID(ctx context.Context, id string) (*domain.Donor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	donor, ok := r.donors[id]
	if !ok {
		return nil, domain.ErrDonorNotFound
	}
	return &donor, nil
}

func (r *DonorRepositoryMemory) List(ctx context.Context) ([]domain.Donor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]domain.Donor, 0, len(r.donors))
	for _, donor := range r.donors {
		items = append(items, donor)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

// NGORepositoryMemory is a map-backed domain.NGORepository.
type NGORepositoryMemory struct {
	mu   sync.RWMutex
	ngos map[string]domain.NGO
}

func NewNGORepositoryMemory() *NGORepositoryMemory {
	return &NGORepositoryMemory{ngos: make(map[string]domain.NGO)}
}

func (r *NGORepositoryMemory) Add(ngo domain.NGO) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ngos[ngo.ID] = ngo
}

func (r *NGORepositoryMemory) GetByID(ctx context.Context, id string) (*domain.NGO, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ngo, ok := r.ngos[id]
	if !ok {
		return nil, domain.ErrNGONotFound
	}
	return &ngo, nil
}

func (r *NGORepositoryMemory) List(ctx context.Context) ([]domain.NGO, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]domain.NGO, 0, len(r.ngos))
	for _, ngo := range r.ngos {
		items = append(items, ngo)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

var (
	_ domain.CampaignRepository = (*CampaignRepositoryMemory)(nil)
	_ domain.DonorRepository    = (*DonorRepositoryMemory)(nil)
	_ domain.NGORepository      = (*NGORepositoryMemory)(nil)
)
