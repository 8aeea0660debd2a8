package domain

import "context"

// CampaignRepository owns campaign documents and their donor ledgers.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *Campaign) error
	GetByID(ctx context.Context, id string) (*Campaign, error)
	ListActive(ctx context.Context) ([]Campaign, error)
	ListByNGO(ctx context.Context, ngoID string) ([]Campaign, error)

	// ApplyDonation performs the atomic conditional ledger update: it
	// increments the raised amount and donor count and appends the ledger
	// entry in a single storage-level operation guarded by status == active.
	// It returns ErrCampaignNotFound when no campaign matches and ErrConflict
	// when the campaign exists but is no longer active.
	ApplyDonation(ctx context.Context, campaignID, donorID string, amount int64) (*DonationReceipt, error)

	// SetStatus applies a moderation transition. The moderation workflow
	// itself is an external collaborator; this exists so lifecycle changes
	// (and the conflict path) can be driven by tests and tooling.
	SetStatus(ctx context.Context, id string, status CampaignStatus, reason string) error

	DonorHistory(ctx context.Context, donorID string) ([]DonorHistoryEntry, error)
}

// DonorRepository resolves donor ids to contact records. Records are created
// by the signup flow, which is outside this service.
type DonorRepository interface {
	GetByID(ctx context.Context, id string) (*Donor, error)
	List(ctx context.Context) ([]Donor, error)
}

// NGORepository resolves NGO ids to contact records.
type NGORepository interface {
	GetByID(ctx context.Context, id string) (*NGO, error)
	List(ctx context.Context) ([]NGO, error)
}
