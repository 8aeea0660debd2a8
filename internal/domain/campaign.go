package domain

import "time"

// CampaignStatus tracks the moderation lifecycle of a campaign.
type CampaignStatus string

const (
	CampaignPending  CampaignStatus = "pending"
	CampaignActive   CampaignStatus = "active"
	CampaignRejected CampaignStatus = "rejected"
)

// Valid reports whether s is one of the known lifecycle states.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignPending, CampaignActive, CampaignRejected:
		return true
	}
	return false
}

// LedgerEntry is one immutable donation record inside a campaign. Entries are
// append-only; the campaign's running totals are derived from them.
type LedgerEntry struct {
	DonorID   string
	Amount    int64
	DonatedAt time.Time
}

// Campaign is a fundraising effort owned by an NGO. RaisedAmount always equals
// the sum of entry amounts and TotalDonorsCount always equals the number of
// entries; only the donation path mutates these fields once a campaign is
// active. A repeat donor counts once per donation.
type Campaign struct {
	ID               string
	Title            string
	Description      string
	NGOID            string
	GoalAmount       int64
	RaisedAmount     int64
	Status           CampaignStatus
	Donors           []LedgerEntry
	TotalDonorsCount int
	CreatedAt        time.Time
	ApprovedAt       *time.Time
	RejectionReason  *string
}

// AcceptsDonations reports whether the campaign is in the only lifecycle state
// that may receive donations.
func (c *Campaign) AcceptsDonations() bool {
	return c.Status == CampaignActive
}
