package domain

import "time"

// DonationRequest is the ephemeral donate input. It is never persisted as a
// standalone entity; its only durable trace is the ledger entry appended to
// the owning campaign.
type DonationRequest struct {
	CampaignID string
	DonorID    string
	Amount     int64
}

// DonationReceipt is returned to the caller once the ledger mutation has
// committed. Notification outcome never feeds back into it.
type DonationReceipt struct {
	CampaignID       string
	RaisedAmount     int64
	TotalDonorsCount int
}

// DonorHistoryEntry is one row of a donor's cross-campaign donation history.
type DonorHistoryEntry struct {
	CampaignID    string
	CampaignTitle string
	Amount        int64
	DonatedAt     time.Time
}
