package domain

import "errors"

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrDonorNotFound     = errors.New("donor not found")
	ErrNGONotFound       = errors.New("ngo not found")
	ErrCampaignNotActive = errors.New("campaign is not accepting donations")
	ErrInvalidAmount     = errors.New("donation amount must be at least 1")
	ErrInvalidCampaign   = errors.New("invalid campaign")

	// ErrConflict means the campaign's eligibility changed between validation
	// and the conditional ledger update. The donation was not applied.
	ErrConflict = errors.New("campaign state changed concurrently")
)
