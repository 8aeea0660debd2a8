package handlers

import (
	"time"

	"goodheart/internal/domain"
)

// JSON shapes follow the casing of the public API (camelCase field names).

type ledgerEntryDTO struct {
	DonorID   string    `json:"donorId"`
	Amount    int64     `json:"amount"`
	DonatedAt time.Time `json:"donatedAt"`
}

type campaignDTO struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	NGOID            string           `json:"ngoId"`
	GoalAmount       int64            `json:"goalAmount"`
	RaisedAmount     int64            `json:"raisedAmount"`
	Status           string           `json:"status"`
	Donors           []ledgerEntryDTO `json:"donors,omitempty"`
	TotalDonorsCount int              `json:"totalDonorsCount"`
	CreatedAt        time.Time        `json:"createdAt"`
	ApprovedAt       *time.Time       `json:"approvedAt,omitempty"`
	RejectionReason  *string          `json:"rejectionReason,omitempty"`
}

func toCampaignDTO(c *domain.Campaign, includeLedger bool) campaignDTO {
	dto := campaignDTO{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		NGOID:            c.NGOID,
		GoalAmount:       c.GoalAmount,
		RaisedAmount:     c.RaisedAmount,
		Status:           string(c.Status),
		TotalDonorsCount: c.TotalDonorsCount,
		CreatedAt:        c.CreatedAt,
		ApprovedAt:       c.ApprovedAt,
		RejectionReason:  c.RejectionReason,
	}
	if includeLedger {
		dto.Donors = make([]ledgerEntryDTO, 0, len(c.Donors))
		for _, entry := range c.Donors {
			dto.Donors = append(dto.Donors, ledgerEntryDTO{
				DonorID:   entry.DonorID,
				Amount:    entry.Amount,
				DonatedAt: entry.DonatedAt,
			})
		}
	}
	return dto
}

type donorDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type ngoDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type historyEntryDTO struct {
	CampaignID    string    `json:"campaignId"`
	CampaignTitle string    `json:"campaignTitle"`
	Amount        int64     `json:"amount"`
	DonatedAt     time.Time `json:"donatedAt"`
}
