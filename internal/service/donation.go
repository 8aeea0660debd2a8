// Package service composes validation, the atomic ledger mutation and
// notification fan-out into the operations exposed at the API boundary.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"goodheart/internal/domain"
	"goodheart/internal/metrics"
)

// Notifier receives committed donations for asynchronous fan-out. The service
// never waits on it and never learns about delivery failures.
type Notifier interface {
	DonationCommitted(campaign *domain.Campaign, donor *domain.Donor, ngo *domain.NGO, amount int64, totalDonorsCount int)
}

// Service orchestrates the donation path and campaign creation.
type Service struct {
	campaigns domain.CampaignRepository
	donors    domain.DonorRepository
	ngos      domain.NGORepository
	notifier  Notifier
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

func New(campaigns domain.CampaignRepository, donors domain.DonorRepository, ngos domain.NGORepository, notifier Notifier, m *metrics.Metrics, logger zerolog.Logger) *Service {
	return &Service{
		campaigns: campaigns,
		donors:    donors,
		ngos:      ngos,
		notifier:  notifier,
		metrics:   m,
		logger:    logger,
	}
}

// Donate validates the request, applies the atomic ledger mutation and kicks
// off notifications. The outcome is decided when the mutation commits;
// notification delivery never changes it. Validation is a fast-fail
// optimization only — correctness rests on the conditional update inside
// ApplyDonation, so a campaign that goes inactive between the two steps
// surfaces as domain.ErrConflict, not as a lost or double-applied donation.
func (s *Service) Donate(ctx context.Context, req domain.DonationRequest) (*domain.DonationReceipt, error) {
	if req.Amount < 1 {
		return nil, domain.ErrInvalidAmount
	}

	campaign, err := s.campaigns.GetByID(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.AcceptsDonations() {
		return nil, domain.ErrCampaignNotActive
	}

	donor, err := s.donors.GetByID(ctx, req.DonorID)
	if err != nil {
		return nil, err
	}
	ngo, err := s.ngos.GetByID(ctx, campaign.NGOID)
	if err != nil {
		return nil, err
	}

	receipt, err := s.campaigns.ApplyDonation(ctx, req.CampaignID, req.DonorID, req.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.logger.Warn().
				Str("campaign_id", req.CampaignID).
				Msg("donation lost the race against a status change")
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.DonationsTotal.Inc()
		s.metrics.DonationAmountTotal.Add(float64(req.Amount))
	}
	s.logger.Info().
		Str("campaign_id", receipt.CampaignID).
		Str("donor_id", donor.ID).
		Int64("amount", req.Amount).
		Int64("raised_amount", receipt.RaisedAmount).
		Int("total_donors", receipt.TotalDonorsCount).
		Msg("donation committed")

	if s.notifier != nil {
		s.notifier.DonationCommitted(campaign, donor, ngo, req.Amount, receipt.TotalDonorsCount)
	}

	return receipt, nil
}

// CreateCampaign registers a new campaign for an existing NGO. Campaigns
// start in pending and only accept donations once moderation activates them.
func (s *Service) CreateCampaign(ctx context.Context, ngoID, title, description string, goalAmount int64) (*domain.Campaign, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" || goalAmount < 1 {
		return nil, domain.ErrInvalidCampaign
	}

	if _, err := s.ngos.GetByID(ctx, ngoID); err != nil {
		return nil, err
	}

	campaign := &domain.Campaign{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		NGOID:       ngoID,
		GoalAmount:  goalAmount,
		Status:      domain.CampaignPending,
	}
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.CampaignsCreated.Inc()
	}
	s.logger.Info().
		Str("campaign_id", campaign.ID).
		Str("ngo_id", ngoID).
		Int64("goal_amount", goalAmount).
		Msg("campaign created")

	return campaign, nil
}
