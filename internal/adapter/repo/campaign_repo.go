package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"goodheart/internal/domain"
	"goodheart/internal/infra"
	"goodheart/internal/sqlinline"
)

// CampaignRepositoryPG implements domain.CampaignRepository backed by
// PostgreSQL. The donation path relies on QApplyDonation being a single
// conditional statement; see the comment on that query.
type CampaignRepositoryPG struct {
	db infra.SQLExecutor
}

// NewCampaignRepository creates a new CampaignRepositoryPG.
func NewCampaignRepository(db infra.SQLExecutor) *CampaignRepositoryPG {
	return &CampaignRepositoryPG{db: db}
}

// Create inserts a campaign in its initial pending state with zero totals.
func (r *CampaignRepositoryPG) Create(ctx context.Context, campaign *domain.Campaign) error {
	row := r.db.QueryRow(ctx, sqlinline.QInsertCampaign,
		campaign.ID,
		campaign.Title,
		campaign.Description,
		campaign.NGOID,
		campaign.GoalAmount,
	)
	if err := row.Scan(&campaign.CreatedAt); err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	campaign.Status = domain.CampaignPending
	return nil
}

// GetByID fetches a campaign together with its donor ledger.
func (r *CampaignRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.db.QueryRow(ctx, sqlinline.QGetCampaign, id)
	campaign, err := scanCampaign(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlinline.QCampaignEntries, id)
	if err != nil {
		return nil, fmt.Errorf("load ledger entries: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var entry domain.LedgerEntry
		if err := rows.Scan(&entry.DonorID, &entry.Amount, &entry.DonatedAt); err != nil {
			return nil, err
		}
		campaign.Donors = append(campaign.Donors, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return campaign, nil
}

// ListActive returns campaign summaries currently accepting donations.
// Ledger entries are not loaded for listings.
func (r *CampaignRepositoryPG) ListActive(ctx context.Context) ([]domain.Campaign, error) {
	return r.list(ctx, sqlinline.QListActiveCampaigns)
}

// ListByNGO returns all campaigns owned by the given NGO, any status.
func (r *CampaignRepositoryPG) ListByNGO(ctx context.Context, ngoID string) ([]domain.Campaign, error) {
	return r.list(ctx, sqlinline.QListNGOCampaigns, ngoID)
}

func (r *CampaignRepositoryPG) list(ctx context.Context, query string, args ...any) ([]domain.Campaign, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ApplyDonation runs the atomic conditional ledger update. The statement only
// matches an active campaign; zero rows means the campaign is either missing
// or no longer eligible, and a status probe tells the two apart.
func (r *CampaignRepositoryPG) ApplyDonation(ctx context.Context, campaignID, donorID string, amount int64) (*domain.DonationReceipt, error) {
	receipt := &domain.DonationReceipt{CampaignID: campaignID}
	row := r.db.QueryRow(ctx, sqlinline.QApplyDonation, campaignID, donorID, amount)
	if err := row.Scan(&receipt.RaisedAmount, &receipt.TotalDonorsCount); err != nil {
		if !infra.IsNoRows(err) {
			return nil, fmt.Errorf("apply donation: %w", err)
		}
		var status string
		if probeErr := r.db.QueryRow(ctx, sqlinline.QCampaignStatus, campaignID).Scan(&status); probeErr != nil {
			if infra.IsNoRows(probeErr) {
				return nil, domain.ErrCampaignNotFound
			}
			return nil, probeErr
		}
		return nil, domain.ErrConflict
	}
	return receipt, nil
}

// SetStatus applies a moderation transition. approved_at and rejection_reason
// are written once and never overwritten by later transitions.
func (r *CampaignRepositoryPG) SetStatus(ctx context.Context, id string, status domain.CampaignStatus, reason string) error {
	if !status.Valid() {
		return fmt.Errorf("unknown campaign status %q", status)
	}
	tag, err := r.db.Exec(ctx, sqlinline.QSetCampaignStatus, id, string(status), reason)
	if err != nil {
		return fmt.Errorf("set campaign status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// DonorHistory returns the donor's ledger entries across campaigns, newest first.
func (r *CampaignRepositoryPG) DonorHistory(ctx context.Context, donorID string) ([]domain.DonorHistoryEntry, error) {
	rows, err := r.db.Query(ctx, sqlinline.QDonorHistory, donorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.DonorHistoryEntry
	for rows.Next() {
		var entry domain.DonorHistoryEntry
		if err := rows.Scan(&entry.CampaignID, &entry.CampaignTitle, &entry.Amount, &entry.DonatedAt); err != nil {
			return nil, err
		}
		items = append(items, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		campaign   domain.Campaign
		status     string
		approvedAt *time.Time
		reason     *string
	)
	err := row.Scan(
		&campaign.ID,
		&campaign.Title,
		&campaign.Description,
		&campaign.NGOID,
		&campaign.GoalAmount,
		&campaign.RaisedAmount,
		&status,
		&campaign.TotalDonorsCount,
		&campaign.CreatedAt,
		&approvedAt,
		&reason,
	)
	if err != nil {
		return nil, err
	}
	campaign.Status = domain.CampaignStatus(status)
	campaign.ApprovedAt = approvedAt
	campaign.RejectionReason = reason
	return &campaign, nil
}

var _ domain.CampaignRepository = (*CampaignRepositoryPG)(nil)
