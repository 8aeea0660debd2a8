package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"goodheart/internal/domain"
	"goodheart/internal/middleware"
)

type donateRequest struct {
	DonorID string `json:"donorId"`
	Amount  int64  `json:"amount"`
}

// Donate handles POST /donor/campaigns/{campaignID}/donate. The response is
// decided when the ledger mutation commits; notification delivery happens in
// the background and cannot change it.
func (a *App) Donate(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")

	var req donateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.DonorID == "" {
		a.error(w, http.StatusBadRequest, "donorId is required")
		return
	}

	receipt, err := a.Donations.Donate(r.Context(), domain.DonationRequest{
		CampaignID: campaignID,
		DonorID:    req.DonorID,
		Amount:     req.Amount,
	})
	if err != nil {
		a.domainError(w, err)
		return
	}

	if country := middleware.CountryFromContext(r.Context()); country != "" {
		a.Logger.Info().
			Str("campaign_id", receipt.CampaignID).
			Str("country", country).
			Msg("donation origin")
	}

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Donation successful",
		"campaign": map[string]any{
			"raisedAmount":     receipt.RaisedAmount,
			"totalDonorsCount": receipt.TotalDonorsCount,
		},
	})
}
