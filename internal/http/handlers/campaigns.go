package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ActiveCampaigns handles GET /donor/campaigns/active.
func (a *App) ActiveCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := a.Campaigns.ListActive(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]campaignDTO, 0, len(campaigns))
	for i := range campaigns {
		items = append(items, toCampaignDTO(&campaigns[i], false))
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "campaigns": items})
}

// CampaignByID handles GET /donor/campaigns/{campaignID}. The full donor
// ledger is included in the detail view.
func (a *App) CampaignByID(w http.ResponseWriter, r *http.Request) {
	campaign, err := a.Campaigns.GetByID(r.Context(), chi.URLParam(r, "campaignID"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "campaign": toCampaignDTO(campaign, true)})
}

type createCampaignRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GoalAmount  int64  `json:"goalAmount"`
}

// CreateCampaign handles POST /ngo/{ngoID}/campaigns/create. New campaigns
// start in pending and wait for moderation.
func (a *App) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	campaign, err := a.Donations.CreateCampaign(r.Context(), chi.URLParam(r, "ngoID"), req.Title, req.Description, req.GoalAmount)
	if err != nil {
		a.domainError(w, err)
		return
	}

	a.json(w, http.StatusCreated, map[string]any{
		"success":  true,
		"message":  "Campaign created and pending approval",
		"campaign": toCampaignDTO(campaign, false),
	})
}

// NGOCampaigns handles GET /ngo/{ngoID}/campaigns.
func (a *App) NGOCampaigns(w http.ResponseWriter, r *http.Request) {
	ngoID := chi.URLParam(r, "ngoID")
	if _, err := a.NGOs.GetByID(r.Context(), ngoID); err != nil {
		a.domainError(w, err)
		return
	}
	campaigns, err := a.Campaigns.ListByNGO(r.Context(), ngoID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]campaignDTO, 0, len(campaigns))
	for i := range campaigns {
		items = append(items, toCampaignDTO(&campaigns[i], false))
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "campaigns": items})
}
