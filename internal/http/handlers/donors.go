package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DonorsList handles GET /donor/all.
func (a *App) DonorsList(w http.ResponseWriter, r *http.Request) {
	donors, err := a.Donors.List(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]donorDTO, 0, len(donors))
	for _, donor := range donors {
		items = append(items, donorDTO{ID: donor.ID, Name: donor.Name, Email: donor.Email, CreatedAt: donor.CreatedAt})
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "donors": items})
}

// DonorHistory handles GET /donor/{donorID}/donation-history: the donor's
// ledger entries across all campaigns, newest first.
func (a *App) DonorHistory(w http.ResponseWriter, r *http.Request) {
	donorID := chi.URLParam(r, "donorID")
	if _, err := a.Donors.GetByID(r.Context(), donorID); err != nil {
		a.domainError(w, err)
		return
	}
	history, err := a.Campaigns.DonorHistory(r.Context(), donorID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]historyEntryDTO, 0, len(history))
	for _, entry := range history {
		items = append(items, historyEntryDTO{
			CampaignID:    entry.CampaignID,
			CampaignTitle: entry.CampaignTitle,
			Amount:        entry.Amount,
			DonatedAt:     entry.DonatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "donations": items})
}
