package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"goodheart/internal/domain"
	"goodheart/internal/service"
)

// App bundles the dependencies shared by all HTTP handlers.
type App struct {
	Logger    zerolog.Logger
	Campaigns domain.CampaignRepository
	Donors    domain.DonorRepository
	NGOs      domain.NGORepository
	Donations *service.Service
}

func NewApp(logger zerolog.Logger, campaigns domain.CampaignRepository, donors domain.DonorRepository, ngos domain.NGORepository, donations *service.Service) *App {
	return &App{
		Logger:    logger,
		Campaigns: campaigns,
		Donors:    donors,
		NGOs:      ngos,
		Donations: donations,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]any{"success": false, "message": message})
}

// domainError maps domain sentinels onto the API error contract. Conflicts
// get their own status so callers can tell a raced state change apart from
// plain validation failures.
func (a *App) domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCampaignNotFound),
		errors.Is(err, domain.ErrDonorNotFound),
		errors.Is(err, domain.ErrNGONotFound):
		a.error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrCampaignNotActive),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidCampaign):
		a.error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrConflict):
		a.error(w, http.StatusConflict, "campaign is no longer accepting donations, please retry")
	default:
		a.Logger.Error().Err(err).Msg("unhandled error")
		a.error(w, http.StatusInternalServerError, "something went wrong")
	}
}
