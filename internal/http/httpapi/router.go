package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"goodheart/internal/http/handlers"
	"goodheart/internal/middleware"
)

// Options carries the cross-cutting wiring the router needs beyond handlers.
type Options struct {
	Logger          zerolog.Logger
	AllowedOrigins  []string
	RateLimitPerMin int
	CountryLookup   middleware.CountryLookup
}

// NewRouter builds the HTTP surface. The donate endpoint carries an extra
// per-IP rate limit; everything else shares the base middleware chain.
func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(opts.Logger),
		middleware.CORS(opts.AllowedOrigins),
		middleware.Geo(opts.CountryLookup),
	)

	r.Get("/health", app.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/donor", func(r chi.Router) {
		r.Get("/all", app.DonorsList)
		r.Get("/campaigns/active", app.ActiveCampaigns)
		r.Get("/campaigns/{campaignID}", app.CampaignByID)
		r.With(middleware.RateLimit(opts.RateLimitPerMin, time.Minute)).
			Post("/campaigns/{campaignID}/donate", app.Donate)
		r.Get("/{donorID}/donation-history", app.DonorHistory)
	})

	r.Route("/ngo", func(r chi.Router) {
		r.Get("/all", app.NGOsList)
		r.Post("/{ngoID}/campaigns/create", app.CreateCampaign)
		r.Get("/{ngoID}/campaigns", app.NGOCampaigns)
	})

	return r
}
