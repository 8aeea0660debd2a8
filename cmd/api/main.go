package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"goodheart/internal/adapter/repo"
	"goodheart/internal/domain"
	"goodheart/internal/http/handlers"
	"goodheart/internal/http/httpapi"
	"goodheart/internal/infra"
	"goodheart/internal/infra/geoip"
	"goodheart/internal/metrics"
	"goodheart/internal/middleware"
	"goodheart/internal/notify"
	"goodheart/internal/service"
)

func main() {
	// .env is optional; real deployments configure the environment directly.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	var (
		campaigns domain.CampaignRepository
		donors    domain.DonorRepository
		ngos      domain.NGORepository
	)
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		runner := infra.NewSQLRunner(pool, logger)
		campaigns = repo.NewCampaignRepository(runner)
		donors = repo.NewDonorRepository(runner)
		ngos = repo.NewNGORepository(runner)
	} else {
		logger.Warn().Msg("DATABASE_URL not set, using in-memory stores with demo data")
		campaigns, donors, ngos = seedMemoryStores(logger)
	}

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open geoip database")
	}
	var lookup middleware.CountryLookup
	if resolver != nil {
		defer resolver.Close()
		lookup = resolver.CountryCode
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	mailer, err := notify.NewMailerFromConfig(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure email transport")
	}
	dispatcher := notify.NewDispatcher(mailer, logger, m, cfg.NotifyTimeout)

	donations := service.New(campaigns, donors, ngos, dispatcher, m, logger)
	app := handlers.NewApp(logger, campaigns, donors, ngos, donations)

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:          logger,
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
		CountryLookup:   lookup,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}

	// Let in-flight notification attempts finish; each is bounded by its own
	// timeout so this cannot hang indefinitely.
	dispatcher.Wait()
	logger.Info().Msg("server stopped")
}

// seedMemoryStores builds the development stores with one donor, one NGO and
// one active campaign so the donate flow works out of the box.
func seedMemoryStores(logger infra.Logger) (*repo.CampaignRepositoryMemory, *repo.DonorRepositoryMemory, *repo.NGORepositoryMemory) {
	campaigns := repo.NewCampaignRepositoryMemory()
	donors := repo.NewDonorRepositoryMemory()
	ngos := repo.NewNGORepositoryMemory()

	now := time.Now()
	donor := domain.Donor{ID: uuid.NewString(), Name: "Demo Donor", Email: "donor@example.com", CreatedAt: now}
	ngo := domain.NGO{ID: uuid.NewString(), Name: "Demo Relief Fund", Email: "ngo@example.com", CreatedAt: now}
	donors.Add(donor)
	ngos.Add(ngo)

	approved := now
	campaigns.Seed(&domain.Campaign{
		ID:          uuid.NewString(),
		Title:       "Clean Water for All",
		Description: "Help us build wells in underserved communities.",
		NGOID:       ngo.ID,
		GoalAmount:  10000,
		Status:      domain.CampaignActive,
		CreatedAt:   now,
		ApprovedAt:  &approved,
	})

	list, _ := campaigns.ListActive(context.Background())
	for _, c := range list {
		logger.Info().
			Str("campaign_id", c.ID).
			Str("donor_id", donor.ID).
			Str("ngo_id", ngo.ID).
			Msgf("demo data ready: donate with POST /donor/campaigns/%s/donate", c.ID)
	}

	return campaigns, donors, ngos
}
