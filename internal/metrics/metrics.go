package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the donation path.
type Metrics struct {
	DonationsTotal       prometheus.Counter
	DonationAmountTotal  prometheus.Counter
	CampaignsCreated     prometheus.Counter
	NotificationFailures prometheus.Counter
}

// New creates and registers all collectors against the given registerer.
// Pass prometheus.DefaultRegisterer in main and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DonationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "goodheart_donations_total",
			Help: "Number of donations committed to a campaign ledger.",
		}),
		DonationAmountTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "goodheart_donation_amount_total",
			Help: "Cumulative donated amount across all campaigns.",
		}),
		CampaignsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "goodheart_campaigns_created_total",
			Help: "Number of campaigns created.",
		}),
		NotificationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "goodheart_notification_failures_total",
			Help: "Number of notification attempts that did not succeed.",
		}),
	}
}
