package notify

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"goodheart/internal/domain"
	"goodheart/internal/metrics"
)

const defaultAttemptTimeout = 10 * time.Second

// Dispatcher fans out donation notifications after the ledger commit. Sends
// are fire-and-forget from the caller's point of view: each attempt runs in
// its own goroutine, gets exactly one try bounded by a timeout, and swallows
// its own failure. A failed donor email never prevents the NGO email and
// nothing here ever reverses a committed donation.
type Dispatcher struct {
	mailer  Mailer
	logger  zerolog.Logger
	metrics *metrics.Metrics
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(mailer Mailer, logger zerolog.Logger, m *metrics.Metrics, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultAttemptTimeout
	}
	return &Dispatcher{mailer: mailer, logger: logger, metrics: m, timeout: timeout}
}

// DonationCommitted notifies the donor and the owning NGO about a committed
// donation. It returns immediately.
func (d *Dispatcher) DonationCommitted(campaign *domain.Campaign, donor *domain.Donor, ngo *domain.NGO, amount int64, totalDonorsCount int) {
	d.dispatch("donor_confirmation", DonorConfirmation(donor.Email, donor.Name, campaign.Title, amount, totalDonorsCount))
	d.dispatch("ngo_alert", NGOAlert(ngo.Email, ngo.Name, campaign.Title, donor.Name, amount))
}

func (d *Dispatcher) dispatch(kind string, msg Message) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		result := d.mailer.Send(ctx, msg)
		event := d.logger.Info()
		if !result.Success {
			event = d.logger.Error()
			if d.metrics != nil {
				d.metrics.NotificationFailures.Inc()
			}
		}
		event.
			Str("notification", kind).
			Str("to", msg.To).
			Bool("success", result.Success).
			Str("result", result.Message).
			Msg("notification attempt finished")
	}()
}

// Wait blocks until all in-flight notification attempts have finished. Used
// on shutdown and by tests; request handling never waits on it.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
