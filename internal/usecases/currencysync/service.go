// Package currencysync runs the currency pipeline: fetch the latest exchange
// rates, reconcile them against the stored history, extend placeholders,
// validate and replace the rate table.
package currencysync

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/autoloan/datasync/infrastructure/integrator/currencyapi"
	"github.com/autoloan/datasync/infrastructure/notifier"
	"github.com/autoloan/datasync/infrastructure/repository"
	"github.com/autoloan/datasync/internal/config"
	"github.com/autoloan/datasync/internal/domain"
	"github.com/autoloan/datasync/internal/reconcile"
	"github.com/autoloan/datasync/pkg/utils"
)

// ErrValidation marks a structurally invalid final batch. The write is
// suppressed and the run aborts.
var ErrValidation = errors.New("rate batch validation failed")

type Service struct {
	cfg      *config.Config
	client   currencyapi.Client
	rateRepo repository.RateRepository
	health   notifier.HealthPinger
	now      func() time.Time
}

func NewService(
	cfg *config.Config,
	client currencyapi.Client,
	rateRepo repository.RateRepository,
	health notifier.HealthPinger,
) *Service {
	return &Service{
		cfg:      cfg,
		client:   client,
		rateRepo: rateRepo,
		health:   health,
		now:      time.Now,
	}
}

// MergeOptions is the currency pipeline's reconciliation contract: dedup by
// calendar date, newly fetched values override stored rows for the same date.
func MergeOptions() reconcile.Options[domain.RateRecord] {
	return reconcile.Options[domain.RateRecord]{
		Key: func(r domain.RateRecord) (string, error) {
			if r.Date.IsZero() {
				return "", errors.New("rate record has no date")
			}
			return r.Date.Format(time.DateOnly), nil
		},
		SortKey: func(r domain.RateRecord) string {
			return r.Date.Format(time.DateOnly)
		},
		Policy: reconcile.NewestWins,
	}
}

// Run executes one full pipeline pass. Any error aborts the run before the
// write; a validation failure suppresses the write entirely.
func (s *Service) Run(ctx context.Context) error {
	logrus.Info("Starting currency exchange rate pipeline")
	startTime := s.now()

	historical, err := s.rateRepo.FetchHistorical(ctx, utils.Yesterday(s.now()))
	if err != nil {
		return errors.Wrap(err, "fetching historical rates")
	}

	response, err := s.client.GetLatestRates()
	if err != nil {
		return errors.Wrap(err, "fetching latest rates")
	}

	record, err := ParseLatestRates(response, s.now())
	if err != nil {
		return errors.Wrap(err, "parsing rate API response")
	}

	merged, err := reconcile.Merge(historical, []domain.RateRecord{record}, MergeOptions())
	if err != nil {
		return errors.Wrap(err, "merging rate batches")
	}

	final := ExtendPlaceholders(merged, s.cfg.CurrencySync.HorizonDays)

	if !Validate(final, s.cfg.CurrencyAPI.TargetCurrencies) {
		return ErrValidation
	}

	if err := s.rateRepo.Replace(ctx, final, s.cfg.CurrencyAPI.TargetCurrencies); err != nil {
		return errors.Wrap(err, "replacing rate table")
	}

	s.health.Ping(ctx)

	logrus.WithFields(logrus.Fields{
		"records":  len(final),
		"duration": time.Since(startTime).String(),
	}).Info("Currency pipeline completed successfully")

	return nil
}
