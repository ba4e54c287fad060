// Package adspendsync runs the ad-spend pipeline: load hourly ad-set cost
// rows from the reporting source, normalize and timezone-resolve them,
// reconcile against the warehouse history and replace the destination table.
package adspendsync

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/autoloan/datasync/infrastructure/notifier"
	"github.com/autoloan/datasync/infrastructure/repository"
	warehouse "github.com/autoloan/datasync/infrastructure/warehouse/bigquery"
	"github.com/autoloan/datasync/internal/config"
	"github.com/autoloan/datasync/internal/domain"
	"github.com/autoloan/datasync/internal/reconcile"
)

type Service struct {
	cfg      *config.Config
	wh       warehouse.Client
	tzRepo   repository.TimezoneRepository
	notifier notifier.Notifier
	health   notifier.HealthPinger
	now      func() time.Time
}

func NewService(
	cfg *config.Config,
	wh warehouse.Client,
	tzRepo repository.TimezoneRepository,
	emailNotifier notifier.Notifier,
	health notifier.HealthPinger,
) *Service {
	return &Service{
		cfg:      cfg,
		wh:       wh,
		tzRepo:   tzRepo,
		notifier: emailNotifier,
		health:   health,
		now:      time.Now,
	}
}

// MergeOptions is the ad-spend pipeline's reconciliation contract: dedup by
// (source_datetime, account_id, ad_set_id), rows from the reporting source
// win over warehouse history.
func MergeOptions() reconcile.Options[domain.AdSpendRecord] {
	return reconcile.Options[domain.AdSpendRecord]{
		Key: func(r domain.AdSpendRecord) (string, error) {
			return r.DedupKey(), nil
		},
		SortKey: func(r domain.AdSpendRecord) string {
			return r.SourceDatetime
		},
		Policy: reconcile.PrimarySource,
	}
}

// Run executes one full pipeline pass. Per-record timezone failures are
// aggregated and reported, never fatal; everything else aborts the run before
// the write.
func (s *Service) Run(ctx context.Context) error {
	logrus.Info("Starting ad-spend pipeline")
	startTime := s.now()

	sourceRows, err := s.wh.ReadTable(ctx, s.cfg.Warehouse.SourceTable)
	if err != nil {
		return errors.Wrap(err, "loading reporting source data")
	}

	records := Normalize(sourceRows)

	zones, err := s.tzRepo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "fetching account timezones")
	}

	records, errorTimezones, err := ResolveTimezones(records, zones, s.cfg.AdSpendSync.CanonicalTimezone)
	if err != nil {
		return errors.Wrap(err, "resolving timezones")
	}

	if len(errorTimezones) > 0 {
		if err := s.notifier.NotifyTimezoneErrors(errorTimezones); err != nil {
			logrus.WithError(err).Error("Failed to send timezone error notification")
		}
	}

	if err := s.writeDestination(ctx, records); err != nil {
		return err
	}

	s.health.Ping(ctx)

	logrus.WithFields(logrus.Fields{
		"records":  len(records),
		"duration": time.Since(startTime).String(),
	}).Info("Ad-spend pipeline completed successfully")

	return nil
}

// writeDestination replaces the destination table with the merged batch, or
// writes the batch as-is when the table does not exist yet (first run).
func (s *Service) writeDestination(ctx context.Context, records []domain.AdSpendRecord) error {
	exists, err := s.wh.TableExists(ctx, s.cfg.Warehouse.Table)
	if err != nil {
		return errors.Wrap(err, "checking destination table")
	}

	final := records
	if !exists {
		logrus.Info("Destination table not found, inserting batch as-is")
	} else {
		logrus.Info("Destination table found, merging with historical data")

		historicalRef := fmt.Sprintf("%s.%s.%s", s.cfg.Warehouse.Project, s.cfg.Warehouse.Dataset, s.cfg.Warehouse.Table)
		historicalRows, err := s.wh.ReadTable(ctx, historicalRef)
		if err != nil {
			return errors.Wrap(err, "loading historical warehouse data")
		}

		final, err = reconcile.Merge(FromRows(historicalRows), records, MergeOptions())
		if err != nil {
			return errors.Wrap(err, "merging ad-spend batches")
		}
	}

	if err := s.wh.ReplaceTable(ctx, s.cfg.Warehouse.Table, Schema(final), ToRows(final)); err != nil {
		return errors.Wrap(err, "replacing destination table")
	}

	return nil
}
