package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/autoloan/datasync/internal/config"
)

// CurrencyRunner is the pipeline run the scheduler triggers.
type CurrencyRunner interface {
	Run(ctx context.Context) error
}

// CurrencySyncService schedules and executes the currency pipeline.
type CurrencySyncService struct {
	scheduler           *gocron.Scheduler
	cronSchedule        string
	enabled             bool
	runner              CurrencyRunner
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewCurrencySyncService(runner CurrencyRunner, appConfig *config.Config) *CurrencySyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.CurrencySync.CronSchedule,
		"sync_enabled":  appConfig.CurrencySync.Enabled,
	}).Info("Currency sync scheduler configuration loaded")

	return &CurrencySyncService{
		scheduler:    gocron.NewScheduler(schedulerLocation(appConfig.App.Timezone)),
		cronSchedule: appConfig.CurrencySync.CronSchedule,
		enabled:      appConfig.CurrencySync.Enabled,
		runner:       runner,
	}
}

// Start registers the cron job and runs the scheduler in the background.
func (s *CurrencySyncService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Currency sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.cronSchedule).Info("Starting currency sync scheduler")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.runSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduling currency sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping currency sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync runs the pipeline outside its cron schedule. The run is
// detached from the caller's context so an admin request ending does not
// cancel it.
func (s *CurrencySyncService) TriggerManualSync() {
	go s.runSync(context.Background())
}

// Status reports the scheduler's last run for the admin API.
func (s *CurrencySyncService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.enabled,
		"cron_schedule":          s.cronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   formatSyncTime(s.lastSyncStartedAt),
		"last_sync_completed_at": formatSyncTime(s.lastSyncCompletedAt),
		"last_sync_error":        s.lastSyncError,
	}
}

func (s *CurrencySyncService) runSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Currency sync already in progress, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	err := s.runner.Run(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("Currency sync failed")
	} else {
		s.lastSyncError = ""
	}
	s.syncMutex.Unlock()
}

func formatSyncTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// schedulerLocation resolves the configured timezone-of-record for cron
// schedules, with UTC as fallback.
func schedulerLocation(timezone string) *time.Location {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		logrus.WithField("timezone", timezone).Warn("Unknown scheduler timezone, using UTC")
		return time.UTC
	}
	return loc
}
