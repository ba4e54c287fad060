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

// AdSpendRunner is the pipeline run the scheduler triggers.
type AdSpendRunner interface {
	Run(ctx context.Context) error
}

// AdSpendSyncService schedules and executes the ad-spend pipeline.
type AdSpendSyncService struct {
	scheduler           *gocron.Scheduler
	cronSchedule        string
	enabled             bool
	runner              AdSpendRunner
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewAdSpendSyncService(runner AdSpendRunner, appConfig *config.Config) *AdSpendSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.AdSpendSync.CronSchedule,
		"sync_enabled":  appConfig.AdSpendSync.Enabled,
	}).Info("Ad-spend sync scheduler configuration loaded")

	return &AdSpendSyncService{
		scheduler:    gocron.NewScheduler(schedulerLocation(appConfig.App.Timezone)),
		cronSchedule: appConfig.AdSpendSync.CronSchedule,
		enabled:      appConfig.AdSpendSync.Enabled,
		runner:       runner,
	}
}

// Start registers the cron job and runs the scheduler in the background.
func (s *AdSpendSyncService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Ad-spend sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.cronSchedule).Info("Starting ad-spend sync scheduler")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.runSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduling ad-spend sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping ad-spend sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync runs the pipeline outside its cron schedule. The run is
// detached from the caller's context so an admin request ending does not
// cancel it.
func (s *AdSpendSyncService) TriggerManualSync() {
	go s.runSync(context.Background())
}

// Status reports the scheduler's last run for the admin API.
func (s *AdSpendSyncService) Status() map[string]any {
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

func (s *AdSpendSyncService) runSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ad-spend sync already in progress, skipping")
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
		logrus.WithError(err).Error("Ad-spend sync failed")
	} else {
		s.lastSyncError = ""
	}
	s.syncMutex.Unlock()
}
