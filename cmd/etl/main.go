package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/autoloan/datasync/infrastructure/database/postgres"
	"github.com/autoloan/datasync/infrastructure/integrator/currencyapi"
	"github.com/autoloan/datasync/infrastructure/notifier"
	"github.com/autoloan/datasync/infrastructure/repository"
	warehouse "github.com/autoloan/datasync/infrastructure/warehouse/bigquery"
	"github.com/autoloan/datasync/internal/api"
	"github.com/autoloan/datasync/internal/config"
	"github.com/autoloan/datasync/internal/scheduler"
	"github.com/autoloan/datasync/internal/usecases/adspendsync"
	"github.com/autoloan/datasync/internal/usecases/currencysync"
)

func main() {
	configureLogger()

	if err := run(); err != nil {
		logrus.WithError(err).Error("Application failed")
		os.Exit(1)
	}
}

// run wires the pipelines and either executes them once or hands them to the
// schedulers. All connection cleanup happens via defers here, regardless of
// which error path triggered.
func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, using 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pgConn.Close()

	if err := pgConn.Ping(ctx); err != nil {
		return err
	}
	logrus.Info("PostgreSQL connection established")

	health := notifier.NewHealthChecker(cfg.HealthCheck.URL)

	var currencyService *currencysync.Service
	if cfg.CurrencySync.Enabled {
		rateRepo := repository.NewRateRepository(pgConn, cfg.CurrencySync.TableName)
		currencyService = currencysync.NewService(cfg, currencyapi.NewClient(cfg), rateRepo, health)
	}

	var adSpendService *adspendsync.Service
	if cfg.AdSpendSync.Enabled {
		whClient, err := warehouse.NewClient(ctx, cfg.Warehouse)
		if err != nil {
			return err
		}
		defer whClient.Close()

		tzRepo := repository.NewTimezoneRepository(pgConn)
		emailNotifier := notifier.NewEmailNotifier(cfg.Email)
		adSpendService = adspendsync.NewService(cfg, whClient, tzRepo, emailNotifier, health)
	}

	if cfg.App.RunOnce {
		return runOnce(ctx, currencyService, adSpendService)
	}

	var currencySync *scheduler.CurrencySyncService
	if currencyService != nil {
		currencySync = scheduler.NewCurrencySyncService(currencyService, cfg)
		if err := currencySync.Start(ctx); err != nil {
			return err
		}
	}

	var adSpendSync *scheduler.AdSpendSyncService
	if adSpendService != nil {
		adSpendSync = scheduler.NewAdSpendSyncService(adSpendService, cfg)
		if err := adSpendSync.Start(ctx); err != nil {
			return err
		}
	}

	server, err := api.New(cfg, currencySync, adSpendSync)
	if err != nil {
		return err
	}

	return server.Run(ctx)
}

// runOnce executes each enabled pipeline a single time. The first failure
// aborts so the scheduler driving the process sees a non-zero exit.
func runOnce(ctx context.Context, currencyService *currencysync.Service, adSpendService *adspendsync.Service) error {
	if currencyService != nil {
		if err := currencyService.Run(ctx); err != nil {
			return err
		}
	}

	if adSpendService != nil {
		if err := adSpendService.Run(ctx); err != nil {
			return err
		}
	}

	return nil
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
