package notifier

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/autoloan/datasync/pkg/utils"
)

const healthCheckTimeout = 10 * time.Second

// HealthPinger signals a liveness endpoint after a successful pipeline run.
type HealthPinger interface {
	Ping(ctx context.Context)
}

type HealthChecker struct {
	url string
}

func NewHealthChecker(url string) *HealthChecker {
	return &HealthChecker{url: url}
}

// Ping is fire-and-forget: a failed ping is logged but never fails the run
// that already completed.
func (h *HealthChecker) Ping(ctx context.Context) {
	if _, err := utils.MakeRequest(ctx, h.url, healthCheckTimeout); err != nil {
		logrus.WithError(err).Error("Health check ping failed")
		return
	}

	logrus.Info("Health check ping successful")
}
