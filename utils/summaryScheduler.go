package utils

import (
	"context"
	"time"

	"gyaandeepika/utils/logger"

	"github.com/robfig/cron/v3"
)

// SummaryPurger deletes summaries whose TTL has passed.
type SummaryPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

const purgeTimeout = 2 * time.Minute

// InitializeSummaryScheduler starts the expired summary purge on the given cron schedule. The caller stops the returned cron.
func InitializeSummaryScheduler(spec string, purger SummaryPurger) (*cron.Cron, error) {
	log := logger.Log.With("component", "summary-scheduler")
	log.Info("initializing summary scheduler", "spec", spec)

	c := cron.New()
	if _, err := c.AddFunc(spec, func() { PurgeExpiredSummaries(purger) }); err != nil {
		return nil, err
	}

	c.Start()
	log.Info("summary scheduler started", "spec", spec)
	return c, nil
}

// PurgeExpiredSummaries runs one purge pass.
func PurgeExpiredSummaries(purger SummaryPurger) {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	removed, err := purger.PurgeExpired(ctx)
	if err != nil {
		logger.Log.Error("failed to purge expired summaries", "error", err)
		return
	}
	if removed > 0 {
		logger.Log.Info("purged expired summaries", "count", removed)
	}
}
