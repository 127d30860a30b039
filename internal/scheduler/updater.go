// Package scheduler re-extracts known profiles on a cron schedule so the
// spreadsheet rows do not go stale.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"

	"github.com/octobees/linkedin-extractor/api/internal/entity"
)

// ProfileUpdater is the orchestrator surface the updater needs.
type ProfileUpdater interface {
	ProfileURLs(ctx context.Context) ([]string, error)
	ExtractProfile(ctx context.Context, subjectURL string) (entity.ProfileRecord, error)
}

// Updater runs the periodic profile refresh.
type Updater struct {
	svc      ProfileUpdater
	schedule string
	delay    time.Duration
	cron     *cron.Cron
}

// New builds an updater with a cron schedule expression and the fixed delay
// between successive subjects. The delay is an ordering throttle against the
// content-source quota, not concurrency control.
func New(svc ProfileUpdater, schedule string, delay time.Duration) *Updater {
	return &Updater{
		svc:      svc,
		schedule: schedule,
		delay:    delay,
		cron:     cron.New(),
	}
}

// Start registers the cron entry and begins scheduling.
func (u *Updater) Start() error {
	_, err := u.cron.AddFunc(u.schedule, func() {
		u.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}
	u.cron.Start()
	return nil
}

// Stop halts scheduling and returns once any in-flight run has finished.
func (u *Updater) Stop() {
	<-u.cron.Stop().Done()
}

// RunOnce refreshes every known profile sequentially, one subject per delay
// interval. A failing subject is logged and skipped; the run continues.
func (u *Updater) RunOnce(ctx context.Context) {
	log.Printf("profile refresh starting")

	urls, err := u.svc.ProfileURLs(ctx)
	if err != nil {
		log.Printf("profile refresh aborted, could not list profiles: %v", err)
		return
	}

	limiter := rate.NewLimiter(rate.Every(u.delay), 1)
	updated := 0
	for _, subjectURL := range urls {
		if err := limiter.Wait(ctx); err != nil {
			log.Printf("profile refresh stopped: %v", err)
			return
		}
		if _, err := u.svc.ExtractProfile(ctx, subjectURL); err != nil {
			log.Printf("failed to refresh %s: %v", subjectURL, err)
			continue
		}
		updated++
	}

	log.Printf("profile refresh finished, %d/%d profiles updated", updated, len(urls))
}
