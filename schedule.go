package main

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron"
	log "github.com/sirupsen/logrus"
)

// runScheduled executes a pass every interval minutes, starting now, until
// ctx is cancelled. Failed passes are logged and the schedule carries on.
func runScheduled(ctx context.Context, offloader *Offloader, directory string, interval int) error {
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	_, jobErr := scheduler.Every(interval).Minutes().Do(func() {
		_, runErr := offloader.Execute(directory)
		if errors.Is(runErr, ErrRunInProgress) {
			return
		}
		if runErr != nil {
			log.Warn("Scheduled upload pass failed: ", runErr)
		}
	})
	if jobErr != nil {
		return jobErr
	}

	log.Infof("Scheduled upload pass for %s every %d minute(s)", directory, interval)
	scheduler.StartAsync()
	<-ctx.Done()
	scheduler.Stop()
	log.Info("Scheduler stopped")

	return nil
}
