package main

import (
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Outcome string

const (
	OutcomeNothingToDo Outcome = "nothing to do"
	OutcomeCompleted   Outcome = "completed"
	OutcomePartial     Outcome = "partial"
	OutcomeFailed      Outcome = "failed"
)

// RunReport summarizes one enumerate, upload, clean pass.
type RunReport struct {
	RunID      string
	Directory  string
	Bucket     string
	Discovered int
	Uploaded   int
	Cleaned    int
	Outcome    Outcome
	Duration   time.Duration
}

type Offloader struct {
	Client            BucketClient
	Remover           Remover
	Notifier          Notifier
	Bucket            string
	KeyPrefix         string
	DeleteAfterUpload bool

	lock sync.Mutex
}

func NewOffloader(client BucketClient, remover Remover, notifier Notifier, appConfig AppConfig) *Offloader {
	return &Offloader{
		Client:            client,
		Remover:           remover,
		Notifier:          notifier,
		Bucket:            appConfig.BucketName,
		KeyPrefix:         appConfig.KeyPrefix,
		DeleteAfterUpload: appConfig.DeleteAfterUpload,
	}
}

// Execute runs one pass over directory. Only one pass runs at a time; a
// concurrent call returns ErrRunInProgress without doing anything.
func (o *Offloader) Execute(directory string) (RunReport, error) {
	report := RunReport{
		RunID:     uuid.NewString(),
		Directory: directory,
		Bucket:    o.Bucket,
		Outcome:   OutcomeFailed,
	}
	logger := log.WithField("run_id", report.RunID)

	if !o.lock.TryLock() {
		logger.Warn("Another upload pass is already running. Skipping.")
		return report, ErrRunInProgress
	}
	defer o.lock.Unlock()

	startTime := time.Now()
	runErr := o.run(directory, &report, logger)
	report.Duration = time.Since(startTime)

	if runErr != nil {
		logger.Error("Error during execution: ", runErr)
	}
	if o.Notifier != nil && report.Outcome != OutcomeNothingToDo {
		if notifyErr := o.Notifier.NotifyRunResults(report, runErr); notifyErr != nil {
			logger.Warn("Error publishing run notification: ", notifyErr)
		}
	}

	return report, runErr
}

func (o *Offloader) run(directory string, report *RunReport, logger *log.Entry) error {
	logger.Info("Starting upload process...")
	files, listErr := listFiles(directory)
	if listErr != nil {
		return listErr
	}
	report.Discovered = len(files)

	if len(files) == 0 {
		logger.Info("No files found to upload.")
		report.Outcome = OutcomeNothingToDo
		return nil
	}

	uploaded, uploadErr := uploadAll(o.Client, o.Bucket, o.KeyPrefix, directory, files, logger)
	report.Uploaded = uploaded
	if uploadErr != nil {
		if uploaded > 0 {
			report.Outcome = OutcomePartial
		}
		return uploadErr
	}

	cleaned, cleanErr := cleanAll(o.Remover, o.DeleteAfterUpload, files, logger)
	report.Cleaned = cleaned
	if cleanErr != nil {
		report.Outcome = OutcomePartial
		return cleanErr
	}

	report.Outcome = OutcomeCompleted
	logger.WithField("result", "success").Info("Upload process completed.")
	return nil
}
