package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type channelNotifier struct {
	reports chan RunReport
}

func (n *channelNotifier) NotifyRunResults(report RunReport, runErr error) error {
	n.reports <- report
	return nil
}

func TestRunScheduledRunsImmediatelyAndStops(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "a"})
	notifier := &channelNotifier{reports: make(chan RunReport, 1)}
	offloader := NewOffloader(NewMockClient(), NewMockRemover(), notifier, AppConfig{BucketName: "not-real-bucket"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runScheduled(ctx, offloader, root, 60)
	}()

	select {
	case report := <-notifier.reports:
		assert.Equal(t, OutcomeCompleted, report.Outcome)
		assert.Equal(t, 1, report.Uploaded)
	case <-time.After(10 * time.Second):
		t.Fatal("scheduled pass did not run")
	}

	cancel()
	select {
	case schedErr := <-done:
		require.NoError(t, schedErr)
	case <-time.After(10 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
