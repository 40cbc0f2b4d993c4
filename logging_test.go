package main

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogging(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
	})
}

func TestConfigureLoggingWritesToFile(t *testing.T) {
	restoreLogging(t)
	logFile := filepath.Join(t.TempDir(), "logs", "file_upload.log")

	require.NoError(t, configureLogging(LogConfig{File: logFile, MaxSizeMB: 1, Level: "info"}))
	log.WithField("result", "success").Info("Uploaded something")

	contents, readErr := os.ReadFile(logFile)
	assert.NoError(t, readErr)
	assert.Contains(t, string(contents), "Uploaded something")
	assert.Contains(t, string(contents), "result=success")
}

func TestConfigureLoggingRejectsUnknownLevel(t *testing.T) {
	restoreLogging(t)

	assert.Error(t, configureLogging(LogConfig{Level: "chatty"}))
}
