package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// Remover deletes a local file. Swapped for a mock in tests so nothing on
// disk is touched.
type Remover interface {
	Remove(path string) error
}

type osRemover struct{}

func (osRemover) Remove(path string) error {
	return os.Remove(path)
}

// cleanAll removes every uploaded file when deleteFiles is set, otherwise it
// only logs. Stops at the first failed removal.
func cleanAll(remover Remover, deleteFiles bool, paths []string, logger *log.Entry) (int, error) {
	removed := 0
	for _, filePath := range paths {
		if !deleteFiles {
			logger.Info(fmt.Sprintf("Keeping local file (deletion disabled): %s", filePath))
			continue
		}

		if delErr := remover.Remove(filePath); delErr != nil {
			cleanupErr := &CleanupError{Path: filePath, Err: delErr}
			logger.Error(cleanupErr.Error())
			return removed, cleanupErr
		}
		removed++
		logger.Info(fmt.Sprintf("Deleted local file: %s", filePath))
	}

	return removed, nil
}
