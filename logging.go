package main

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// configureLogging points the package logger at stderr plus a size-rotated
// log file.
func configureLogging(lc LogConfig) error {
	level, levelErr := log.ParseLevel(lc.Level)
	if levelErr != nil {
		return levelErr
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if lc.File == "" {
		log.SetOutput(os.Stderr)
		return nil
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(lc.File), 0o755); mkdirErr != nil {
		return mkdirErr
	}
	rotating := &lumberjack.Logger{
		Filename: lc.File,
		MaxSize:  lc.MaxSizeMB,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, rotating))

	return nil
}
