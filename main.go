package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

func main() {
	if envErr := loadDotEnv(".env"); envErr != nil {
		log.Fatal("Error loading .env file: ", envErr)
	}

	appConfig, configErr := LoadConfig(configFiles()...)
	if configErr != nil {
		log.Fatal(configErr)
	}
	if logErr := configureLogging(appConfig.Log); logErr != nil {
		log.Fatal("Error configuring logging: ", logErr)
	}

	log.Info("Loaded configuration:")
	for _, line := range appConfig.ConfigStringArray() {
		log.Info(line)
	}

	bucketClient, clientErr := NewS3BucketClient(appConfig)
	if clientErr != nil {
		log.Fatal(clientErr)
	}
	log.Info("S3 client created successfully.")

	var notifier Notifier
	if appConfig.SNSTopic != "" {
		var notifierErr error
		notifier, notifierErr = NewSNSNotifier(appConfig)
		if notifierErr != nil {
			log.Fatal(notifierErr)
		}
	}

	offloader := NewOffloader(bucketClient, osRemover{}, notifier, appConfig)

	if appConfig.IntervalMinutes > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if schedErr := runScheduled(ctx, offloader, appConfig.SourceFolder, appConfig.IntervalMinutes); schedErr != nil {
			log.Fatal("Error in main: ", schedErr)
		}
		return
	}

	if _, runErr := offloader.Execute(appConfig.SourceFolder); runErr != nil {
		log.Fatal("Error in main: ", runErr)
	}
}
