package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

func NewSNSNotifier(appConfig AppConfig) (Notifier, error) {
	var notifier Notifier

	cfg, cfgErr := loadAWSConfig(appConfig)
	if cfgErr != nil {
		return notifier, &ClientInitError{Client: "sns", Err: cfgErr}
	}
	snsClient := &SNSClient{sns.NewFromConfig(cfg)}
	notifier = &SNSNotifier{Client: snsClient, Topic: appConfig.SNSTopic}

	return notifier, nil
}

type SNSClientIface interface {
	PublishMessage(msg *sns.PublishInput) error
}

type SNSClient struct {
	Client *sns.Client
}

func (s *SNSClient) PublishMessage(msg *sns.PublishInput) error {
	_, publishErr := s.Client.Publish(context.TODO(), msg)
	return publishErr
}

type SNSNotifier struct {
	Client SNSClientIface
	Topic  string
}

func (s *SNSNotifier) NotifyRunResults(report RunReport, runErr error) error {
	subject := fmt.Sprintf("Offload %s: %s -> %s", report.Outcome, report.Directory, report.Bucket)
	notificationBody := fmt.Sprintf("Run ID: %s\n", report.RunID)
	notificationBody += fmt.Sprintf("Files Discovered: %d\n", report.Discovered)
	notificationBody += fmt.Sprintf("Files Uploaded: %d\n", report.Uploaded)
	notificationBody += fmt.Sprintf("Files Deleted: %d\n", report.Cleaned)
	notificationBody += fmt.Sprintf("Duration: %s\n", report.Duration)
	notificationBody += fmt.Sprintf("Error: %v\n", runErr)

	snsPublishReq := &sns.PublishInput{
		Message:  aws.String(notificationBody),
		TopicArn: aws.String(s.Topic),
		Subject:  aws.String(truncateSubject(subject)),
	}
	publishErr := s.Client.PublishMessage(snsPublishReq)

	return publishErr
}

// SNS rejects subjects longer than 100 characters. Cut on rune boundaries
// so the result stays valid UTF-8.
func truncateSubject(subject string) string {
	runes := []rune(subject)
	if len(runes) <= 100 {
		return subject
	}
	return string(runes[:97]) + "..."
}
