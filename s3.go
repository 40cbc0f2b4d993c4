package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
)

type S3Client struct {
	Client   *s3.Client
	uploader *manager.Uploader
}

func NewS3BucketClient(appConfig AppConfig) (BucketClient, error) {
	var bucketClient BucketClient

	cfg, err := loadAWSConfig(appConfig)
	if err != nil {
		return bucketClient, &ClientInitError{Client: "s3", Err: err}
	}
	awsS3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if appConfig.Endpoint != "" {
			o.BaseEndpoint = aws.String(appConfig.Endpoint)
		}
		o.UsePathStyle = appConfig.UsePathStyle
	})
	bucketClient = &S3Client{
		Client:   awsS3Client,
		uploader: manager.NewUploader(awsS3Client),
	}

	return bucketClient, nil
}

// loadAWSConfig builds an aws.Config from the static keys in appConfig.
// Shared by the S3 and SNS clients.
func loadAWSConfig(appConfig AppConfig) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(appConfig.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			appConfig.AccessKeyID,
			appConfig.SecretAccessKey,
			"",
		)),
	}
	if appConfig.HTTPTimeout > 0 {
		httpClient := awshttp.NewBuildableClient().
			WithTimeout(time.Duration(appConfig.HTTPTimeout) * time.Second)
		opts = append(opts, config.WithHTTPClient(httpClient))
	}

	return config.LoadDefaultConfig(context.TODO(), opts...)
}

func (s *S3Client) UploadFile(bucketName, key string, file *os.File) error {
	contentType, sniffErr := detectContentType(file)
	if sniffErr != nil {
		return sniffErr
	}

	_, putErr := s.uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})

	return putErr
}

// detectContentType sniffs the head of file and rewinds it.
func detectContentType(file io.ReadSeeker) (string, error) {
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return mtype.String(), nil
}
