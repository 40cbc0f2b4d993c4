package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// uploadAll uploads paths one at a time, in order, keyed relative to root.
// It stops at the first failure and returns how many files made it.
func uploadAll(client BucketClient, bucket, prefix, root string, paths []string, logger *log.Entry) (int, error) {
	uploaded := 0
	for _, filePath := range paths {
		uploadErr := uploadFile(client, bucket, prefix, root, filePath, logger)
		if uploadErr != nil {
			logger.Error(uploadErr.Error())
			return uploaded, uploadErr
		}
		uploaded++
	}

	return uploaded, nil
}

func uploadFile(client BucketClient, bucket, prefix, root, filePath string, logger *log.Entry) error {
	relKey, keyErr := destinationKey(root, filePath)
	if keyErr != nil {
		return &TransferError{Path: filePath, Bucket: bucket, Err: keyErr}
	}
	key := prefixedKey(prefix, relKey)

	logger.Info(fmt.Sprintf("Uploading %s to s3://%s/%s", filePath, bucket, key))
	fd, fileErr := os.Open(filePath)
	if fileErr != nil {
		return &TransferError{Path: filePath, Bucket: bucket, Key: key, Err: fileErr}
	}
	defer fd.Close()

	if putErr := client.UploadFile(bucket, key, fd); putErr != nil {
		return &TransferError{Path: filePath, Bucket: bucket, Key: key, Err: putErr}
	}
	logger.WithField("result", "success").
		Info(fmt.Sprintf("Uploaded %s to s3://%s/%s", filePath, bucket, key))

	return nil
}
