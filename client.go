package main

import (
	"os"
)

// BucketClient is the one storage capability the offloader needs: put a
// local file into a bucket under a key.
type BucketClient interface {
	UploadFile(bucketName string, key string, file *os.File) error
}
