package main

import (
	"errors"
	"fmt"
)

// ErrRunInProgress is returned by Execute when another pass still holds the run lock.
var ErrRunInProgress = errors.New("Unable to acquire run lock")

// ConfigError means a required configuration value is missing or malformed.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ClientInitError means a storage or notification client could not be built.
type ClientInitError struct {
	Client string
	Err    error
}

func (e *ClientInitError) Error() string {
	return fmt.Sprintf("Error creating %s client: %v", e.Client, e.Err)
}

func (e *ClientInitError) Unwrap() error { return e.Err }

// TraversalError wraps a failure walking the source directory.
type TraversalError struct {
	Root string
	Err  error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("Error walking local directory %s: %v", e.Root, e.Err)
}

func (e *TraversalError) Unwrap() error { return e.Err }

// TransferError wraps a failure uploading a single file. Key is empty when
// the failure happened before a key could be derived.
type TransferError struct {
	Path   string
	Bucket string
	Key    string
	Err    error
}

func (e *TransferError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("Failed to upload %s to s3://%s/%s: %v", e.Path, e.Bucket, e.Key, e.Err)
	}
	return fmt.Sprintf("Failed to upload %s: %v", e.Path, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }

// CleanupError wraps a failure removing a local file after upload.
type CleanupError struct {
	Path string
	Err  error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("Failed to delete %s: %v", e.Path, e.Err)
}

func (e *CleanupError) Unwrap() error { return e.Err }
