package main

import (
	"io"
	"os"
)

type MockS3Client struct {
	UploadRequests []MockRequest
	// FailOn makes UploadFile return the mapped error for that key.
	FailOn map[string]error
}

type MockRequest struct {
	DestBucket string
	Key        string
	Body       string
}

func NewMockClient() *MockS3Client {
	return &MockS3Client{
		UploadRequests: make([]MockRequest, 0),
		FailOn:         make(map[string]error),
	}
}

func (s *MockS3Client) UploadFile(bucketName string, key string, file *os.File) error {
	body, readErr := io.ReadAll(file)
	if readErr != nil {
		return readErr
	}
	s.UploadRequests = append(s.UploadRequests, MockRequest{DestBucket: bucketName, Key: key, Body: string(body)})
	return s.FailOn[key]
}

func (s *MockS3Client) UploadedKeys() []string {
	keys := make([]string, 0, len(s.UploadRequests))
	for _, req := range s.UploadRequests {
		keys = append(keys, req.Key)
	}
	return keys
}

type MockRemover struct {
	Removed []string
	FailOn  map[string]error
}

func NewMockRemover() *MockRemover {
	return &MockRemover{
		Removed: make([]string, 0),
		FailOn:  make(map[string]error),
	}
}

func (r *MockRemover) Remove(path string) error {
	if err, ok := r.FailOn[path]; ok {
		return err
	}
	r.Removed = append(r.Removed, path)
	return nil
}
