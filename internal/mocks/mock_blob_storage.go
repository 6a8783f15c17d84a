package mocks

import (
	"context"

	"github.com/you/vaultsvc/domain"
)

// MockBlobStorage implements domain.BlobStorage interface for testing
type MockBlobStorage struct {
	UploadFunc func(ctx context.Context, key string, data []byte, contentType string) (string, error)
	DeleteFunc func(ctx context.Context, key string) error

	// Uploaded and Deleted collect keys when the corresponding func is nil
	Uploaded []string
	Deleted  []string
}

// NewMockBlobStorage creates a new MockBlobStorage with default behaviors
func NewMockBlobStorage() *MockBlobStorage {
	return &MockBlobStorage{}
}

// Upload stores a blob and returns its public URL
func (m *MockBlobStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, data, contentType)
	}
	m.Uploaded = append(m.Uploaded, key)
	return "https://blob.test/object/public/test-bucket/" + key, nil
}

// Delete removes a blob
func (m *MockBlobStorage) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.Deleted = append(m.Deleted, key)
	return nil
}

// Ensure MockBlobStorage implements the interface
var _ domain.BlobStorage = (*MockBlobStorage)(nil)
