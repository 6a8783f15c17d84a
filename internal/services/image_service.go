package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/you/vaultsvc/domain"
)

// ImageService manages the lifecycle of image references: which blob to
// upload, which previous blob to delete, and how to compensate when a row
// update fails after an upload already succeeded.
type ImageService struct {
	storage domain.BlobStorage
}

// NewImageService creates a new image service
func NewImageService(storage domain.BlobStorage) *ImageService {
	return &ImageService{storage: storage}
}

// ImageSwap describes a requested change to an image reference.
type ImageSwap struct {
	// Current is the reference on record (sentinel, a stored blob URL, or empty).
	Current string
	// Upload, when set, is a new image to store.
	Upload *domain.ImageUpload
	// RevertToDefault requests replacing the reference with the sentinel.
	RevertToDefault bool
	// Category prefixes the storage key, e.g. "accounts" or "profile-pictures".
	Category string
	OwnerID  uint
	// Sentinel is the well-known default URL that must never be deleted.
	Sentinel string
}

// Apply resolves the swap and returns the new reference. An upload failure
// aborts the whole operation; deleting the previous blob is best-effort and
// happens only after the new blob is safely stored.
func (s *ImageService) Apply(ctx context.Context, swap ImageSwap) (string, error) {
	if swap.Upload != nil {
		key := fmt.Sprintf("%s/%d_%s", swap.Category, swap.OwnerID, swap.Upload.Filename)
		url, err := s.storage.Upload(ctx, key, swap.Upload.Data, swap.Upload.ContentType)
		if err != nil {
			return "", fmt.Errorf("failed to upload image: %w", err)
		}
		s.deleteIfStored(ctx, swap.Current, swap.Sentinel)
		return url, nil
	}

	if swap.RevertToDefault {
		s.deleteIfStored(ctx, swap.Current, swap.Sentinel)
		return swap.Sentinel, nil
	}

	return swap.Current, nil
}

// Cleanup removes a freshly uploaded blob after a failed record write.
// Best-effort: a cleanup failure never fails the caller's operation.
func (s *ImageService) Cleanup(ctx context.Context, ref, sentinel string) {
	s.deleteIfStored(ctx, ref, sentinel)
}

func (s *ImageService) deleteIfStored(ctx context.Context, ref, sentinel string) {
	if ref == "" || ref == sentinel {
		return
	}
	key, ok := StorageKeyFromURL(ref)
	if !ok {
		// Not a blob-store URL; nothing of ours to delete.
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		log.Printf("failed to delete stored image %s: %v", key, err)
	}
}

// StorageKeyFromURL derives the storage key from a public blob URL. The URL
// is split on "/" and the segment literally equal to "object" located; the
// key is everything after the access-scope and bucket segments that follow
// it. URLs without the marker are not recognizably blob-store-shaped and
// yield ok=false.
func StorageKeyFromURL(url string) (string, bool) {
	parts := strings.Split(url, "/")
	for i, part := range parts {
		if part == "object" {
			if i+3 < len(parts) {
				return strings.Join(parts[i+3:], "/"), true
			}
			return "", false
		}
	}
	return "", false
}
