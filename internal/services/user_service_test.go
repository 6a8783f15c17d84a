package services

import (
	"context"
	"errors"
	"testing"

	"github.com/you/vaultsvc/domain"
	"github.com/you/vaultsvc/internal/mocks"
)

func TestUserService_GetProfile_FillsDefaultImage(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return &domain.User{ID: id, Email: "user@example.com", ProfileImage: ""}, nil
	}

	svc := NewUserService(userRepo, NewImageService(mocks.NewMockBlobStorage()), testDefaultProfileImage)
	user, err := svc.GetProfile(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}
	if user.ProfileImage != testDefaultProfileImage {
		t.Errorf("expected the default image, got %q", user.ProfileImage)
	}
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserRepository(), NewImageService(mocks.NewMockBlobStorage()), testDefaultProfileImage)

	if _, err := svc.GetProfile(context.Background(), 3); err != domain.ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateProfileImage(t *testing.T) {
	t.Run("replaces the old blob and saves the new reference", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		storage := mocks.NewMockBlobStorage()
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return &domain.User{
				ID:           id,
				ProfileImage: "https://blob.test/object/public/test-bucket/profile-pictures/3_old.png",
			}, nil
		}
		var savedRef string
		userRepo.UpdateProfileImageFunc = func(ctx context.Context, id uint, image string) error {
			savedRef = image
			return nil
		}

		svc := NewUserService(userRepo, NewImageService(storage), testDefaultProfileImage)
		url, err := svc.UpdateProfileImage(context.Background(), 3,
			&domain.ImageUpload{Filename: "new.png", ContentType: "image/png", Data: []byte("png")})
		if err != nil {
			t.Fatalf("UpdateProfileImage returned error: %v", err)
		}
		if url != savedRef {
			t.Errorf("returned %q but saved %q", url, savedRef)
		}
		if len(storage.Uploaded) != 1 || storage.Uploaded[0] != "profile-pictures/3_new.png" {
			t.Errorf("expected upload of profile-pictures/3_new.png, got %v", storage.Uploaded)
		}
		if len(storage.Deleted) != 1 || storage.Deleted[0] != "profile-pictures/3_old.png" {
			t.Errorf("expected deletion of the old blob, got %v", storage.Deleted)
		}
	})

	t.Run("row update failure cleans up the fresh blob", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		storage := mocks.NewMockBlobStorage()
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return &domain.User{ID: id, ProfileImage: testDefaultProfileImage}, nil
		}
		userRepo.UpdateProfileImageFunc = func(ctx context.Context, id uint, image string) error {
			return errors.New("connection reset")
		}

		svc := NewUserService(userRepo, NewImageService(storage), testDefaultProfileImage)
		_, err := svc.UpdateProfileImage(context.Background(), 3,
			&domain.ImageUpload{Filename: "new.png", ContentType: "image/png", Data: []byte("png")})
		if err == nil {
			t.Fatal("expected an error")
		}
		if len(storage.Deleted) != 1 || storage.Deleted[0] != "profile-pictures/3_new.png" {
			t.Errorf("expected the fresh blob cleaned up, got %v", storage.Deleted)
		}
	})
}

func TestUserService_GetProfileImage(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return &domain.User{ID: id, ProfileImage: ""}, nil
	}

	svc := NewUserService(userRepo, NewImageService(mocks.NewMockBlobStorage()), testDefaultProfileImage)
	url, err := svc.GetProfileImage(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetProfileImage returned error: %v", err)
	}
	if url != testDefaultProfileImage {
		t.Errorf("expected the default image, got %q", url)
	}
}
