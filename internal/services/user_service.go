package services

import (
	"context"
	"fmt"

	"github.com/you/vaultsvc/domain"
)

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo            domain.UserRepository
	imageSvc            *ImageService
	defaultProfileImage string
}

// NewUserService creates a new user service
func NewUserService(userRepo domain.UserRepository, imageSvc *ImageService, defaultProfileImage string) domain.UserService {
	return &UserServiceImpl{
		userRepo:            userRepo,
		imageSvc:            imageSvc,
		defaultProfileImage: defaultProfileImage,
	}
}

// GetProfile implements domain.UserService
func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user.ProfileImage == "" {
		user.ProfileImage = s.defaultProfileImage
	}
	return user, nil
}

// UpdateProfile implements domain.UserService
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint, firstName, middleName, lastName, email string) error {
	if err := s.userRepo.UpdateProfile(ctx, userID, firstName, middleName, lastName, email); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// GetProfileImage implements domain.UserService
func (s *UserServiceImpl) GetProfileImage(ctx context.Context, userID uint) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if user.ProfileImage == "" {
		return s.defaultProfileImage, nil
	}
	return user.ProfileImage, nil
}

// UpdateProfileImage implements domain.UserService. If the row update fails
// after the new blob is stored, the blob is removed again best-effort.
func (s *UserServiceImpl) UpdateProfileImage(ctx context.Context, userID uint, upload *domain.ImageUpload) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	newRef, err := s.imageSvc.Apply(ctx, ImageSwap{
		Current:  user.ProfileImage,
		Upload:   upload,
		Category: "profile-pictures",
		OwnerID:  userID,
		Sentinel: s.defaultProfileImage,
	})
	if err != nil {
		return "", err
	}

	if err := s.userRepo.UpdateProfileImage(ctx, userID, newRef); err != nil {
		s.imageSvc.Cleanup(ctx, newRef, s.defaultProfileImage)
		return "", fmt.Errorf("failed to save profile image: %w", err)
	}

	return newRef, nil
}
