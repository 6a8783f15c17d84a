package services

import (
	"context"
	"fmt"

	"github.com/you/vaultsvc/domain"
)

// AccountServiceImpl implements domain.AccountService
type AccountServiceImpl struct {
	accountRepo         domain.AccountRepository
	imageSvc            *ImageService
	defaultAccountImage string
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo domain.AccountRepository, imageSvc *ImageService, defaultAccountImage string) domain.AccountService {
	return &AccountServiceImpl{
		accountRepo:         accountRepo,
		imageSvc:            imageSvc,
		defaultAccountImage: defaultAccountImage,
	}
}

// Create implements domain.AccountService
func (s *AccountServiceImpl) Create(ctx context.Context, userID uint, site, username, password string, upload *domain.ImageUpload) (uint, error) {
	image, err := s.imageSvc.Apply(ctx, ImageSwap{
		Current:  s.defaultAccountImage,
		Upload:   upload,
		Category: "accounts",
		OwnerID:  userID,
		Sentinel: s.defaultAccountImage,
	})
	if err != nil {
		return 0, err
	}

	account := &domain.Account{
		Site:     site,
		Username: username,
		Password: password,
		Image:    image,
		UserID:   userID,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		s.imageSvc.Cleanup(ctx, image, s.defaultAccountImage)
		return 0, fmt.Errorf("failed to create account: %w", err)
	}

	return account.ID, nil
}

// List implements domain.AccountService
func (s *AccountServiceImpl) List(ctx context.Context, userID uint) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	for i := range accounts {
		if accounts[i].Image == "" {
			accounts[i].Image = s.defaultAccountImage
		}
	}
	return accounts, nil
}

// Update implements domain.AccountService. Zero affected rows means the
// account is missing or belongs to someone else; both answer not found.
func (s *AccountServiceImpl) Update(ctx context.Context, userID, id uint, site, username, password string, upload *domain.ImageUpload, revertImage bool) error {
	current, err := s.accountRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if err == domain.ErrResourceNotFound {
			return domain.ErrResourceNotFound
		}
		return fmt.Errorf("failed to find account: %w", err)
	}

	currentImage := current.Image
	if currentImage == "" {
		currentImage = s.defaultAccountImage
	}

	newImage, err := s.imageSvc.Apply(ctx, ImageSwap{
		Current:         currentImage,
		Upload:          upload,
		RevertToDefault: revertImage,
		Category:        "accounts",
		OwnerID:         userID,
		Sentinel:        s.defaultAccountImage,
	})
	if err != nil {
		return err
	}

	rows, err := s.accountRepo.Update(ctx, &domain.Account{
		ID:       id,
		Site:     site,
		Username: username,
		Password: password,
		Image:    newImage,
		UserID:   userID,
	})
	if err != nil {
		if upload != nil {
			s.imageSvc.Cleanup(ctx, newImage, s.defaultAccountImage)
		}
		return fmt.Errorf("failed to update account: %w", err)
	}
	if rows == 0 {
		if upload != nil {
			s.imageSvc.Cleanup(ctx, newImage, s.defaultAccountImage)
		}
		return domain.ErrResourceNotFound
	}

	return nil
}

// Delete implements domain.AccountService. The stored image blob is removed
// after the row, best-effort.
func (s *AccountServiceImpl) Delete(ctx context.Context, userID, id uint) error {
	current, err := s.accountRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if err == domain.ErrResourceNotFound {
			return domain.ErrResourceNotFound
		}
		return fmt.Errorf("failed to find account: %w", err)
	}

	rows, err := s.accountRepo.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if rows == 0 {
		return domain.ErrResourceNotFound
	}

	s.imageSvc.Cleanup(ctx, current.Image, s.defaultAccountImage)
	return nil
}
