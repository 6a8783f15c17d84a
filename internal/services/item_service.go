package services

import (
	"context"
	"fmt"

	"github.com/you/vaultsvc/domain"
)

// ItemServiceImpl implements domain.ItemService
type ItemServiceImpl struct {
	itemRepo domain.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo domain.ItemRepository) domain.ItemService {
	return &ItemServiceImpl{itemRepo: itemRepo}
}

// Create implements domain.ItemService
func (s *ItemServiceImpl) Create(ctx context.Context, userID uint, name, description string) (uint, error) {
	item := &domain.Item{
		Name:        name,
		Description: description,
		UserID:      userID,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return 0, fmt.Errorf("failed to create item: %w", err)
	}
	return item.ID, nil
}

// List implements domain.ItemService
func (s *ItemServiceImpl) List(ctx context.Context, userID uint) ([]domain.Item, error) {
	items, err := s.itemRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// Update implements domain.ItemService
func (s *ItemServiceImpl) Update(ctx context.Context, userID, id uint, name, description string) error {
	rows, err := s.itemRepo.Update(ctx, &domain.Item{
		ID:          id,
		Name:        name,
		Description: description,
		UserID:      userID,
	})
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if rows == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

// Delete implements domain.ItemService
func (s *ItemServiceImpl) Delete(ctx context.Context, userID, id uint) error {
	rows, err := s.itemRepo.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if rows == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}
