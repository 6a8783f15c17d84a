package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/you/vaultsvc/domain"
)

// ItemRepositoryImpl implements domain.ItemRepository using GORM
type ItemRepositoryImpl struct {
	db *gorm.DB
}

// DBItem represents the database model for Item
type DBItem struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255"`
	Description string `gorm:"size:2048"`
	UserID      uint   `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBItem) TableName() string {
	return "items"
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) domain.ItemRepository {
	return &ItemRepositoryImpl{db: db}
}

// Create implements domain.ItemRepository
func (r *ItemRepositoryImpl) Create(ctx context.Context, item *domain.Item) error {
	dbItem := &DBItem{
		Name:        item.Name,
		Description: item.Description,
		UserID:      item.UserID,
	}
	if err := r.db.WithContext(ctx).Create(dbItem).Error; err != nil {
		return err
	}
	item.ID = dbItem.ID
	return nil
}

// ListByUser implements domain.ItemRepository
func (r *ItemRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]domain.Item, error) {
	var dbItems []DBItem
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&dbItems).Error; err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(dbItems))
	for _, i := range dbItems {
		items = append(items, domain.Item{
			ID:          i.ID,
			Name:        i.Name,
			Description: i.Description,
			UserID:      i.UserID,
		})
	}
	return items, nil
}

// Update implements domain.ItemRepository
func (r *ItemRepositoryImpl) Update(ctx context.Context, item *domain.Item) (int64, error) {
	result := r.db.WithContext(ctx).Model(&DBItem{}).
		Where("id = ? AND user_id = ?", item.ID, item.UserID).
		Updates(map[string]interface{}{
			"name":        item.Name,
			"description": item.Description,
		})
	return result.RowsAffected, result.Error
}

// Delete implements domain.ItemRepository
func (r *ItemRepositoryImpl) Delete(ctx context.Context, id, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&DBItem{})
	return result.RowsAffected, result.Error
}
