package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/you/vaultsvc/domain"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account
type DBAccount struct {
	ID       uint   `gorm:"primaryKey"`
	Site     string `gorm:"size:255"`
	Username string `gorm:"size:255"`
	Password string `gorm:"size:255"`
	Image    string `gorm:"size:1024"`
	UserID   uint   `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	dbAccount := &DBAccount{
		Site:     account.Site,
		Username: account.Username,
		Password: account.Password,
		Image:    account.Image,
		UserID:   account.UserID,
	}
	if err := r.db.WithContext(ctx).Create(dbAccount).Error; err != nil {
		return err
	}
	account.ID = dbAccount.ID
	return nil
}

// ListByUser implements domain.AccountRepository
func (r *AccountRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]domain.Account, error) {
	var dbAccounts []DBAccount
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&dbAccounts).Error; err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(dbAccounts))
	for _, a := range dbAccounts {
		accounts = append(accounts, domain.Account{
			ID:       a.ID,
			Site:     a.Site,
			Username: a.Username,
			Password: a.Password,
			Image:    a.Image,
			UserID:   a.UserID,
		})
	}
	return accounts, nil
}

// FindByIDAndUser implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByIDAndUser(ctx context.Context, id, userID uint) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&dbAccount).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrResourceNotFound
		}
		return nil, err
	}
	return &domain.Account{
		ID:       dbAccount.ID,
		Site:     dbAccount.Site,
		Username: dbAccount.Username,
		Password: dbAccount.Password,
		Image:    dbAccount.Image,
		UserID:   dbAccount.UserID,
	}, nil
}

// Update implements domain.AccountRepository. The ownership filter is part
// of the statement, so an update on someone else's row affects zero rows.
func (r *AccountRepositoryImpl) Update(ctx context.Context, account *domain.Account) (int64, error) {
	result := r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ? AND user_id = ?", account.ID, account.UserID).
		Updates(map[string]interface{}{
			"site":     account.Site,
			"username": account.Username,
			"password": account.Password,
			"image":    account.Image,
		})
	return result.RowsAffected, result.Error
}

// Delete implements domain.AccountRepository
func (r *AccountRepositoryImpl) Delete(ctx context.Context, id, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&DBAccount{})
	return result.RowsAffected, result.Error
}
