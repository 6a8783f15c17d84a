package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/you/vaultsvc/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint    `gorm:"primaryKey"`
	Email        string  `gorm:"uniqueIndex;size:255"`
	PasswordHash string  `gorm:"column:password"`
	FirstName    string  `gorm:"column:firstname;size:128"`
	MiddleName   string  `gorm:"column:middlename;size:128"`
	LastName     string  `gorm:"column:lastname;size:128"`
	ProfileImage *string `gorm:"column:profilepicture"`
	SessionToken *string `gorm:"column:token;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByIDAndToken implements domain.UserRepository. A logged-out user (NULL
// token) never matches, so a cleared token behaves as revoked.
func (r *UserRepositoryImpl) FindByIDAndToken(ctx context.Context, id uint, token string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ? AND token = ?", id, token).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// UpdateProfile implements domain.UserRepository
func (r *UserRepositoryImpl) UpdateProfile(ctx context.Context, id uint, firstName, middleName, lastName, email string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Updates(map[string]interface{}{
		"firstname":  firstName,
		"middlename": middleName,
		"lastname":   lastName,
		"email":      email,
	}).Error
}

// UpdatePasswordByID implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePasswordByID(ctx context.Context, id uint, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Update("password", passwordHash).Error
}

// UpdatePasswordByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("email = ?", email).Update("password", passwordHash).Error
}

// UpdateSessionToken implements domain.UserRepository
func (r *UserRepositoryImpl) UpdateSessionToken(ctx context.Context, id uint, token string) error {
	var value *string
	if token != "" {
		value = &token
	}
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Update("token", value).Error
}

// ClearSessionTokenByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) ClearSessionTokenByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("email = ?", email).Update("token", nil).Error
}

// UpdateProfileImage implements domain.UserRepository
func (r *UserRepositoryImpl) UpdateProfileImage(ctx context.Context, id uint, image string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Update("profilepicture", image).Error
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	dbUser := &DBUser{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		MiddleName:   user.MiddleName,
		LastName:     user.LastName,
	}
	if user.ProfileImage != "" {
		dbUser.ProfileImage = &user.ProfileImage
	}
	if user.SessionToken != "" {
		dbUser.SessionToken = &user.SessionToken
	}
	return dbUser
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	user := &domain.User{
		ID:           dbUser.ID,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		FirstName:    dbUser.FirstName,
		MiddleName:   dbUser.MiddleName,
		LastName:     dbUser.LastName,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
	if dbUser.ProfileImage != nil {
		user.ProfileImage = *dbUser.ProfileImage
	}
	if dbUser.SessionToken != nil {
		user.SessionToken = *dbUser.SessionToken
	}
	return user
}
