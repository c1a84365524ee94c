package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"product-inventory-api/internal/database"
	domainUser "product-inventory-api/internal/domain/user"
	appErrors "product-inventory-api/pkg/errors"
)

type UserRepository struct {
	db *database.Database
}

func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new active user. The unique index on username is the
// authoritative guard against concurrent duplicate registrations; a
// duplicate key violation maps to ErrUserAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *domainUser.User) error {
	user.IsActive = true
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Create(user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return appErrors.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domainUser.User, error) {
	var user domainUser.User
	err := r.db.DB.WithContext(ctx).
		Where("username = ? AND is_active = ?", username, true).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&domainUser.User{}).
		Where("username = ? AND is_active = ?", username, true).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return count > 0, nil
}
