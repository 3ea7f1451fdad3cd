package postgres

import (
	"context"

	"nearbuy/internal/domain/repository"
	"nearbuy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// UserExists reports whether a user with the given ID exists.
func (repo *userRepository) UserExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check user existence")
	}

	return count > 0, nil
}

// DeleteUser removes a user by its ID.
func (repo *userRepository) DeleteUser(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// CountUsers returns the total number of registered users.
func (repo *userRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// ListUserSummaries retrieves all users with their favorite counts.
func (repo *userRepository) ListUserSummaries(ctx context.Context) ([]repository.UserSummary, error) {
	var summaries []repository.UserSummary
	err := repo.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.name, users.email, COUNT(favorites.id) AS favorites_count").
		Joins("LEFT JOIN favorites ON favorites.user_id = users.id").
		Group("users.id, users.name, users.email").
		Order("users.name ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user summaries")
	}

	return summaries, nil
}
