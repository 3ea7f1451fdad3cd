package postgres

import (
	"context"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/domain/repository"
	"nearbuy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the domain.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// CreateFavorite persists a new (user, product) edge. The composite unique
// index turns a concurrent duplicate insert into ErrDuplicateFavorite.
func (repo *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// DeleteFavorite removes the (user, product) edge.
func (repo *favoriteRepository) DeleteFavorite(ctx context.Context, userID, productID int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// IsFavorite reports whether the (user, product) edge exists.
func (repo *favoriteRepository) IsFavorite(ctx context.Context, userID, productID int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return count > 0, nil
}

// ListFavoriteProductIDs retrieves all product IDs the user has favorited.
func (repo *favoriteRepository) ListFavoriteProductIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ?", userID).
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorite product IDs")
	}

	return ids, nil
}

// DeleteFavoritesByUser removes all favorites owned by a user.
func (repo *favoriteRepository) DeleteFavoritesByUser(ctx context.Context, userID int64) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.FavoriteModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete favorites by user")
	}

	return nil
}

// DeleteFavoritesByStore removes all favorites referencing products of a store.
func (repo *favoriteRepository) DeleteFavoritesByStore(ctx context.Context, storeID int64) error {
	subQuery := repo.db.
		Model(&model.ProductModel{}).
		Select("id").
		Where("store_id = ?", storeID)

	err := repo.db.WithContext(ctx).
		Where("product_id IN (?)", subQuery).
		Delete(&model.FavoriteModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete favorites by store")
	}

	return nil
}

// DeleteFavoritesByProduct removes all favorites referencing a product.
func (repo *favoriteRepository) DeleteFavoritesByProduct(ctx context.Context, productID int64) error {
	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.FavoriteModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete favorites by product")
	}

	return nil
}

func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	return &model.FavoriteModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		CreatedAt: data.CreatedAt,
	}
}
