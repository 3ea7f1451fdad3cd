package postgres

import (
	"context"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/domain/repository"
	"nearbuy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// CreateProduct persists a new product under its owning store.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStoreNotFound
		}

		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindProductsByStore retrieves a store's inventory ordered by name.
func (repo *productRepository) FindProductsByStore(ctx context.Context, storeID int64) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("name ASC").
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by store")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// UpdateProduct persists changes to an existing product.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("name", "sku", "price", "category", "stock", "supplier").
		Updates(productM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteProduct removes a product by its ID.
func (repo *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteProductsByStore removes every product owned by a store.
func (repo *productRepository) DeleteProductsByStore(ctx context.Context, storeID int64) error {
	err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Delete(&model.ProductModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete products by store")
	}

	return nil
}

// CountProducts returns the total number of products in the catalog.
func (repo *productRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// CountProductsByCategory returns the per-category product breakdown.
func (repo *productRepository) CountProductsByCategory(ctx context.Context) ([]repository.CategoryCount, error) {
	var counts []repository.CategoryCount
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("COALESCE(category, ?) AS category, COUNT(*) AS count", entity.UncategorizedCategory).
		Group("COALESCE(category, 'Uncategorized')").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products by category")
	}

	return counts, nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	category := entity.UncategorizedCategory
	if data.Category != nil {
		category = *data.Category
	}

	return &entity.Product{
		ID:       data.ID,
		StoreID:  data.StoreID,
		Name:     data.Name,
		SKU:      data.SKU,
		Price:    data.Price,
		Category: category,
		Stock:    data.Stock,
		Supplier: data.Supplier,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	var category *string
	if data.Category != "" {
		c := data.Category
		category = &c
	}

	return &model.ProductModel{
		ID:       data.ID,
		StoreID:  data.StoreID,
		Name:     data.Name,
		SKU:      data.SKU,
		Price:    data.Price,
		Category: category,
		Stock:    data.Stock,
		Supplier: data.Supplier,
	}
}
