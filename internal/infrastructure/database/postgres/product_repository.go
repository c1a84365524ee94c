package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"product-inventory-api/internal/database"
	domainProduct "product-inventory-api/internal/domain/product"
	appErrors "product-inventory-api/pkg/errors"
)

type ProductRepository struct {
	db *database.Database
}

func NewProductRepository(db *database.Database) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *domainProduct.Product) error {
	product.IsActive = true
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, productID int64) (*domainProduct.Product, error) {
	var product domainProduct.Product
	err := r.db.DB.WithContext(ctx).
		Where("id = ? AND is_active = ?", productID, true).
		First(&product).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*domainProduct.Product, error) {
	var products []*domainProduct.Product
	err := r.db.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&products).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) GetByCategory(ctx context.Context, category string) ([]*domainProduct.Product, error) {
	var products []*domainProduct.Product
	err := r.db.DB.WithContext(ctx).
		Where("LOWER(category) = LOWER(?) AND is_active = ?", category, true).
		Order("id").
		Find(&products).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) SearchByName(ctx context.Context, searchTerm string) ([]*domainProduct.Product, error) {
	var products []*domainProduct.Product
	err := r.db.DB.WithContext(ctx).
		Where("description ILIKE ? AND is_active = ?", "%"+searchTerm+"%", true).
		Order("id").
		Find(&products).Error

	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) GetByOwner(ctx context.Context, userID int64) ([]*domainProduct.Product, error) {
	var products []*domainProduct.Product
	err := r.db.DB.WithContext(ctx).
		Where("created_by = ? AND is_active = ?", userID, true).
		Order("id").
		Find(&products).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list products by owner: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domainProduct.Product) error {
	product.UpdatedAt = time.Now()
	result := r.db.DB.WithContext(ctx).
		Model(&domainProduct.Product{}).
		Where("id = ? AND is_active = ?", product.ID, true).
		Updates(map[string]interface{}{
			"description": product.Description,
			"category":    product.Category,
			"price":       product.Price,
			"stock":       product.Stock,
			"updated_at":  product.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) SoftDelete(ctx context.Context, productID int64) error {
	result := r.db.DB.WithContext(ctx).
		Model(&domainProduct.Product{}).
		Where("id = ? AND is_active = ?", productID, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&domainProduct.Product{}).
		Where("is_active = ?", true).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}

func (r *ProductRepository) CountByCategory(ctx context.Context) ([]domainProduct.CategoryCount, error) {
	var counts []domainProduct.CategoryCount
	err := r.db.DB.WithContext(ctx).
		Model(&domainProduct.Product{}).
		Select("category, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("category").
		Order("category").
		Scan(&counts).Error

	if err != nil {
		return nil, fmt.Errorf("failed to count products by category: %w", err)
	}

	return counts, nil
}
