package product

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	domainProduct "product-inventory-api/internal/domain/product"
	"product-inventory-api/internal/logger"
	appErrors "product-inventory-api/pkg/errors"
)

// Service implements product use cases.
type Service struct {
	productRepo domainProduct.Repository
}

func NewService(productRepo domainProduct.Repository) *Service {
	return &Service{productRepo: productRepo}
}

func (s *Service) CreateProduct(ctx context.Context, userID int64, req *CreateProductRequest) (*ProductResponse, error) {
	if err := validateProductData(req.Description, req.Price, req.Stock); err != nil {
		return nil, err
	}

	product := &domainProduct.Product{
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Price:       req.Price,
		Stock:       req.Stock,
		CreatedBy:   userID,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	logger.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.Int64("user_id", userID),
	)

	return ToProductResponse(product), nil
}

func (s *Service) GetProduct(ctx context.Context, productID int64) (*ProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

func (s *Service) ListProducts(ctx context.Context) ([]*ProductResponse, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return ToProductResponses(products), nil
}

// ListByCategory is a case-insensitive exact match on the category column.
// An empty result is not an error.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]*ProductResponse, error) {
	if strings.TrimSpace(category) == "" {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "category must not be empty", nil)
	}

	products, err := s.productRepo.GetByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	return ToProductResponses(products), nil
}

// SearchByName is a case-insensitive substring match on the description.
func (s *Service) SearchByName(ctx context.Context, searchTerm string) ([]*ProductResponse, error) {
	if strings.TrimSpace(searchTerm) == "" {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "search term must not be empty", nil)
	}

	products, err := s.productRepo.SearchByName(ctx, searchTerm)
	if err != nil {
		return nil, err
	}

	return ToProductResponses(products), nil
}

func (s *Service) ListByOwner(ctx context.Context, userID int64) ([]*ProductResponse, error) {
	products, err := s.productRepo.GetByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	return ToProductResponses(products), nil
}

// UpdateProduct rejects mutations of products created by another user.
func (s *Service) UpdateProduct(ctx context.Context, productID, userID int64, req *UpdateProductRequest) (*ProductResponse, error) {
	existing, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if existing.CreatedBy != userID {
		return nil, appErrors.ErrNotProductOwner
	}

	if err := validateProductData(req.Description, req.Price, req.Stock); err != nil {
		return nil, err
	}

	existing.Description = strings.TrimSpace(req.Description)
	existing.Category = strings.TrimSpace(req.Category)
	existing.Price = req.Price
	existing.Stock = req.Stock

	if err := s.productRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	logger.Info("Product updated",
		zap.Int64("product_id", productID),
		zap.Int64("user_id", userID),
	)

	return ToProductResponse(existing), nil
}

// DeleteProduct soft deletes; the product disappears from every read path.
func (s *Service) DeleteProduct(ctx context.Context, productID, userID int64) error {
	existing, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	if existing.CreatedBy != userID {
		return appErrors.ErrNotProductOwner
	}

	if err := s.productRepo.SoftDelete(ctx, productID); err != nil {
		return err
	}

	logger.Info("Product deleted",
		zap.Int64("product_id", productID),
		zap.Int64("user_id", userID),
	)

	return nil
}

func (s *Service) GetStatistics(ctx context.Context) (*StatisticsResponse, error) {
	total, err := s.productRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	categoryCounts, err := s.productRepo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make([]CategoryCount, 0, len(categoryCounts))
	for _, cc := range categoryCounts {
		byCategory = append(byCategory, CategoryCount{Category: cc.Category, Count: cc.Count})
	}

	return &StatisticsResponse{
		TotalProducts: total,
		ByCategory:    byCategory,
		Timestamp:     time.Now().UTC(),
	}, nil
}
