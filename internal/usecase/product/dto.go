package product

import (
	"time"

	domainProduct "product-inventory-api/internal/domain/product"
)

type CreateProductRequest struct {
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// UpdateProductRequest carries the same fields and rules as create; the
// validation is applied identically on both paths.
type UpdateProductRequest struct {
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

type ProductResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CreatedBy   int64     `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type StatisticsResponse struct {
	TotalProducts int64           `json:"totalProducts"`
	ByCategory    []CategoryCount `json:"byCategory"`
	Timestamp     time.Time       `json:"timestamp"`
}

func ToProductResponse(p *domainProduct.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToProductResponses(products []*domainProduct.Product) []*ProductResponse {
	responses := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(p))
	}
	return responses
}
