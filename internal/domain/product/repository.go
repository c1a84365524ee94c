package product

import (
	"context"
)

// Repository defines the interface for product repository operations.
// All reads return active products only.
type Repository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, productID int64) (*Product, error)
	GetAll(ctx context.Context) ([]*Product, error)
	GetByCategory(ctx context.Context, category string) ([]*Product, error)
	SearchByName(ctx context.Context, searchTerm string) ([]*Product, error)
	GetByOwner(ctx context.Context, userID int64) ([]*Product, error)
	Update(ctx context.Context, product *Product) error
	SoftDelete(ctx context.Context, productID int64) error
	CountActive(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
}

// CategoryCount is one row of the statistics category breakdown.
type CategoryCount struct {
	Category string
	Count    int64
}
