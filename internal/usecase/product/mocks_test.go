package product

import (
	"context"
	"sort"
	"strings"

	domainProduct "product-inventory-api/internal/domain/product"
	appErrors "product-inventory-api/pkg/errors"
)

// mockProductRepository is an in-memory stand-in for the postgres repository.
// Reads only see active products, matching the real implementation.
type mockProductRepository struct {
	products map[int64]*domainProduct.Product
	nextID   int64
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{
		products: make(map[int64]*domainProduct.Product),
		nextID:   1,
	}
}

func (m *mockProductRepository) Create(_ context.Context, product *domainProduct.Product) error {
	product.ID = m.nextID
	m.nextID++
	product.IsActive = true

	copied := *product
	m.products[product.ID] = &copied

	return nil
}

func (m *mockProductRepository) GetByID(_ context.Context, productID int64) (*domainProduct.Product, error) {
	product, ok := m.products[productID]
	if !ok || !product.IsActive {
		return nil, appErrors.ErrProductNotFound
	}

	copied := *product
	return &copied, nil
}

func (m *mockProductRepository) GetAll(_ context.Context) ([]*domainProduct.Product, error) {
	return m.filter(func(*domainProduct.Product) bool { return true }), nil
}

func (m *mockProductRepository) GetByCategory(_ context.Context, category string) ([]*domainProduct.Product, error) {
	return m.filter(func(p *domainProduct.Product) bool {
		return strings.EqualFold(p.Category, category)
	}), nil
}

func (m *mockProductRepository) SearchByName(_ context.Context, searchTerm string) ([]*domainProduct.Product, error) {
	return m.filter(func(p *domainProduct.Product) bool {
		return strings.Contains(strings.ToLower(p.Description), strings.ToLower(searchTerm))
	}), nil
}

func (m *mockProductRepository) GetByOwner(_ context.Context, userID int64) ([]*domainProduct.Product, error) {
	return m.filter(func(p *domainProduct.Product) bool {
		return p.CreatedBy == userID
	}), nil
}

func (m *mockProductRepository) Update(_ context.Context, product *domainProduct.Product) error {
	existing, ok := m.products[product.ID]
	if !ok || !existing.IsActive {
		return appErrors.ErrProductNotFound
	}

	existing.Description = product.Description
	existing.Category = product.Category
	existing.Price = product.Price
	existing.Stock = product.Stock

	return nil
}

func (m *mockProductRepository) SoftDelete(_ context.Context, productID int64) error {
	existing, ok := m.products[productID]
	if !ok || !existing.IsActive {
		return appErrors.ErrProductNotFound
	}

	existing.IsActive = false
	return nil
}

func (m *mockProductRepository) CountActive(_ context.Context) (int64, error) {
	return int64(len(m.filter(func(*domainProduct.Product) bool { return true }))), nil
}

func (m *mockProductRepository) CountByCategory(_ context.Context) ([]domainProduct.CategoryCount, error) {
	byCategory := make(map[string]int64)
	for _, p := range m.filter(func(*domainProduct.Product) bool { return true }) {
		byCategory[p.Category]++
	}

	counts := make([]domainProduct.CategoryCount, 0, len(byCategory))
	for category, count := range byCategory {
		counts = append(counts, domainProduct.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Category < counts[j].Category })

	return counts, nil
}

func (m *mockProductRepository) filter(keep func(*domainProduct.Product) bool) []*domainProduct.Product {
	var result []*domainProduct.Product
	for _, p := range m.products {
		if p.IsActive && keep(p) {
			copied := *p
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result
}
