package handler

import (
	"context"
	"sort"
	"strings"

	domainProduct "product-inventory-api/internal/domain/product"
	domainUser "product-inventory-api/internal/domain/user"
	appErrors "product-inventory-api/pkg/errors"
)

type memUserRepository struct {
	users  map[string]*domainUser.User
	nextID int64
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{users: make(map[string]*domainUser.User), nextID: 1}
}

func (m *memUserRepository) Create(_ context.Context, user *domainUser.User) error {
	if existing, ok := m.users[user.Username]; ok && existing.IsActive {
		return appErrors.ErrUserAlreadyExists
	}

	user.ID = m.nextID
	m.nextID++
	user.IsActive = true
	m.users[user.Username] = user

	return nil
}

func (m *memUserRepository) GetByUsername(_ context.Context, username string) (*domainUser.User, error) {
	user, ok := m.users[username]
	if !ok || !user.IsActive {
		return nil, appErrors.ErrUserNotFound
	}
	return user, nil
}

func (m *memUserRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	user, ok := m.users[username]
	return ok && user.IsActive, nil
}

type memProductRepository struct {
	products map[int64]*domainProduct.Product
	nextID   int64
}

func newMemProductRepository() *memProductRepository {
	return &memProductRepository{products: make(map[int64]*domainProduct.Product), nextID: 1}
}

func (m *memProductRepository) Create(_ context.Context, product *domainProduct.Product) error {
	product.ID = m.nextID
	m.nextID++
	product.IsActive = true

	copied := *product
	m.products[product.ID] = &copied
	return nil
}

func (m *memProductRepository) GetByID(_ context.Context, productID int64) (*domainProduct.Product, error) {
	product, ok := m.products[productID]
	if !ok || !product.IsActive {
		return nil, appErrors.ErrProductNotFound
	}

	copied := *product
	return &copied, nil
}

func (m *memProductRepository) GetAll(_ context.Context) ([]*domainProduct.Product, error) {
	return m.active(func(*domainProduct.Product) bool { return true }), nil
}

func (m *memProductRepository) GetByCategory(_ context.Context, category string) ([]*domainProduct.Product, error) {
	return m.active(func(p *domainProduct.Product) bool {
		return strings.EqualFold(p.Category, category)
	}), nil
}

func (m *memProductRepository) SearchByName(_ context.Context, searchTerm string) ([]*domainProduct.Product, error) {
	return m.active(func(p *domainProduct.Product) bool {
		return strings.Contains(strings.ToLower(p.Description), strings.ToLower(searchTerm))
	}), nil
}

func (m *memProductRepository) GetByOwner(_ context.Context, userID int64) ([]*domainProduct.Product, error) {
	return m.active(func(p *domainProduct.Product) bool { return p.CreatedBy == userID }), nil
}

func (m *memProductRepository) Update(_ context.Context, product *domainProduct.Product) error {
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

func (m *memProductRepository) SoftDelete(_ context.Context, productID int64) error {
	existing, ok := m.products[productID]
	if !ok || !existing.IsActive {
		return appErrors.ErrProductNotFound
	}

	existing.IsActive = false
	return nil
}

func (m *memProductRepository) CountActive(_ context.Context) (int64, error) {
	return int64(len(m.active(func(*domainProduct.Product) bool { return true }))), nil
}

func (m *memProductRepository) CountByCategory(_ context.Context) ([]domainProduct.CategoryCount, error) {
	byCategory := make(map[string]int64)
	for _, p := range m.active(func(*domainProduct.Product) bool { return true }) {
		byCategory[p.Category]++
	}

	counts := make([]domainProduct.CategoryCount, 0, len(byCategory))
	for category, count := range byCategory {
		counts = append(counts, domainProduct.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Category < counts[j].Category })
	return counts, nil
}

func (m *memProductRepository) active(keep func(*domainProduct.Product) bool) []*domainProduct.Product {
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
