package postgres

import (
	"fmt"

	"product-inventory-api/internal/database"
	domainProduct "product-inventory-api/internal/domain/product"
	domainUser "product-inventory-api/internal/domain/user"
)

// AutoMigrate creates or updates the schema, including the unique username
// index the registration flow depends on.
func AutoMigrate(db *database.Database) error {
	if err := db.DB.AutoMigrate(&domainUser.User{}, &domainProduct.Product{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
