package product

import (
	"time"
)

// Product is the catalog entity. CreatedBy references the registering user
// and backs the ownership check on mutations. Deletion is a soft delete via
// IsActive; every read path filters on it.
type Product struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Description string    `json:"description" gorm:"type:varchar(500);not null"`
	Category    string    `json:"category" gorm:"type:varchar(100);not null;index"`
	Price       float64   `json:"price" gorm:"type:numeric(12,2);not null"`
	Stock       int       `json:"stock" gorm:"not null"`
	CreatedBy   int64     `json:"created_by" gorm:"not null;index"`
	IsActive    bool      `json:"is_active" gorm:"default:true;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null"`
}

func (Product) TableName() string {
	return "products"
}
