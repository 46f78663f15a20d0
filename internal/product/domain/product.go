package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptySearch     = errors.New("search query is required")
)

// Product represents a catalog entry
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category" gorm:"index"`
	Stock       int             `json:"stock" gorm:"not null;default:0"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// IsAvailable checks if product is in stock
func (p *Product) IsAvailable() bool {
	return p.Stock > 0
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(ctx context.Context, products ...*Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindByIDs(ctx context.Context, ids []uint) ([]Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	FindByCategory(ctx context.Context, category string) ([]Product, error)
	Search(ctx context.Context, query string) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	DecrementStock(ctx context.Context, id uint, quantity int) error
}
