package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyOrder     = errors.New("order must contain at least one item")
	ErrInvalidItem    = errors.New("invalid order item")
	ErrUnknownProduct = errors.New("product not found")
	ErrTotalMismatch  = errors.New("total amount does not match items")
)

// Order statuses
const (
	StatusPending = "pending"
)

// Order is a placed checkout
type Order struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Reference   string          `json:"reference" gorm:"type:uuid;uniqueIndex;not null"`
	UserID      uint            `json:"user_id" gorm:"not null;index"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status      string          `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order at the price the customer saw
type OrderItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	OrderID   uint            `json:"order_id" gorm:"not null;index"`
	ProductID uint            `json:"product_id" gorm:"not null"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderRow is one row of the order history: an order joined with one of its
// items and the product name. Orders without items yield one row with null
// item columns.
type OrderRow struct {
	ID          uint                `json:"id"`
	Reference   string              `json:"reference"`
	UserID      uint                `json:"user_id"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	ProductID   *uint               `json:"product_id"`
	Quantity    *int                `json:"quantity"`
	Price       decimal.NullDecimal `json:"price"`
	ProductName *string             `json:"product_name"`
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	// Create stores the order and its items atomically
	Create(ctx context.Context, order *Order) error
	ListRowsByUser(ctx context.Context, userID uint) ([]OrderRow, error)
}
