package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry as served by the backend
type Product struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
}

// User is the public identity returned on register, login and /api/me
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// OrderItem is one cart line submitted at checkout
type OrderItem struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
	Quantity int             `json:"quantity"`
}

type OrderRequest struct {
	Items       []OrderItem     `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type OrderCreated struct {
	Message   string `json:"message"`
	OrderID   uint   `json:"orderId"`
	Reference string `json:"reference"`
}

// OrderRow is one order joined with one of its items
type OrderRow struct {
	ID          uint                `json:"id"`
	Reference   string              `json:"reference"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	ProductID   *uint               `json:"product_id"`
	Quantity    *int                `json:"quantity"`
	Price       decimal.NullDecimal `json:"price"`
	ProductName *string             `json:"product_name"`
}

// Review is a product review joined with its author's username
type Review struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"product_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}

type ReviewCreated struct {
	Message  string `json:"message"`
	ReviewID uint   `json:"reviewId"`
}
