package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrProductNotFound = errors.New("product not found")
)

// Rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating left by a user on a product
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Review) TableName() string {
	return "reviews"
}

// ReviewView is a review joined with its author's username
type ReviewView struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"product_id"`
	UserID    uint      `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}

// ReviewRepository defines the contract for review data access
type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	// ListByProduct returns the reviews of a product, newest first
	ListByProduct(ctx context.Context, productID uint) ([]ReviewView, error)
}
