package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/storefront/internal/review/domain"
)

// GormReviewRepository implements ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Review{})
}

func (r *GormReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *GormReviewRepository) ListByProduct(ctx context.Context, productID uint) ([]domain.ReviewView, error) {
	views := []domain.ReviewView{}
	err := r.db.WithContext(ctx).
		Table("reviews r").
		Select("r.id, r.product_id, r.user_id, r.rating, r.comment, r.created_at, u.username").
		Joins("JOIN users u ON r.user_id = u.id").
		Where("r.product_id = ?", productID).
		Order("r.created_at DESC, r.id DESC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return views, nil
}
