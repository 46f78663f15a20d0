package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tair/storefront/internal/product/domain"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormProductRepository) Create(ctx context.Context, products ...*domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(products).Error; err != nil {
		return fmt.Errorf("failed to create products: %w", err)
	}
	return nil
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Product, error) {
	var products []domain.Product
	if len(ids) == 0 {
		return products, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Order("id").Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Where("category = ?", category).Order("id").Find(&products).Error
	return products, err
}

// Search matches query as a case-insensitive substring of name, description or category
func (r *GormProductRepository) Search(ctx context.Context, query string) ([]domain.Product, error) {
	var products []domain.Product
	pattern := "%" + escapeLike(query) + "%"
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR description ILIKE ? OR category ILIKE ?", pattern, pattern, pattern).
		Order("id").
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error
	return count, err
}

// DecrementStock lowers stock by quantity, never below zero
func (r *GormProductRepository) DecrementStock(ctx context.Context, id uint, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("GREATEST(stock - ?, 0)", quantity))
	if result.Error != nil {
		return fmt.Errorf("failed to update stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
