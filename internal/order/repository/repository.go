package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/storefront/internal/order/domain"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{}, &domain.OrderItem{})
}

// Create writes the order row and then its items in one transaction
func (r *GormOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(order).Error; err != nil {
			return err
		}
		if len(order.Items) == 0 {
			return nil
		}
		for i := range order.Items {
			order.Items[i].OrderID = order.ID
		}
		return tx.Create(&order.Items).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

const orderRowsQuery = `
SELECT o.id, o.reference, o.user_id, o.total_amount, o.status, o.created_at,
       oi.product_id, oi.quantity, oi.price, p.name AS product_name
FROM orders o
LEFT JOIN order_items oi ON o.id = oi.order_id
LEFT JOIN products p ON oi.product_id = p.id
WHERE o.user_id = ?
ORDER BY o.created_at DESC, o.id DESC, oi.id`

// ListRowsByUser returns the flattened order history of a user, newest first
func (r *GormOrderRepository) ListRowsByUser(ctx context.Context, userID uint) ([]domain.OrderRow, error) {
	rows := []domain.OrderRow{}
	if err := r.db.WithContext(ctx).Raw(orderRowsQuery, userID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return rows, nil
}
