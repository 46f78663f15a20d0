package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/product/domain"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/money"
)

// SampleCatalog returns the demo products inserted into an empty store
func SampleCatalog() []*domain.Product {
	return []*domain.Product{
		{Name: "MacBook Pro", Description: "Powerful laptop for professionals", Price: money.MustParse("1299.99"), ImageURL: "/images/laptop.jpg", Category: "Electronics", Stock: 10},
		{Name: "iPhone 15", Description: "Latest smartphone with advanced camera", Price: money.MustParse("999.99"), ImageURL: "/images/phone.jpg", Category: "Electronics", Stock: 15},
		{Name: "Sony Headphones", Description: "Noise-cancelling wireless headphones", Price: money.MustParse("299.99"), ImageURL: "/images/headphones.jpg", Category: "Electronics", Stock: 20},
		{Name: "Cotton T-Shirt", Description: "Premium quality cotton t-shirt", Price: money.MustParse("24.99"), ImageURL: "/images/tshirt.jpg", Category: "Clothing", Stock: 50},
		{Name: "Designer Coffee Mug", Description: "Elegant ceramic coffee mug", Price: money.MustParse("19.99"), ImageURL: "/images/mug.jpg", Category: "Home", Stock: 30},
		{Name: "Running Shoes", Description: "Comfortable running shoes", Price: money.MustParse("89.99"), ImageURL: "/images/shoes.jpg", Category: "Sports", Stock: 25},
		{Name: "Smart Watch", Description: "Feature-rich smartwatch", Price: money.MustParse("199.99"), ImageURL: "/images/watch.jpg", Category: "Electronics", Stock: 12},
	}
}

// SeedCatalogHandler inserts the sample catalog into an empty products table
type SeedCatalogHandler struct {
	repo domain.ProductRepository
}

// NewSeedCatalogHandler creates a new seed handler
func NewSeedCatalogHandler(repo domain.ProductRepository) *SeedCatalogHandler {
	return &SeedCatalogHandler{repo: repo}
}

// Handle seeds the catalog and returns the number of inserted products.
// A non-empty catalog is left untouched.
func (h *SeedCatalogHandler) Handle(ctx context.Context) (int, error) {
	count, err := h.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		logger.Debug(ctx).Int64("products", count).Msg("Catalog already seeded")
		return 0, nil
	}

	products := SampleCatalog()
	if err := h.repo.Create(ctx, products...); err != nil {
		return 0, fmt.Errorf("failed to seed catalog: %w", err)
	}

	logger.Info(ctx).Int("products", len(products)).Msg("Sample products inserted")
	return len(products), nil
}
