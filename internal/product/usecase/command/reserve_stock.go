package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/storefront/internal/product/domain"
	"github.com/tair/storefront/pkg/logger"
)

// StockLine is one product quantity to take out of stock
type StockLine struct {
	ProductID uint
	Quantity  int
}

// ReserveStockCommand decrements stock for the lines of a placed order
type ReserveStockCommand struct {
	OrderReference string
	Lines          []StockLine
}

// ReserveStockHandler handles stock reservation
type ReserveStockHandler struct {
	repo domain.ProductRepository
}

// NewReserveStockHandler creates a new reserve stock handler
func NewReserveStockHandler(repo domain.ProductRepository) *ReserveStockHandler {
	return &ReserveStockHandler{repo: repo}
}

// Handle applies every line; products that no longer exist are skipped
func (h *ReserveStockHandler) Handle(ctx context.Context, cmd ReserveStockCommand) error {
	var errs []error
	for _, line := range cmd.Lines {
		if line.Quantity <= 0 {
			continue
		}

		err := h.repo.DecrementStock(ctx, line.ProductID, line.Quantity)
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			logger.Warn(ctx).
				Str("order_reference", cmd.OrderReference).
				Uint("product_id", line.ProductID).
				Msg("Skipping stock reservation for missing product")
		case err != nil:
			errs = append(errs, fmt.Errorf("product %d: %w", line.ProductID, err))
		}
	}
	return errors.Join(errs...)
}
