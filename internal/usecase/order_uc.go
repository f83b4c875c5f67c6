package usecase

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/chronoslabs/chronos/internal/domain"
)

// Checkout validation failures the HTTP layer maps to client errors; anything else
// is a repository failure and surfaces as the generic checkout message.
var (
	ErrEmptyCart      = errors.New("empty cart")
	ErrMissingDetails = errors.New("missing customer details")
)

type OrderUC struct {
	Orders  domain.OrderRepo
	Catalog domain.CatalogRepo
}

// Checkout persists the cart as a pending order and returns it. The cart itself is
// the caller's to clear, and only after this succeeds: on error the cart must
// survive untouched for retry.
func (uc *OrderUC) Checkout(ctx context.Context, customer domain.CustomerDetails, cart *domain.Cart) (*domain.Order, error) {
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, f := range []string{customer.FullName, customer.Email, customer.Phone, customer.Address, customer.City, customer.Zip} {
		if strings.TrimSpace(f) == "" {
			return nil, ErrMissingDetails
		}
	}
	// Snapshot the line items so later cart or product edits can't reach into the
	// persisted order.
	items := make([]domain.CartItem, len(cart.Items))
	copy(items, cart.Items)
	return uc.Orders.Save(ctx, customer, items, cart.Total())
}

func (uc *OrderUC) List(ctx context.Context) ([]domain.Order, error) {
	return uc.Orders.List(ctx)
}

func (uc *OrderUC) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if !domain.ValidStatus(status) {
		return errors.New("unknown order status")
	}
	return uc.Orders.UpdateStatus(ctx, id, status)
}

// DashboardStats re-reads both repositories in full on every call; nothing is
// cached. lowStockCount is floor(productCount * 0.2), a placeholder with no tie to
// real inventory.
func (uc *OrderUC) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	orders, err := uc.Orders.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.Catalog.Products(ctx)
	if err != nil {
		return nil, err
	}
	stats := &domain.DashboardStats{TotalOrders: len(orders)}
	for _, o := range orders {
		stats.TotalRevenue += o.Total
	}
	if stats.TotalOrders > 0 {
		stats.AvgOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}
	stats.LowStockCount = int(math.Floor(float64(len(products)) * 0.2))
	return stats, nil
}
