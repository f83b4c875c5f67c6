package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned by stores and repositories when a key or record is absent.
var ErrNotFound = errors.New("not found")

// Blob keys. Each holds one JSON array; together they are the whole persisted state.
const (
	KeyProducts   = "chronos_products_db"
	KeyCategories = "chronos_categories_db"
	KeyOrders     = "chronos_orders_db"
)

// BlobStore is the persistent key-value engine behind the repositories. Writes are
// synchronous and immediately visible to subsequent reads. There are no transactions
// and no atomicity across keys: a racing read-modify-write loses, last write wins.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, blob []byte) error
}

// CatalogRepo provides CRUD over the product and category lists, seeding both from
// the built-in catalog on first use.
type CatalogRepo interface {
	Products(ctx context.Context) ([]Product, error)
	AddProduct(ctx context.Context, p Product) error
	UpdateProduct(ctx context.Context, p Product) error
	DeleteProduct(ctx context.Context, id string) error

	Categories(ctx context.Context) ([]string, error)
	AddCategory(ctx context.Context, name string) error
	DeleteCategory(ctx context.Context, name string) error
}

// OrderRepo is append-only creation plus status mutation and retrieval. The stored
// list is most-recent-first.
type OrderRepo interface {
	Save(ctx context.Context, customer CustomerDetails, items []CartItem, total float64) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status OrderStatus) error
}

// DashboardStats are derived on demand from orders and products, never persisted.
// LowStockCount is a synthetic fraction of the product count, not real inventory.
type DashboardStats struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalOrders   int     `json:"totalOrders"`
	AvgOrderValue float64 `json:"avgOrderValue"`
	LowStockCount int     `json:"lowStockCount"`
}
