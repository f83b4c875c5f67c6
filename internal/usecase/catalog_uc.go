package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/chronoslabs/chronos/internal/domain"
)

type CatalogUC struct {
	Catalog domain.CatalogRepo
}

func (uc *CatalogUC) Products(ctx context.Context) ([]domain.Product, error) {
	return uc.Catalog.Products(ctx)
}

// ProductByID is a convenience lookup over the full list; the blob layout has no
// secondary index to use instead.
func (uc *CatalogUC) ProductByID(ctx context.Context, id string) (*domain.Product, error) {
	list, err := uc.Catalog.Products(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create fills in a fresh time-based id when the caller left it empty, then
// appends the product.
func (uc *CatalogUC) Create(ctx context.Context, p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("empty product name")
	}
	if p.Price < 0 {
		return errors.New("negative price")
	}
	if p.Discount < 0 || p.Discount > 100 {
		return errors.New("discount out of range")
	}
	if p.ID == "" {
		p.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	return uc.Catalog.AddProduct(ctx, *p)
}

func (uc *CatalogUC) Update(ctx context.Context, p domain.Product) error {
	if p.ID == "" {
		return errors.New("empty product id")
	}
	return uc.Catalog.UpdateProduct(ctx, p)
}

func (uc *CatalogUC) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("empty product id")
	}
	return uc.Catalog.DeleteProduct(ctx, id)
}

func (uc *CatalogUC) Categories(ctx context.Context) ([]string, error) {
	return uc.Catalog.Categories(ctx)
}

func (uc *CatalogUC) AddCategory(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("empty category name")
	}
	return uc.Catalog.AddCategory(ctx, name)
}

func (uc *CatalogUC) DeleteCategory(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("empty category name")
	}
	return uc.Catalog.DeleteCategory(ctx, name)
}
