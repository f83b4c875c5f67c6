package blobrepo

import (
	"context"

	"github.com/chronoslabs/chronos/internal/domain"
)

type CatalogRepo struct {
	store domain.BlobStore

	// Delays may be zeroed by tests before first use.
	Delays Delays
}

func NewCatalogRepo(store domain.BlobStore) *CatalogRepo {
	return &CatalogRepo{store: store, Delays: DefaultDelays()}
}

// Products returns the full product list, seeding the built-in catalog the first
// time the products blob is missing.
func (r *CatalogRepo) Products(ctx context.Context) ([]domain.Product, error) {
	if err := sleep(ctx, r.Delays.Products); err != nil {
		return nil, err
	}
	var list []domain.Product
	ok, err := readList(ctx, r.store, domain.KeyProducts, &list)
	if err != nil {
		return nil, err
	}
	if !ok {
		list = seedProducts()
		if err := writeList(ctx, r.store, domain.KeyProducts, list); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// AddProduct appends p as-is. The caller supplies a freshly generated id; no
// uniqueness check is performed here.
func (r *CatalogRepo) AddProduct(ctx context.Context, p domain.Product) error {
	list, err := r.Products(ctx)
	if err != nil {
		return err
	}
	list = append(list, p)
	return writeList(ctx, r.store, domain.KeyProducts, list)
}

// UpdateProduct replaces the first product whose id matches. A missing id is a
// silent no-op: callers cannot distinguish it from success.
func (r *CatalogRepo) UpdateProduct(ctx context.Context, p domain.Product) error {
	list, err := r.Products(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == p.ID {
			list[i] = p
			return writeList(ctx, r.store, domain.KeyProducts, list)
		}
	}
	return nil
}

// DeleteProduct removes matching entries by id; idempotent.
func (r *CatalogRepo) DeleteProduct(ctx context.Context, id string) error {
	list, err := r.Products(ctx)
	if err != nil {
		return err
	}
	kept := list[:0]
	for _, p := range list {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return writeList(ctx, r.store, domain.KeyProducts, kept)
}

// Categories returns the category list, seeding the distinct categories of the
// built-in catalog on first use.
func (r *CatalogRepo) Categories(ctx context.Context) ([]string, error) {
	if err := sleep(ctx, r.Delays.Categories); err != nil {
		return nil, err
	}
	var cats []string
	ok, err := readList(ctx, r.store, domain.KeyCategories, &cats)
	if err != nil {
		return nil, err
	}
	if !ok {
		cats = seedCategories()
		if err := writeList(ctx, r.store, domain.KeyCategories, cats); err != nil {
			return nil, err
		}
	}
	return cats, nil
}

// AddCategory appends name unless already present (case-sensitive exact match).
func (r *CatalogRepo) AddCategory(ctx context.Context, name string) error {
	cats, err := r.Categories(ctx)
	if err != nil {
		return err
	}
	for _, c := range cats {
		if c == name {
			return nil
		}
	}
	cats = append(cats, name)
	return writeList(ctx, r.store, domain.KeyCategories, cats)
}

// DeleteCategory removes name if present. Products assigned to the category are
// left untouched and keep the now-orphaned category string.
func (r *CatalogRepo) DeleteCategory(ctx context.Context, name string) error {
	cats, err := r.Categories(ctx)
	if err != nil {
		return err
	}
	kept := cats[:0]
	for _, c := range cats {
		if c != name {
			kept = append(kept, c)
		}
	}
	return writeList(ctx, r.store, domain.KeyCategories, kept)
}
