package catalog

import (
	"context"
	"sync"
)

// Repo keeps the catalog in process memory. There is no database in
// this build; everything is lost on restart, which is the contract.
type Repo struct {
	mu         sync.RWMutex
	categories []Category
	products   []Product
}

func NewRepo(categories []Category, products []Product) *Repo {
	r := &Repo{}
	r.categories = append(r.categories, categories...)
	for _, p := range products {
		r.products = append(r.products, p.Clone())
	}
	return r
}

func (r *Repo) ListCategories(ctx context.Context) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *Repo) ListProducts(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *Repo) GetProduct(ctx context.Context, id string) (Product, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p.Clone(), true, nil
		}
	}
	return Product{}, false, nil
}

func (r *Repo) GetCategory(ctx context.Context, id string) (Category, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.ID == id {
			return c, true, nil
		}
	}
	return Category{}, false, nil
}

func (r *Repo) CreateCategory(ctx context.Context, c Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = append(r.categories, c)
	return nil
}

// DeleteCategory removes the category and every product referencing it.
func (r *Repo) DeleteCategory(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.categories[:0]
	for _, c := range r.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.categories = kept

	keptProds := r.products[:0]
	for _, p := range r.products {
		if p.CategoryID != id {
			keptProds = append(keptProds, p)
		}
	}
	r.products = keptProds
	return nil
}

func (r *Repo) CreateProduct(ctx context.Context, p Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, p.Clone())
	return nil
}

func (r *Repo) UpdateProduct(ctx context.Context, p Product) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = p.Clone()
			return true, nil
		}
	}
	return false, nil
}

func (r *Repo) DeleteProduct(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.products[:0]
	for _, p := range r.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.products = kept
	return nil
}
