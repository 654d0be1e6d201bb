// Package memory implements an in-memory catalog repository.
package memory

import (
	"context"
	"sync"

	"github.com/Joy-it-code/ecommerce-platform2/pkg/catalog"
)

// DefaultSeed is the catalog served when no custom seed is supplied.
var DefaultSeed = []catalog.Product{
	{ID: 1, Name: "Laptop", Price: 999.99},
	{ID: 2, Name: "Phone", Price: 499.99},
}

// Repository provides an in-memory implementation of catalog.Repository.
// The product list is fixed at construction time.
type Repository struct {
	mu       sync.RWMutex
	products []catalog.Product
}

// New creates a repository seeded with DefaultSeed.
func New() *Repository {
	return NewWithSeed(DefaultSeed)
}

// NewWithSeed creates a repository holding a copy of the given products.
func NewWithSeed(seed []catalog.Product) *Repository {
	products := make([]catalog.Product, len(seed))
	copy(products, seed)
	return &Repository{products: products}
}

// List returns all products in seed order.
func (r *Repository) List(ctx context.Context) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]catalog.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// Get retrieves a product by ID.
func (r *Repository) Get(ctx context.Context, id int) (catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Product{}, catalog.ErrNotFound
}
