package catalog

import (
	"context"
	"errors"
)

// Product represents one item in the store catalog.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Repository defines read access to the catalog. The catalog is seeded once
// at process start and never mutated, so there are no write operations.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int) (Product, error)
}

// ErrNotFound indicates the requested product does not exist.
var ErrNotFound = errors.New("product not found")
