// Package memory implements an in-memory cart repository.
package memory

import (
	"context"
	"sync"

	"github.com/Joy-it-code/ecommerce-platform2/pkg/cart"
)

// Repository provides an in-memory implementation of cart.Repository,
// keyed by user ID. A mutex serializes all access so concurrent adds and
// removals for the same user cannot interleave mid-mutation.
type Repository struct {
	mu    sync.RWMutex
	carts map[string][]cart.Line
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{carts: make(map[string][]cart.Line)}
}

// AddItem appends the line to the user's cart, creating the cart if absent.
func (r *Repository) AddItem(ctx context.Context, userID string, line cart.Line) ([]cart.Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[userID] = append(r.carts[userID], line)
	return copyLines(r.carts[userID]), nil
}

// RemoveItem deletes all lines with the given product ID. A user without a
// cart gets cart.ErrNotFound; removing the last line is still a success and
// leaves an empty cart behind.
func (r *Repository) RemoveItem(ctx context.Context, userID string, productID int) ([]cart.Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines, ok := r.carts[userID]
	if !ok {
		return nil, cart.ErrNotFound
	}
	kept := make([]cart.Line, 0, len(lines))
	for _, l := range lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	r.carts[userID] = kept
	return copyLines(kept), nil
}

// Get returns the user's cart. An unknown user yields an empty cart, not an
// error; the asymmetry with RemoveItem is part of the contract.
func (r *Repository) Get(ctx context.Context, userID string) ([]cart.Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyLines(r.carts[userID]), nil
}

func copyLines(lines []cart.Line) []cart.Line {
	out := make([]cart.Line, len(lines))
	copy(out, lines)
	return out
}
