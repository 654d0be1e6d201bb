// Package memory implements an in-memory order repository.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Joy-it-code/ecommerce-platform2/pkg/order"
)

// Repository provides an in-memory implementation of order.Repository.
// Orders are held in an append-only slice; the identifier for a new order is
// computed and the order appended inside the same critical section, so IDs
// remain strictly increasing and unique under concurrent Create calls.
type Repository struct {
	mu     sync.RWMutex
	orders []order.Order
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{}
}

// Create records the order and returns its assigned identifier.
func (r *Repository) Create(ctx context.Context, userID string, items json.RawMessage) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o := order.Order{
		OrderID: len(r.orders) + 1,
		UserID:  userID,
		Items:   items,
		Status:  order.StatusPending,
	}
	r.orders = append(r.orders, o)
	return o.OrderID, nil
}

// Get retrieves an order by ID.
func (r *Repository) Get(ctx context.Context, id int) (order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.OrderID == id {
			return o, nil
		}
	}
	return order.Order{}, order.ErrNotFound
}
