package cart

import (
	"context"
	"errors"
)

// Line is one (product, quantity) entry in a user's cart. Duplicate product
// entries are permitted; every add appends a new line.
type Line struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Repository defines behavior for per-user carts. Carts are created lazily
// on the first AddItem call and are never explicitly deleted.
type Repository interface {
	// AddItem appends a line to the user's cart and returns the full
	// updated cart.
	AddItem(ctx context.Context, userID string, line Line) ([]Line, error)
	// RemoveItem deletes every line matching productID and returns the
	// updated cart. It returns ErrNotFound when the user has no cart at
	// all; an empty cart after removal is still a success.
	RemoveItem(ctx context.Context, userID string, productID int) ([]Line, error)
	// Get returns the user's cart, or an empty slice when the user has
	// no cart. It never returns ErrNotFound.
	Get(ctx context.Context, userID string) ([]Line, error)
}

// ErrNotFound indicates the user has no cart.
var ErrNotFound = errors.New("cart not found")
