package order

import (
	"context"
	"encoding/json"
	"errors"
)

// StatusPending is the status assigned to every new order. No other status
// exists; orders never transition after creation.
const StatusPending = "pending"

// Order represents a submitted customer order. Items is stored verbatim as
// received and returned untouched on lookup; the service never interprets it.
type Order struct {
	OrderID int             `json:"orderId"`
	UserID  string          `json:"userId"`
	Items   json.RawMessage `json:"items"`
	Status  string          `json:"status"`
}

// Repository defines behavior for recording orders.
type Repository interface {
	// Create records a new order with status "pending" and returns its
	// identifier. Identifiers are sequential starting at 1 and must stay
	// unique under concurrent calls.
	Create(ctx context.Context, userID string, items json.RawMessage) (int, error)
	Get(ctx context.Context, id int) (Order, error)
}

// ErrNotFound indicates the requested order does not exist.
var ErrNotFound = errors.New("order not found")
