// internal/orders/service.go
package orders

import "context"

// Service defines the order ledger surface. The ledger owns the order
// collection and absorbs cart contents at checkout.
type Service interface {
	// Checkout snapshots the current cart into a new pending order,
	// empties the cart, and returns the new order id. An empty cart still
	// produces a valid empty order.
	Checkout(ctx context.Context) (string, error)

	// Cancel moves a pending order to cancelled. Terminal orders are
	// rejected with ErrOrderTerminal; unknown ids are a no-op.
	Cancel(ctx context.Context, orderID string) error

	// Complete marks a pending order as fulfilled. This is the transition
	// an external fulfillment system drives; terminal orders are rejected
	// with ErrOrderTerminal.
	Complete(ctx context.Context, orderID string) error

	// Get looks one order up by id.
	Get(ctx context.Context, orderID string) (Order, bool)

	// List returns all orders, most recent first.
	List(ctx context.Context) []Order
}
