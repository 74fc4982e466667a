// internal/cart/service.go
package cart

import "context"

// Service defines the cart ledger surface. The ledger owns the live line
// collection for one session; callers only ever see copies of its state.
type Service interface {
	// Add merges the input into an existing line with the same
	// configuration, or appends a new line. It returns the resulting line.
	Add(ctx context.Context, input NewItem) (Item, error)

	// UpdateQuantity sets a line's quantity. Unknown ids are a no-op.
	UpdateQuantity(ctx context.Context, id int64, quantity int) error

	// Remove deletes a line. Removing an unknown id is a no-op.
	Remove(ctx context.Context, id int64)

	// Items returns a copy of the current lines in insertion order.
	Items(ctx context.Context) []Item

	// Clear empties the cart.
	Clear(ctx context.Context)
}
