// internal/orders/implementation.go
package orders

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"livprint/internal/cart"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "orders").Logger()

// ErrOrderTerminal is returned when a lifecycle transition is requested on a
// completed or cancelled order.
var ErrOrderTerminal = errors.New("order is in a terminal state")

// ledger implements Service over an in-memory order collection kept newest
// first. It consumes the cart ledger at checkout time.
type ledger struct {
	mu     sync.Mutex
	orders []Order
	cart   cart.Service
	userID string
	now    func() time.Time
}

// NewLedger creates an empty order ledger for one session's user, absorbing
// cart contents from cartSvc at checkout.
func NewLedger(cartSvc cart.Service, userID string) Service {
	return &ledger{cart: cartSvc, userID: userID, now: time.Now}
}

// Checkout freezes the current cart lines into order item snapshots and
// empties the cart. The two effects happen under the ledger's lock so a
// caller never observes an order without the matching cart clear.
func (l *ledger) Checkout(ctx context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lines := l.cart.Items(ctx)
	orderID := uuid.NewString()
	now := l.now()

	items := make([]OrderItem, 0, len(lines))
	for i, line := range lines {
		items = append(items, OrderItem{
			ID:            i + 1,
			OrderID:       orderID,
			ProductID:     line.ProductID,
			ProductName:   line.ProductName,
			Quantity:      line.Quantity,
			SelectedSize:  line.SelectedSize,
			SelectedColor: line.SelectedColor,
			BodySide:      line.BodySide,
			ItemCode:      line.ItemCode,
			ImageURL:      line.ImageURL,
			Features:      append([]string(nil), line.Features...),
			Notes:         line.Notes,
			SizingNotes:   line.SizingNotes,
			CreatedAt:     now,
		})
	}

	order := Order{
		ID:        orderID,
		UserID:    l.userID,
		Status:    StatusPending,
		OrderedAt: now,
		CreatedAt: now,
		Items:     items,
	}

	// Newest first.
	l.orders = append([]Order{order}, l.orders...)
	l.cart.Clear(ctx)

	logger.Info().
		Str("order_id", orderID).
		Int("items", len(items)).
		Msg("checked out cart into new order")
	return orderID, nil
}

// Cancel moves a pending order to cancelled. Cancelling an unknown id is a
// routine UI race and no-ops; a terminal order is never re-transitioned.
func (l *ledger) Cancel(ctx context.Context, orderID string) error {
	return l.transition(orderID, StatusCancelled)
}

// Complete marks a pending order as fulfilled.
func (l *ledger) Complete(ctx context.Context, orderID string) error {
	return l.transition(orderID, StatusCompleted)
}

func (l *ledger) transition(orderID string, next Status) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID != orderID {
			continue
		}
		if l.orders[i].Status.Terminal() {
			return ErrOrderTerminal
		}
		l.orders[i].Status = next
		logger.Info().
			Str("order_id", orderID).
			Str("status", string(next)).
			Msg("order status changed")
		return nil
	}

	logger.Debug().Str("order_id", orderID).Msg("transition for unknown order ignored")
	return nil
}

// Get looks one order up by id.
func (l *ledger) Get(ctx context.Context, orderID string) (Order, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID == orderID {
			return copyOrder(l.orders[i]), true
		}
	}
	return Order{}, false
}

// List returns all orders, most recent first.
func (l *ledger) List(ctx context.Context) []Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Order, 0, len(l.orders))
	for _, o := range l.orders {
		out = append(out, copyOrder(o))
	}
	return out
}

// copyOrder returns a copy sharing no slices with the ledger's state.
func copyOrder(o Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		item.Features = append([]string(nil), item.Features...)
		items = append(items, item)
	}
	o.Items = items
	return o
}
