// internal/cart/implementation.go
package cart

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "cart").Logger()

// ErrInvalidQuantity is returned when a quantity below 1 reaches the ledger.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// ledger implements Service over an in-memory line collection. All state is
// guarded by mu so concurrent UI actions serialize correctly; nothing
// survives the process.
type ledger struct {
	mu     sync.Mutex
	items  []Item
	nextID int64
	now    func() time.Time
}

// NewLedger creates an empty cart ledger. Line ids come from a monotonic
// counter, so rapid successive adds can never collide.
func NewLedger() Service {
	return &ledger{nextID: 1, now: time.Now}
}

// Add merges into an existing line with the same (product, size, color,
// side) configuration, or appends a new line.
func (l *ledger) Add(ctx context.Context, input NewItem) (Item, error) {
	if input.Quantity < 1 {
		return Item{}, ErrInvalidQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	key := input.key()
	for i := range l.items {
		if l.items[i].key() != key {
			continue
		}
		l.items[i].Quantity += input.Quantity
		l.items[i].UpdatedAt = l.now()
		logger.Info().
			Int64("cart_item_id", l.items[i].ID).
			Int("quantity", l.items[i].Quantity).
			Msg("merged into existing cart line")
		return copyItem(l.items[i]), nil
	}

	now := l.now()
	item := Item{
		ID:            l.nextID,
		UserID:        input.UserID,
		ProductID:     input.ProductID,
		ProductName:   input.ProductName,
		Quantity:      input.Quantity,
		SelectedSize:  input.SelectedSize,
		SelectedColor: input.SelectedColor,
		BodySide:      input.BodySide,
		ItemCode:      input.ItemCode,
		ImageURL:      input.ImageURL,
		Features:      append([]string(nil), input.Features...),
		Notes:         input.Notes,
		SizingNotes:   input.SizingNotes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	l.nextID++
	l.items = append(l.items, item)

	logger.Info().
		Int64("cart_item_id", item.ID).
		Int("product_id", item.ProductID).
		Int("quantity", item.Quantity).
		Msg("added cart line")
	return copyItem(item), nil
}

// UpdateQuantity sets a line's quantity and refreshes its updated_at stamp.
// Unknown ids are a routine UI race (double-tap after delete) and no-op.
func (l *ledger) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ID != id {
			continue
		}
		l.items[i].Quantity = quantity
		l.items[i].UpdatedAt = l.now()
		return nil
	}

	logger.Debug().Int64("cart_item_id", id).Msg("quantity update for unknown cart line ignored")
	return nil
}

// Remove deletes a line if present; removing an unknown id is a no-op.
func (l *ledger) Remove(ctx context.Context, id int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			logger.Info().Int64("cart_item_id", id).Msg("removed cart line")
			return
		}
	}
}

// Items returns a copy of the current lines in insertion order.
func (l *ledger) Items(ctx context.Context) []Item {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Item, 0, len(l.items))
	for _, item := range l.items {
		out = append(out, copyItem(item))
	}
	return out
}

// Clear empties the cart.
func (l *ledger) Clear(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = nil
	logger.Info().Msg("cleared cart")
}

// copyItem returns a copy sharing no slices with the ledger's state.
func copyItem(item Item) Item {
	item.Features = append([]string(nil), item.Features...)
	return item
}
