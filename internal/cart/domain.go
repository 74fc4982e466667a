// internal/cart/domain.go
package cart

import "time"

// Item is one configured, quantity-bearing cart line pending order.
type Item struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id"`
	ProductID     int       `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Quantity      int       `json:"quantity"`
	SelectedSize  string    `json:"selected_size"`
	SelectedColor string    `json:"selected_color"`
	BodySide      string    `json:"body_side"`
	ItemCode      string    `json:"item_code"`
	ImageURL      string    `json:"image_url"`
	Features      []string  `json:"features"`
	Notes         string    `json:"notes,omitempty"`
	SizingNotes   string    `json:"sizing_notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewItem carries the fields a caller supplies when adding a line; the
// ledger assigns the id and timestamps.
type NewItem struct {
	UserID        string
	ProductID     int
	ProductName   string
	Quantity      int
	SelectedSize  string
	SelectedColor string
	BodySide      string
	ItemCode      string
	ImageURL      string
	Features      []string
	Notes         string
	SizingNotes   string
}

// dedupKey identifies lines that must merge instead of duplicating: the
// same product in the same configuration.
type dedupKey struct {
	ProductID int
	Size      string
	Color     string
	Side      string
}

func (n NewItem) key() dedupKey {
	return dedupKey{
		ProductID: n.ProductID,
		Size:      n.SelectedSize,
		Color:     n.SelectedColor,
		Side:      n.BodySide,
	}
}

func (i Item) key() dedupKey {
	return dedupKey{
		ProductID: i.ProductID,
		Size:      i.SelectedSize,
		Color:     i.SelectedColor,
		Side:      i.BodySide,
	}
}
