// internal/orders/domain.go
package orders

import "time"

// Status is an order's lifecycle state. Pending orders may be cancelled or
// completed; completed and cancelled are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no further transitions are allowed from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Order is an immutable snapshot of cart contents submitted for fulfillment.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Status    Status      `json:"order_status"`
	OrderedAt time.Time   `json:"ordered_at"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `json:"items"`
}

// OrderItem is a frozen copy of one cart line at checkout time. Its line id
// is 1-based and scoped to the order.
type OrderItem struct {
	ID            int       `json:"id"`
	OrderID       string    `json:"order_id"`
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
}
