package models

import "time"

const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

type Order struct {
	ID        int64       `json:"id"`
	UserID    string      `json:"userId"`
	Status    string      `json:"status"`
	Subtotal  int64       `json:"subtotal"`
	Discount  int64       `json:"discount"`
	Total     int64       `json:"total"`
	OfferID   *int64      `json:"offerId,omitempty"`
	Items     []OrderItem `json:"items,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// OrderItem snapshots name and unit price at order time so later menu edits do
// not rewrite history.
type OrderItem struct {
	ID         int64  `json:"id"`
	OrderID    int64  `json:"orderId"`
	MenuItemID int64  `json:"menuItemId"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
}
