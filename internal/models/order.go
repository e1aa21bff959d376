package models

import (
	"fmt"
	"regexp"
	"time"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// IsTerminal reports whether no further status transition is defined.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ParseOrderStatus validates a status string from a request
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusCompleted, StatusCancelled:
		return OrderStatus(s), nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

// CanTransition reports whether a status change is allowed. Re-asserting the
// current status is a no-op and always allowed; terminal states allow nothing
// else.
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	return from == StatusPending
}

// OrderItem captures a menu item reference with the price at order time,
// decoupled from later catalog edits.
type OrderItem struct {
	ID         int64  `json:"id,omitempty"`
	OrderID    int64  `json:"order_id,omitempty"`
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`
}

// Order is an immutable snapshot of items and prices at order time plus
// mutable status and pickup-time fields.
type Order struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"user_id"`
	UserName    string      `json:"user_name"`
	UserEmail   string      `json:"user_email"`
	Items       []OrderItem `json:"items"`
	TotalAmount int64       `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	PickupTime  *string     `json:"pickup_time,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ComputeTotal returns the sum of price times quantity over the items. The
// order's total_amount is always recomputed from this, never hand-edited.
func ComputeTotal(items []OrderItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// OrderItemsFromCart snapshots cart lines into order items.
func OrderItemsFromCart(cart *Cart) []OrderItem {
	items := make([]OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, OrderItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			Price:      line.Price,
		})
	}
	return items
}

// UpdateOrderRequest is the staff-side patch of status and/or pickup time on
// a single order.
type UpdateOrderRequest struct {
	Status     *string `json:"status,omitempty"`
	PickupTime *string `json:"pickup_time,omitempty"`
}

// Validate validates the patch request
func (req *UpdateOrderRequest) Validate() error {
	if req.Status == nil && req.PickupTime == nil {
		return fmt.Errorf("at least one of status or pickup_time is required")
	}
	if req.Status != nil {
		if _, err := ParseOrderStatus(*req.Status); err != nil {
			return err
		}
	}
	if req.PickupTime != nil && *req.PickupTime != "" {
		if !ValidPickupTime(*req.PickupTime) {
			return ErrInvalidPickupTime
		}
	}
	return nil
}

// BulkAssignRequest applies one pickup time to a set of orders.
type BulkAssignRequest struct {
	OrderIDs   []int64 `json:"order_ids"`
	PickupTime string  `json:"pickup_time"`
}

// Validate validates the bulk assignment request
func (req *BulkAssignRequest) Validate() error {
	if len(req.OrderIDs) == 0 {
		return fmt.Errorf("order_ids cannot be empty")
	}
	if !ValidPickupTime(req.PickupTime) {
		return ErrInvalidPickupTime
	}
	return nil
}

// UpdateItemsRequest replaces a pending order's item list from a revised set
// of menu selections; each line is re-priced from the current catalog.
type UpdateItemsRequest struct {
	Items []ItemSelection `json:"items"`
}

// ItemSelection is a bare menu item reference with a quantity.
type ItemSelection struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

// Validate validates the items update request. An empty item list is allowed:
// it cancels the order instead of persisting an empty one.
func (req *UpdateItemsRequest) Validate() error {
	for i, sel := range req.Items {
		if sel.MenuItemID <= 0 {
			return fmt.Errorf("items[%d].menu_item_id is required", i)
		}
		if sel.Quantity < 1 || sel.Quantity > MaxLineQuantity {
			return fmt.Errorf("items[%d].quantity must be between 1 and %d", i, MaxLineQuantity)
		}
	}
	return nil
}

var pickupTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidPickupTime reports whether s is a well-formed HH:MM pickup slot.
func ValidPickupTime(s string) bool {
	return pickupTimePattern.MatchString(s)
}
