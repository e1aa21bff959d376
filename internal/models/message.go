package models

import (
	"fmt"
	"time"
)

// Order event names published to the orders topic exchange.
const (
	EventOrderPlaced    = "placed"
	EventOrderUpdated   = "updated"
	EventOrderCancelled = "cancelled"
)

// Notification types consumed by the notifier.
const (
	NotificationOrderConfirmation = "order_confirmation"
	NotificationAdminAlert        = "admin_alert"
	NotificationPasswordReset     = "password_reset"
)

// OrderEventMessage is published on every order mutation.
type OrderEventMessage struct {
	Event       string    `json:"event"`
	OrderID     int64     `json:"order_id"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	TotalAmount int64     `json:"total_amount"`
	Status      string    `json:"status"`
	PickupTime  *string   `json:"pickup_time,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NotificationMessage is the simulated e-mail / admin alert payload. Delivery
// is fire-and-forget with no retry.
type NotificationMessage struct {
	Type      string    `json:"type"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

// NewOrderEventMessage builds an order event from the current order state.
func NewOrderEventMessage(event string, order *Order) *OrderEventMessage {
	return &OrderEventMessage{
		Event:       event,
		OrderID:     order.ID,
		UserName:    order.UserName,
		UserEmail:   order.UserEmail,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		PickupTime:  order.PickupTime,
		Timestamp:   time.Now().UTC(),
	}
}

// NewOrderNotification builds the customer-facing confirmation message for an
// order event.
func NewOrderNotification(event string, order *Order) *NotificationMessage {
	return &NotificationMessage{
		Type:      NotificationOrderConfirmation,
		Recipient: order.UserEmail,
		Subject:   fmt.Sprintf("Order #%04d %s", order.ID, event),
		Body:      fmt.Sprintf("Your order #%04d (%d JPY) has been %s.", order.ID, order.TotalAmount, event),
		Timestamp: time.Now().UTC(),
	}
}

// NewAdminAlert builds the staff-facing alert for an order event.
func NewAdminAlert(event string, order *Order) *NotificationMessage {
	return &NotificationMessage{
		Type:      NotificationAdminAlert,
		Recipient: "admins",
		Subject:   fmt.Sprintf("Order #%04d %s", order.ID, event),
		Body:      fmt.Sprintf("%s (%s) %s order #%04d, total %d JPY.", order.UserName, order.UserEmail, event, order.ID, order.TotalAmount),
		Timestamp: time.Now().UTC(),
	}
}

// NewPasswordResetNotification carries the simulated reset e-mail.
func NewPasswordResetNotification(email, token string) *NotificationMessage {
	return &NotificationMessage{
		Type:      NotificationPasswordReset,
		Recipient: email,
		Subject:   "Password reset requested",
		Body:      fmt.Sprintf("Use token %s within one hour to reset your password.", token),
		Timestamp: time.Now().UTC(),
	}
}

// RoutingKey returns the topic routing key for an order event.
func (m *OrderEventMessage) RoutingKey() string {
	return fmt.Sprintf("order.%s", m.Event)
}
