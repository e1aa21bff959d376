package order

import (
	"context"

	"github.com/Snoopy-too/fidels-pizza/internal/logger"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
	"github.com/Snoopy-too/fidels-pizza/internal/web"
)

// CartSource provides the staged selections an order is placed from
type CartSource interface {
	Get(ctx context.Context, userID int64) (*models.Cart, error)
	Clear(ctx context.Context, userID int64) error
}

// Catalog is the menu lookup used to re-price edited orders
type Catalog interface {
	Get(ctx context.Context, id int64) (*models.MenuItem, error)
}

// Accounts resolves the current account record for the order snapshot
type Accounts interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

// EventPublisher publishes order events and notifications
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, eventMsg interface{}, routingKey string) error
	PublishNotification(ctx context.Context, notificationMsg interface{}) error
}

// Ledger is the persistence surface for orders and their items
type Ledger interface {
	Create(ctx context.Context, order *models.Order) error
	Get(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Order, error)
	ReplaceItems(ctx context.Context, orderID int64, items []models.OrderItem, total int64) error
	UpdateStatus(ctx context.Context, orderID int64, status models.OrderStatus) error
	UpdatePickupTime(ctx context.Context, orderID int64, pickupTime *string) error
	BulkUpdatePickupTime(ctx context.Context, orderIDs []int64, pickupTime string) (int64, error)
	ClearAll(ctx context.Context) error
}

// ClearAllConfirm is the query value required to wipe the order ledger.
const ClearAllConfirm = "all-orders"

// Service manages the order ledger
type Service struct {
	repo      Ledger
	carts     CartSource
	catalog   Catalog
	users     Accounts
	publisher EventPublisher
	logger    *logger.Logger
}

// NewService creates a new order service
func NewService(repo Ledger, carts CartSource, catalog Catalog, users Accounts, publisher EventPublisher, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		carts:     carts,
		catalog:   catalog,
		users:     users,
		publisher: publisher,
		logger:    log,
	}
}

// Place converts the caller's cart into a pending order, freezing names and
// prices, then clears the cart. The contact snapshot comes from the stored
// account record, not the token, so profile edits are picked up immediately.
func (s *Service) Place(ctx context.Context, identity web.Identity) (*models.Order, error) {
	cart, err := s.carts.Get(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, models.ErrEmptyCart
	}

	user, err := s.users.GetUser(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	items := models.OrderItemsFromCart(cart)
	order := &models.Order{
		UserID:      identity.UserID,
		UserName:    user.Name,
		UserEmail:   user.Email,
		Items:       items,
		TotalAmount: models.ComputeTotal(items),
		Status:      models.StatusPending,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, identity.UserID); err != nil {
		s.logger.Error("cart_clear_failed", "Failed to clear cart after order", web.RequestIDFromContext(ctx), err, map[string]interface{}{
			"order_id": order.ID,
		})
	}

	web.OrdersPlacedTotal.Inc()
	s.publish(ctx, models.EventOrderPlaced, order)
	s.logger.Info("order_placed", "Order placed", web.RequestIDFromContext(ctx), map[string]interface{}{
		"order_id":     order.ID,
		"user_id":      order.UserID,
		"total_amount": order.TotalAmount,
	})
	return order, nil
}

// Get returns one order; visitors may only see their own
func (s *Service) Get(ctx context.Context, orderID int64, identity web.Identity) (*models.Order, error) {
	order, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != identity.UserID && identity.Role != models.RoleAdmin {
		return nil, models.ErrNotOrderOwner
	}
	return order, nil
}

// List returns the caller's orders; staff see the full ledger
func (s *Service) List(ctx context.Context, identity web.Identity) ([]models.Order, error) {
	if identity.Role == models.RoleAdmin {
		return s.repo.List(ctx)
	}
	return s.repo.ListByUser(ctx, identity.UserID)
}

// ListAll returns every order regardless of caller
func (s *Service) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.repo.List(ctx)
}

// UpdateItems replaces a pending order's item list, re-pricing each line from
// the current catalog. An empty list cancels the order instead of leaving an
// empty one behind.
func (s *Service) UpdateItems(ctx context.Context, orderID int64, identity web.Identity, req *models.UpdateItemsRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	order, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != identity.UserID && identity.Role != models.RoleAdmin {
		return nil, models.ErrNotOrderOwner
	}
	if order.Status != models.StatusPending {
		return nil, models.ErrOrderFinalized
	}

	if len(req.Items) == 0 {
		return s.cancelOrder(ctx, order)
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, sel := range req.Items {
		menuItem, err := s.catalog.Get(ctx, sel.MenuItemID)
		if err != nil {
			return nil, err
		}
		if !menuItem.Available {
			return nil, models.ErrMenuItemUnavailable
		}
		items = append(items, models.OrderItem{
			OrderID:    orderID,
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Quantity:   sel.Quantity,
			Price:      menuItem.Price,
		})
	}

	total := models.ComputeTotal(items)
	if err := s.repo.ReplaceItems(ctx, orderID, items, total); err != nil {
		return nil, err
	}

	order, err = s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, models.EventOrderUpdated, order)
	return order, nil
}

// UpdateFields patches status and/or pickup time on one order. Terminal
// statuses reject changes except re-asserting the same status, which is a
// no-op. Pickup time may be set on any non-cancelled order.
func (s *Service) UpdateFields(ctx context.Context, orderID int64, req *models.UpdateOrderRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	order, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Validate the whole patch before the first write so a rejected field
	// never leaves a partial update behind
	next := order.Status
	if req.Status != nil {
		parsed, err := models.ParseOrderStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		if !models.CanTransition(order.Status, parsed) {
			return nil, models.ErrOrderFinalized
		}
		next = parsed
	}
	if req.PickupTime != nil && next == models.StatusCancelled {
		return nil, models.ErrOrderFinalized
	}

	changed := false
	if next != order.Status {
		if next == models.StatusCancelled {
			web.OrdersCancelledTotal.Inc()
		}
		if err := s.repo.UpdateStatus(ctx, orderID, next); err != nil {
			return nil, err
		}
		order.Status = next
		changed = true
	}

	if req.PickupTime != nil {
		var pickup *string
		if *req.PickupTime != "" {
			pickup = req.PickupTime
		}
		if err := s.repo.UpdatePickupTime(ctx, orderID, pickup); err != nil {
			return nil, err
		}
		order.PickupTime = pickup
		changed = true
	}

	if changed {
		order, err = s.repo.Get(ctx, orderID)
		if err != nil {
			return nil, err
		}
		event := models.EventOrderUpdated
		if order.Status == models.StatusCancelled {
			event = models.EventOrderCancelled
		}
		s.publish(ctx, event, order)
	}
	return order, nil
}

// Cancel cancels the caller's own pending order. Cancelling an already
// cancelled order is a no-op; completed orders cannot be cancelled.
func (s *Service) Cancel(ctx context.Context, orderID int64, identity web.Identity) (*models.Order, error) {
	order, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != identity.UserID && identity.Role != models.RoleAdmin {
		return nil, models.ErrNotOrderOwner
	}
	if order.Status == models.StatusCancelled {
		return order, nil
	}
	if !models.CanTransition(order.Status, models.StatusCancelled) {
		return nil, models.ErrOrderFinalized
	}
	return s.cancelOrder(ctx, order)
}

func (s *Service) cancelOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := s.repo.UpdateStatus(ctx, order.ID, models.StatusCancelled); err != nil {
		return nil, err
	}
	order.Status = models.StatusCancelled

	web.OrdersCancelledTotal.Inc()
	s.publish(ctx, models.EventOrderCancelled, order)
	s.logger.Info("order_cancelled", "Order cancelled", web.RequestIDFromContext(ctx), map[string]interface{}{
		"order_id": order.ID,
	})
	return order, nil
}

// BulkAssignPickup assigns one pickup time to many orders atomically,
// skipping cancelled ones. Returns how many orders were updated.
func (s *Service) BulkAssignPickup(ctx context.Context, req *models.BulkAssignRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	updated, err := s.repo.BulkUpdatePickupTime(ctx, req.OrderIDs, req.PickupTime)
	if err != nil {
		return 0, err
	}
	s.logger.Info("pickup_bulk_assigned", "Pickup time assigned", web.RequestIDFromContext(ctx), map[string]interface{}{
		"pickup_time": req.PickupTime,
		"requested":   len(req.OrderIDs),
		"updated":     updated,
	})
	return updated, nil
}

// ClearAll wipes the whole order ledger. The caller must pass the exact
// confirmation value; anything else is rejected.
func (s *Service) ClearAll(ctx context.Context, confirm string) error {
	if confirm != ClearAllConfirm {
		return models.ErrConfirmRequired
	}
	if err := s.repo.ClearAll(ctx); err != nil {
		return err
	}
	s.logger.Info("orders_cleared", "All orders deleted", web.RequestIDFromContext(ctx), nil)
	return nil
}

func (s *Service) publish(ctx context.Context, event string, order *models.Order) {
	msg := models.NewOrderEventMessage(event, order)
	if err := s.publisher.PublishOrderEvent(ctx, msg, msg.RoutingKey()); err != nil {
		s.logger.Error("event_publish_failed", "Failed to publish order event", web.RequestIDFromContext(ctx), err, map[string]interface{}{
			"order_id": order.ID,
			"event":    event,
		})
	}
	if err := s.publisher.PublishNotification(ctx, models.NewOrderNotification(event, order)); err != nil {
		s.logger.Error("notification_publish_failed", "Failed to publish notification", web.RequestIDFromContext(ctx), err, map[string]interface{}{
			"order_id": order.ID,
		})
	}
	if err := s.publisher.PublishNotification(ctx, models.NewAdminAlert(event, order)); err != nil {
		s.logger.Error("notification_publish_failed", "Failed to publish admin alert", web.RequestIDFromContext(ctx), err, map[string]interface{}{
			"order_id": order.ID,
		})
	}
}
