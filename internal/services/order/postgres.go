package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Snoopy-too/fidels-pizza/internal/database"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
)

// Repository provides access to the order ledger
type Repository struct {
	db *database.DB
}

// NewRepository creates a new order repository
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts an order and its items in one transaction. The order id
// comes from the database sequence.
func (r *Repository) Create(ctx context.Context, order *models.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, database.InsertOrderSQL,
		order.UserID, order.UserName, order.UserEmail, order.TotalAmount, order.Status,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		item := &order.Items[i]
		_, err = tx.Exec(ctx, database.InsertOrderItemSQL,
			order.ID, item.MenuItemID, item.Name, item.Quantity, item.Price)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// Get returns one order with its items
func (r *Repository) Get(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := r.db.QueryRow(ctx, database.GetOrderSQL, id).Scan(
		&order.ID, &order.UserID, &order.UserName, &order.UserEmail,
		&order.TotalAmount, &order.Status, &order.PickupTime,
		&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

// List returns every order with items, newest first
func (r *Repository) List(ctx context.Context) ([]models.Order, error) {
	return r.listOrders(ctx, database.ListOrdersSQL)
}

// ListByUser returns a visitor's own orders with items, newest first
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	return r.listOrders(ctx, database.ListOrdersByUserSQL, userID)
}

func (r *Repository) listOrders(ctx context.Context, sql string, args ...interface{}) ([]models.Order, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	index := make(map[int64]int)
	orderIDs := make([]int64, 0)
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.UserName, &order.UserEmail,
			&order.TotalAmount, &order.Status, &order.PickupTime,
			&order.CreatedAt, &order.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		order.Items = []models.OrderItem{}
		index[order.ID] = len(orders)
		orderIDs = append(orderIDs, order.ID)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := r.db.Query(ctx, database.ListOrderItemsByOrdersSQL, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.OrderItem
		if err := itemRows.Scan(&item.ID, &item.OrderID, &item.MenuItemID,
			&item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if i, ok := index[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return orders, itemRows.Err()
}

func (r *Repository) listItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	rows, err := r.db.Query(ctx, database.ListOrderItemsSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	items := make([]models.OrderItem, 0)
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID,
			&item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ReplaceItems swaps an order's item list and total in one transaction
func (r *Repository) ReplaceItems(ctx context.Context, orderID int64, items []models.OrderItem, total int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, database.DeleteOrderItemsSQL, orderID); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	for _, item := range items {
		_, err := tx.Exec(ctx, database.InsertOrderItemSQL,
			orderID, item.MenuItemID, item.Name, item.Quantity, item.Price)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	if _, err := tx.Exec(ctx, database.UpdateOrderItemsTotalSQL, total, orderID); err != nil {
		return fmt.Errorf("update order total: %w", err)
	}

	return tx.Commit(ctx)
}

// UpdateStatus sets an order's status
func (r *Repository) UpdateStatus(ctx context.Context, orderID int64, status models.OrderStatus) error {
	return r.db.Exec(ctx, database.UpdateOrderStatusSQL, status, orderID)
}

// UpdatePickupTime sets or clears an order's pickup time
func (r *Repository) UpdatePickupTime(ctx context.Context, orderID int64, pickupTime *string) error {
	return r.db.Exec(ctx, database.UpdateOrderPickupTimeSQL, pickupTime, orderID)
}

// BulkUpdatePickupTime assigns one pickup time to many orders in a single
// statement. Cancelled orders are skipped. Returns how many rows changed.
func (r *Repository) BulkUpdatePickupTime(ctx context.Context, orderIDs []int64, pickupTime string) (int64, error) {
	tag, err := r.db.Pool.Exec(ctx, database.BulkUpdatePickupTimeSQL, pickupTime, orderIDs)
	if err != nil {
		return 0, fmt.Errorf("bulk update pickup time: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ClearAll deletes every order; items follow via cascade
func (r *Repository) ClearAll(ctx context.Context) error {
	return r.db.Exec(ctx, database.ClearAllOrdersSQL)
}
