package database

// User queries
const (
	InsertUserSQL = `
		INSERT INTO users (email, name, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	GetUserByEmailSQL = `
		SELECT id, email, name, password_hash, role, created_at
		FROM users WHERE email = $1`

	GetUserByIDSQL = `
		SELECT id, email, name, password_hash, role, created_at
		FROM users WHERE id = $1`

	UserEmailExistsSQL = `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	UpdateUserProfileSQL = `
		UPDATE users SET name = $1, email = $2, password_hash = $3
		WHERE id = $4`

	UpdatePasswordByEmailSQL = `
		UPDATE users SET password_hash = $1 WHERE email = $2`
)

// Password reset token queries
const (
	InsertResetTokenSQL = `
		INSERT INTO password_reset_tokens (token, email, expires_at)
		VALUES ($1, $2, $3)`

	GetResetTokenSQL = `
		SELECT email, expires_at FROM password_reset_tokens WHERE token = $1`

	DeleteResetTokenSQL = `
		DELETE FROM password_reset_tokens WHERE token = $1`
)

// Menu queries
const (
	InsertMenuItemSQL = `
		INSERT INTO menu_items (name, description, price, image_url, available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	ListMenuItemsSQL = `
		SELECT id, name, description, price, image_url, available, created_at, updated_at
		FROM menu_items ORDER BY id ASC`

	GetMenuItemSQL = `
		SELECT id, name, description, price, image_url, available, created_at, updated_at
		FROM menu_items WHERE id = $1`

	UpdateMenuItemSQL = `
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, image_url = $4, available = $5, updated_at = NOW()
		WHERE id = $6`

	DeleteMenuItemSQL = `
		DELETE FROM menu_items WHERE id = $1`
)

// Cart queries
const (
	GetCartSQL = `
		SELECT items FROM carts WHERE user_id = $1`

	UpsertCartSQL = `
		INSERT INTO carts (user_id, items, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			items = $2,
			updated_at = NOW()`

	DeleteCartSQL = `
		DELETE FROM carts WHERE user_id = $1`
)

// Order queries
const (
	InsertOrderSQL = `
		INSERT INTO orders (user_id, user_name, user_email, total_amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	InsertOrderItemSQL = `
		INSERT INTO order_items (order_id, menu_item_id, name, quantity, price)
		VALUES ($1, $2, $3, $4, $5)`

	DeleteOrderItemsSQL = `
		DELETE FROM order_items WHERE order_id = $1`

	GetOrderSQL = `
		SELECT id, user_id, user_name, user_email, total_amount, status, pickup_time, created_at, updated_at
		FROM orders WHERE id = $1`

	ListOrdersSQL = `
		SELECT id, user_id, user_name, user_email, total_amount, status, pickup_time, created_at, updated_at
		FROM orders ORDER BY created_at DESC`

	ListOrdersByUserSQL = `
		SELECT id, user_id, user_name, user_email, total_amount, status, pickup_time, created_at, updated_at
		FROM orders WHERE user_id = $1 ORDER BY created_at DESC`

	ListOrderItemsSQL = `
		SELECT id, order_id, menu_item_id, name, quantity, price
		FROM order_items WHERE order_id = $1 ORDER BY id ASC`

	ListOrderItemsByOrdersSQL = `
		SELECT id, order_id, menu_item_id, name, quantity, price
		FROM order_items WHERE order_id = ANY($1) ORDER BY order_id ASC, id ASC`

	UpdateOrderItemsTotalSQL = `
		UPDATE orders SET total_amount = $1, updated_at = NOW()
		WHERE id = $2`

	UpdateOrderStatusSQL = `
		UPDATE orders SET status = $1, updated_at = NOW()
		WHERE id = $2`

	UpdateOrderPickupTimeSQL = `
		UPDATE orders SET pickup_time = $1, updated_at = NOW()
		WHERE id = $2`

	BulkUpdatePickupTimeSQL = `
		UPDATE orders SET pickup_time = $1, updated_at = NOW()
		WHERE id = ANY($2) AND status <> 'cancelled'`

	ClearAllOrdersSQL = `
		DELETE FROM orders`
)

// Site settings queries
const (
	GetSettingSQL = `
		SELECT value FROM site_settings WHERE key = $1`

	UpsertSettingSQL = `
		INSERT INTO site_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = $2,
			updated_at = NOW()`
)
