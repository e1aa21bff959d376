package models

// MaxLineQuantity caps how many of a single item one visitor may pre-order.
const MaxLineQuantity = 15

// CartLine is one menu selection in a visitor's cart. Price and name mirror
// the current catalog entry; they are only frozen when an order is placed.
type CartLine struct {
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}

// Cart is the session-scoped staging list of menu selections. At most one
// line per menu item; surviving lines always have quantity in [1,15].
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add increases the quantity for the item, inserting a new line if needed.
// Quantities are clamped rather than rejected; an initial add that does not
// result in a positive quantity is ignored.
func (c *Cart) Add(item MenuItem, quantity int) {
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == item.ID {
			c.SetQuantity(item.ID, c.Lines[i].Quantity+quantity)
			return
		}
	}
	if quantity <= 0 {
		return
	}
	c.Lines = append(c.Lines, CartLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   clampQuantity(quantity),
	})
}

// SetQuantity sets the line quantity; zero or below removes the line.
func (c *Cart) SetQuantity(menuItemID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(menuItemID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == menuItemID {
			c.Lines[i].Quantity = clampQuantity(quantity)
			return
		}
	}
}

// Remove deletes the line unconditionally.
func (c *Cart) Remove(menuItemID int64) {
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == menuItemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Total returns the sum of price times quantity across all lines.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Price * int64(line.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Line returns the line for the given menu item, if present.
func (c *Cart) Line(menuItemID int64) (CartLine, bool) {
	for _, line := range c.Lines {
		if line.MenuItemID == menuItemID {
			return line, true
		}
	}
	return CartLine{}, false
}

func clampQuantity(quantity int) int {
	if quantity > MaxLineQuantity {
		return MaxLineQuantity
	}
	if quantity < 1 {
		return 1
	}
	return quantity
}
