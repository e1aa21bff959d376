package models

import "testing"

func menuItem(id int64, name string, price int64) MenuItem {
	return MenuItem{ID: id, Name: name, Price: price, Available: true}
}

func TestCart_AddClampsQuantity(t *testing.T) {
	tests := []struct {
		name     string
		adds     []int
		wantQty  int
		wantLine bool
	}{
		{"single add", []int{2}, 2, true},
		{"accumulates", []int{2, 3}, 5, true},
		{"clamped at 15", []int{10, 10}, 15, true},
		{"initial add above cap", []int{40}, 15, true},
		{"initial non-positive ignored", []int{0}, 0, false},
		{"initial negative ignored", []int{-3}, 0, false},
		{"negative add removes line", []int{5, -5}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cart Cart
			item := menuItem(1, "Margherita", 1500)
			for _, q := range tt.adds {
				cart.Add(item, q)
			}
			line, ok := cart.Line(1)
			if ok != tt.wantLine {
				t.Fatalf("line present = %v, want %v", ok, tt.wantLine)
			}
			if ok && line.Quantity != tt.wantQty {
				t.Errorf("quantity = %d, want %d", line.Quantity, tt.wantQty)
			}
		})
	}
}

func TestCart_SetQuantity(t *testing.T) {
	var cart Cart
	cart.Add(menuItem(1, "Margherita", 1500), 2)

	cart.SetQuantity(1, 30)
	if line, _ := cart.Line(1); line.Quantity != MaxLineQuantity {
		t.Errorf("quantity = %d, want clamp to %d", line.Quantity, MaxLineQuantity)
	}

	cart.SetQuantity(1, 0)
	if _, ok := cart.Line(1); ok {
		t.Error("line should be removed when quantity set to 0")
	}

	// setting quantity for an absent item is a no-op
	cart.SetQuantity(99, 3)
	if !cart.IsEmpty() {
		t.Error("cart should stay empty")
	}
}

func TestCart_TotalIdentity(t *testing.T) {
	var cart Cart
	cart.Add(menuItem(1, "Margherita", 1500), 2)
	cart.Add(menuItem(3, "Quattro Formaggi", 2000), 1)

	if got := cart.Total(); got != 5000 {
		t.Errorf("Total() = %d, want 5000", got)
	}

	cart.SetQuantity(1, 3)
	cart.Remove(3)

	var want int64
	for _, line := range cart.Lines {
		want += line.Price * int64(line.Quantity)
	}
	if got := cart.Total(); got != want {
		t.Errorf("Total() = %d, want %d after mutations", got, want)
	}
}

func TestCart_OneLinePerItem(t *testing.T) {
	var cart Cart
	item := menuItem(1, "Margherita", 1500)
	cart.Add(item, 1)
	cart.Add(item, 1)
	if len(cart.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(cart.Lines))
	}
}

func TestCart_ClearAndRemove(t *testing.T) {
	var cart Cart
	cart.Add(menuItem(1, "Margherita", 1500), 1)
	cart.Add(menuItem(2, "Pepperoni", 1800), 2)

	cart.Remove(1)
	if _, ok := cart.Line(1); ok {
		t.Error("removed line still present")
	}
	if _, ok := cart.Line(2); !ok {
		t.Error("unrelated line removed")
	}

	cart.Clear()
	if !cart.IsEmpty() || cart.Total() != 0 {
		t.Error("cart should be empty after Clear")
	}
}
