package models

import "sort"

// UnassignedSlot is the bucket for orders with no pickup time yet.
const UnassignedSlot = "unassigned"

// SlotProduction is the per-pickup-slot breakdown for kitchen planning.
type SlotProduction struct {
	PickupTime    string         `json:"pickup_time"`
	TotalsByItem  map[string]int `json:"totals_by_item"`
	TotalQuantity int            `json:"total_quantity"`
}

// ProductionReport holds the derived quantity totals used for kitchen
// planning. Cancelled orders are excluded entirely.
type ProductionReport struct {
	TotalsByItem map[string]int   `json:"totals_by_item"`
	Slots        []SlotProduction `json:"slots"`
}

// BuildProductionReport recomputes the production aggregates from the full
// order ledger. It is a pure function of its input; nothing is cached.
func BuildProductionReport(orders []Order) ProductionReport {
	report := ProductionReport{
		TotalsByItem: make(map[string]int),
	}
	slots := make(map[string]*SlotProduction)

	for _, order := range orders {
		if order.Status == StatusCancelled {
			continue
		}

		slotKey := UnassignedSlot
		if order.PickupTime != nil && *order.PickupTime != "" {
			slotKey = *order.PickupTime
		}
		slot, ok := slots[slotKey]
		if !ok {
			slot = &SlotProduction{
				PickupTime:   slotKey,
				TotalsByItem: make(map[string]int),
			}
			slots[slotKey] = slot
		}

		for _, item := range order.Items {
			report.TotalsByItem[item.Name] += item.Quantity
			slot.TotalsByItem[item.Name] += item.Quantity
			slot.TotalQuantity += item.Quantity
		}
	}

	report.Slots = make([]SlotProduction, 0, len(slots))
	for _, slot := range slots {
		report.Slots = append(report.Slots, *slot)
	}
	// Chronological slot order with unassigned last
	sort.Slice(report.Slots, func(i, j int) bool {
		a, b := report.Slots[i].PickupTime, report.Slots[j].PickupTime
		if a == UnassignedSlot {
			return false
		}
		if b == UnassignedSlot {
			return true
		}
		return a < b
	})

	return report
}
