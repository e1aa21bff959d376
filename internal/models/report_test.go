package models

import "testing"

func slotPtr(s string) *string { return &s }

func TestBuildProductionReport_ExcludesCancelled(t *testing.T) {
	orders := []Order{
		{
			Status: StatusCompleted,
			Items:  []OrderItem{{Name: "Margherita", Quantity: 2}},
		},
		{
			Status: StatusCancelled,
			Items:  []OrderItem{{Name: "Margherita", Quantity: 5}},
		},
	}

	report := BuildProductionReport(orders)
	if got := report.TotalsByItem["Margherita"]; got != 2 {
		t.Errorf("TotalsByItem[Margherita] = %d, want 2 (cancelled excluded)", got)
	}
}

func TestBuildProductionReport_GroupsByPickupSlot(t *testing.T) {
	orders := []Order{
		{
			Status:     StatusPending,
			PickupTime: slotPtr("18:00"),
			Items: []OrderItem{
				{Name: "Margherita", Quantity: 2},
				{Name: "Pepperoni", Quantity: 1},
			},
		},
		{
			Status:     StatusPending,
			PickupTime: slotPtr("17:30"),
			Items:      []OrderItem{{Name: "Margherita", Quantity: 1}},
		},
		{
			Status: StatusPending,
			Items:  []OrderItem{{Name: "Marinara", Quantity: 3}},
		},
	}

	report := BuildProductionReport(orders)

	if got := report.TotalsByItem["Margherita"]; got != 3 {
		t.Errorf("TotalsByItem[Margherita] = %d, want 3", got)
	}

	if len(report.Slots) != 3 {
		t.Fatalf("slots = %d, want 3", len(report.Slots))
	}
	// Chronological, unassigned last
	if report.Slots[0].PickupTime != "17:30" || report.Slots[1].PickupTime != "18:00" || report.Slots[2].PickupTime != UnassignedSlot {
		t.Errorf("unexpected slot order: %s, %s, %s",
			report.Slots[0].PickupTime, report.Slots[1].PickupTime, report.Slots[2].PickupTime)
	}

	eighteen := report.Slots[1]
	if eighteen.TotalsByItem["Margherita"] != 2 || eighteen.TotalsByItem["Pepperoni"] != 1 {
		t.Errorf("unexpected 18:00 totals: %+v", eighteen.TotalsByItem)
	}
	if eighteen.TotalQuantity != 3 {
		t.Errorf("18:00 TotalQuantity = %d, want 3", eighteen.TotalQuantity)
	}

	unassigned := report.Slots[2]
	if unassigned.TotalsByItem["Marinara"] != 3 || unassigned.TotalQuantity != 3 {
		t.Errorf("unexpected unassigned bucket: %+v", unassigned)
	}
}

func TestBuildProductionReport_Empty(t *testing.T) {
	report := BuildProductionReport(nil)
	if len(report.TotalsByItem) != 0 || len(report.Slots) != 0 {
		t.Errorf("empty ledger should produce empty report, got %+v", report)
	}
}
