package report

import (
	"context"
	"testing"

	"github.com/Snoopy-too/fidels-pizza/internal/logger"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
)

type stubOrders struct {
	orders []models.Order
}

func (s *stubOrders) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.orders, nil
}

func strPtr(s string) *string { return &s }

func TestProductionExcludesCancelled(t *testing.T) {
	orders := []models.Order{
		{
			Status:     models.StatusPending,
			PickupTime: strPtr("18:00"),
			Items: []models.OrderItem{
				{Name: "Margherita", Quantity: 2},
				{Name: "Marinara", Quantity: 1},
			},
		},
		{
			Status: models.StatusCancelled,
			Items: []models.OrderItem{
				{Name: "Margherita", Quantity: 9},
			},
		},
		{
			Status: models.StatusCompleted,
			Items: []models.OrderItem{
				{Name: "Margherita", Quantity: 1},
			},
		},
	}

	service := NewService(&stubOrders{orders: orders}, logger.New("test"))
	report, err := service.Production(context.Background())
	if err != nil {
		t.Fatalf("Production() error = %v", err)
	}

	if got := report.TotalsByItem["Margherita"]; got != 3 {
		t.Errorf("Margherita total = %d, want 3", got)
	}
	if got := report.TotalsByItem["Marinara"]; got != 1 {
		t.Errorf("Marinara total = %d, want 1", got)
	}

	if len(report.Slots) != 2 {
		t.Fatalf("slots = %d, want 2", len(report.Slots))
	}
	if report.Slots[0].PickupTime != "18:00" {
		t.Errorf("first slot = %q, want 18:00", report.Slots[0].PickupTime)
	}
	if report.Slots[1].PickupTime != models.UnassignedSlot {
		t.Errorf("last slot = %q, want %q", report.Slots[1].PickupTime, models.UnassignedSlot)
	}
	if report.Slots[0].TotalQuantity != 3 {
		t.Errorf("18:00 slot quantity = %d, want 3", report.Slots[0].TotalQuantity)
	}
}

func TestProductionEmptyLedger(t *testing.T) {
	service := NewService(&stubOrders{}, logger.New("test"))
	report, err := service.Production(context.Background())
	if err != nil {
		t.Fatalf("Production() error = %v", err)
	}
	if len(report.TotalsByItem) != 0 || len(report.Slots) != 0 {
		t.Errorf("expected empty report, got %+v", report)
	}
}
