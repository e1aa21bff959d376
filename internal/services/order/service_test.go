package order

import (
	"context"
	"errors"
	"testing"

	"github.com/Snoopy-too/fidels-pizza/internal/logger"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
	"github.com/Snoopy-too/fidels-pizza/internal/web"
)

type fakeLedger struct {
	orders       map[int64]*models.Order
	nextID       int64
	statusWrites int
	pickupWrites int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{orders: make(map[int64]*models.Order)}
}

func (f *fakeLedger) put(order models.Order) {
	copied := order
	f.orders[order.ID] = &copied
	if order.ID > f.nextID {
		f.nextID = order.ID
	}
}

func (f *fakeLedger) Create(ctx context.Context, order *models.Order) error {
	f.nextID++
	order.ID = f.nextID
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	f.put(*order)
	return nil
}

func (f *fakeLedger) Get(ctx context.Context, id int64) (*models.Order, error) {
	stored, ok := f.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	copied := *stored
	copied.Items = append([]models.OrderItem(nil), stored.Items...)
	return &copied, nil
}

func (f *fakeLedger) List(ctx context.Context) ([]models.Order, error) {
	orders := make([]models.Order, 0, len(f.orders))
	for _, order := range f.orders {
		orders = append(orders, *order)
	}
	return orders, nil
}

func (f *fakeLedger) ListByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	for _, order := range f.orders {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (f *fakeLedger) ReplaceItems(ctx context.Context, orderID int64, items []models.OrderItem, total int64) error {
	order, ok := f.orders[orderID]
	if !ok {
		return models.ErrOrderNotFound
	}
	order.Items = items
	order.TotalAmount = total
	return nil
}

func (f *fakeLedger) UpdateStatus(ctx context.Context, orderID int64, status models.OrderStatus) error {
	order, ok := f.orders[orderID]
	if !ok {
		return models.ErrOrderNotFound
	}
	f.statusWrites++
	order.Status = status
	return nil
}

func (f *fakeLedger) UpdatePickupTime(ctx context.Context, orderID int64, pickupTime *string) error {
	order, ok := f.orders[orderID]
	if !ok {
		return models.ErrOrderNotFound
	}
	f.pickupWrites++
	order.PickupTime = pickupTime
	return nil
}

func (f *fakeLedger) BulkUpdatePickupTime(ctx context.Context, orderIDs []int64, pickupTime string) (int64, error) {
	var updated int64
	for _, id := range orderIDs {
		order, ok := f.orders[id]
		if !ok || order.Status == models.StatusCancelled {
			continue
		}
		pt := pickupTime
		order.PickupTime = &pt
		updated++
	}
	return updated, nil
}

func (f *fakeLedger) ClearAll(ctx context.Context) error {
	f.orders = make(map[int64]*models.Order)
	return nil
}

type fakeCarts struct {
	cart    models.Cart
	cleared bool
}

func (f *fakeCarts) Get(ctx context.Context, userID int64) (*models.Cart, error) {
	copied := f.cart
	return &copied, nil
}

func (f *fakeCarts) Clear(ctx context.Context, userID int64) error {
	f.cleared = true
	return nil
}

type fakeCatalog struct {
	items map[int64]models.MenuItem
}

func (f *fakeCatalog) Get(ctx context.Context, id int64) (*models.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, models.ErrMenuItemNotFound
	}
	return &item, nil
}

type fakeAccounts struct {
	user models.User
}

func (f *fakeAccounts) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	copied := f.user
	return &copied, nil
}

type fakePublisher struct {
	routingKeys   []string
	notifications int
}

func (f *fakePublisher) PublishOrderEvent(ctx context.Context, eventMsg interface{}, routingKey string) error {
	f.routingKeys = append(f.routingKeys, routingKey)
	return nil
}

func (f *fakePublisher) PublishNotification(ctx context.Context, notificationMsg interface{}) error {
	f.notifications++
	return nil
}

type fixture struct {
	service   *Service
	ledger    *fakeLedger
	carts     *fakeCarts
	publisher *fakePublisher
}

func newFixture() *fixture {
	ledger := newFakeLedger()
	carts := &fakeCarts{}
	catalog := &fakeCatalog{items: map[int64]models.MenuItem{
		1: {ID: 1, Name: "Margherita", Price: 1500, Available: true},
		2: {ID: 2, Name: "Quattro Formaggi", Price: 2000, Available: true},
	}}
	accounts := &fakeAccounts{user: models.User{
		ID: 7, Name: "Current Name", Email: "current@example.com", Role: models.RoleUser,
	}}
	publisher := &fakePublisher{}

	return &fixture{
		service:   NewService(ledger, carts, catalog, accounts, publisher, logger.New("test")),
		ledger:    ledger,
		carts:     carts,
		publisher: publisher,
	}
}

func visitor() web.Identity {
	return web.Identity{UserID: 7, Name: "Stale Name", Email: "stale@example.com", Role: models.RoleUser}
}

func pendingOrder(id int64) models.Order {
	return models.Order{
		ID:     id,
		UserID: 7,
		Status: models.StatusPending,
		Items:  []models.OrderItem{{MenuItemID: 1, Name: "Margherita", Quantity: 1, Price: 1500}},
	}
}

func TestPlaceSnapshotsAccountAndClearsCart(t *testing.T) {
	f := newFixture()
	f.carts.cart.Lines = []models.CartLine{
		{MenuItemID: 1, Name: "Margherita", Price: 1500, Quantity: 2},
		{MenuItemID: 2, Name: "Quattro Formaggi", Price: 2000, Quantity: 1},
	}

	order, err := f.service.Place(context.Background(), visitor())
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	if order.TotalAmount != 5000 {
		t.Errorf("total = %d, want 5000", order.TotalAmount)
	}
	if order.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
	if order.UserName != "Current Name" || order.UserEmail != "current@example.com" {
		t.Errorf("snapshot = %q/%q, want the stored account record", order.UserName, order.UserEmail)
	}
	if !f.carts.cleared {
		t.Error("expected the cart to be cleared after checkout")
	}
	if len(f.publisher.routingKeys) != 1 || f.publisher.routingKeys[0] != "order.placed" {
		t.Errorf("routing keys = %v, want [order.placed]", f.publisher.routingKeys)
	}
}

func TestPlaceEmptyCart(t *testing.T) {
	f := newFixture()

	_, err := f.service.Place(context.Background(), visitor())
	if !errors.Is(err, models.ErrEmptyCart) {
		t.Fatalf("Place() error = %v, want ErrEmptyCart", err)
	}
	if len(f.ledger.orders) != 0 {
		t.Error("expected no order to be created")
	}
}

func TestUpdateItemsEmptySetCancels(t *testing.T) {
	f := newFixture()
	f.ledger.put(pendingOrder(1))

	order, err := f.service.UpdateItems(context.Background(), 1, visitor(), &models.UpdateItemsRequest{})
	if err != nil {
		t.Fatalf("UpdateItems() error = %v", err)
	}
	if order.Status != models.StatusCancelled {
		t.Errorf("status = %q, want cancelled", order.Status)
	}
	if stored := f.ledger.orders[1]; stored.Status != models.StatusCancelled {
		t.Errorf("stored status = %q, want cancelled", stored.Status)
	}
	if len(f.publisher.routingKeys) == 0 || f.publisher.routingKeys[0] != "order.cancelled" {
		t.Errorf("routing keys = %v, want order.cancelled first", f.publisher.routingKeys)
	}
}

func TestUpdateItemsRejectsFinalizedOrders(t *testing.T) {
	for _, status := range []models.OrderStatus{models.StatusCompleted, models.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture()
			order := pendingOrder(1)
			order.Status = status
			f.ledger.put(order)

			req := &models.UpdateItemsRequest{Items: []models.ItemSelection{{MenuItemID: 1, Quantity: 2}}}
			_, err := f.service.UpdateItems(context.Background(), 1, visitor(), req)
			if !errors.Is(err, models.ErrOrderFinalized) {
				t.Fatalf("UpdateItems() error = %v, want ErrOrderFinalized", err)
			}
		})
	}
}

func TestCancelIdempotent(t *testing.T) {
	f := newFixture()
	order := pendingOrder(1)
	order.Status = models.StatusCancelled
	f.ledger.put(order)

	got, err := f.service.Cancel(context.Background(), 1, visitor())
	if err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if got.Status != models.StatusCancelled {
		t.Errorf("status = %q, want cancelled", got.Status)
	}
	if f.ledger.statusWrites != 0 {
		t.Errorf("status writes = %d, want 0 for an already cancelled order", f.ledger.statusWrites)
	}
	if len(f.publisher.routingKeys) != 0 {
		t.Errorf("expected no events, got %v", f.publisher.routingKeys)
	}
}

func TestCancelCompletedRejected(t *testing.T) {
	f := newFixture()
	order := pendingOrder(1)
	order.Status = models.StatusCompleted
	f.ledger.put(order)

	_, err := f.service.Cancel(context.Background(), 1, visitor())
	if !errors.Is(err, models.ErrOrderFinalized) {
		t.Fatalf("Cancel() error = %v, want ErrOrderFinalized", err)
	}
}

func TestCancelOtherUsersOrder(t *testing.T) {
	f := newFixture()
	order := pendingOrder(1)
	order.UserID = 99
	f.ledger.put(order)

	_, err := f.service.Cancel(context.Background(), 1, visitor())
	if !errors.Is(err, models.ErrNotOrderOwner) {
		t.Fatalf("Cancel() error = %v, want ErrNotOrderOwner", err)
	}
}

func TestUpdateFieldsCancelWithPickupWritesNothing(t *testing.T) {
	f := newFixture()
	f.ledger.put(pendingOrder(1))

	status := "cancelled"
	pickup := "18:00"
	_, err := f.service.UpdateFields(context.Background(), 1, &models.UpdateOrderRequest{
		Status:     &status,
		PickupTime: &pickup,
	})
	if !errors.Is(err, models.ErrOrderFinalized) {
		t.Fatalf("UpdateFields() error = %v, want ErrOrderFinalized", err)
	}

	if stored := f.ledger.orders[1]; stored.Status != models.StatusPending {
		t.Errorf("stored status = %q, want pending after a rejected patch", stored.Status)
	}
	if f.ledger.statusWrites != 0 || f.ledger.pickupWrites != 0 {
		t.Errorf("writes = %d/%d, want none", f.ledger.statusWrites, f.ledger.pickupWrites)
	}
	if len(f.publisher.routingKeys) != 0 {
		t.Errorf("expected no events, got %v", f.publisher.routingKeys)
	}
}

func TestUpdateFieldsSameStatusNoOp(t *testing.T) {
	f := newFixture()
	order := pendingOrder(1)
	order.Status = models.StatusCompleted
	f.ledger.put(order)

	status := "completed"
	got, err := f.service.UpdateFields(context.Background(), 1, &models.UpdateOrderRequest{Status: &status})
	if err != nil {
		t.Fatalf("UpdateFields() error = %v", err)
	}
	if got.Status != models.StatusCompleted {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if f.ledger.statusWrites != 0 {
		t.Errorf("status writes = %d, want 0 for a same-status patch", f.ledger.statusWrites)
	}
	if len(f.publisher.routingKeys) != 0 {
		t.Errorf("expected no events, got %v", f.publisher.routingKeys)
	}
}

func TestBulkAssignSkipsCancelled(t *testing.T) {
	f := newFixture()
	f.ledger.put(pendingOrder(1))
	cancelled := pendingOrder(2)
	cancelled.Status = models.StatusCancelled
	f.ledger.put(cancelled)

	updated, err := f.service.BulkAssignPickup(context.Background(), &models.BulkAssignRequest{
		OrderIDs:   []int64{1, 2},
		PickupTime: "18:30",
	})
	if err != nil {
		t.Fatalf("BulkAssignPickup() error = %v", err)
	}
	if updated != 1 {
		t.Errorf("updated = %d, want 1", updated)
	}
	if f.ledger.orders[2].PickupTime != nil {
		t.Error("cancelled order should keep no pickup time")
	}
}

func TestClearAllRequiresConfirmation(t *testing.T) {
	f := newFixture()
	f.ledger.put(pendingOrder(1))

	if err := f.service.ClearAll(context.Background(), "yes"); !errors.Is(err, models.ErrConfirmRequired) {
		t.Fatalf("ClearAll() error = %v, want ErrConfirmRequired", err)
	}
	if len(f.ledger.orders) != 1 {
		t.Error("ledger should be untouched without confirmation")
	}

	if err := f.service.ClearAll(context.Background(), ClearAllConfirm); err != nil {
		t.Fatalf("ClearAll() error = %v", err)
	}
	if len(f.ledger.orders) != 0 {
		t.Error("ledger should be empty after a confirmed clear")
	}
}
