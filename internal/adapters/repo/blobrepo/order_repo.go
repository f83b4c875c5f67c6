package blobrepo

import (
	"context"
	"time"

	"github.com/chronoslabs/chronos/internal/domain"
)

type OrderRepo struct {
	store domain.BlobStore

	Delays Delays

	// now is swappable so tests can pin the generated order id.
	now func() time.Time
}

func NewOrderRepo(store domain.BlobStore) *OrderRepo {
	return &OrderRepo{store: store, Delays: DefaultDelays(), now: time.Now}
}

// Save builds a pending order from the checkout snapshot, prepends it to the
// stored list and returns it. The items slice is stored as given; the caller owns
// making it a snapshot decoupled from live cart state.
func (r *OrderRepo) Save(ctx context.Context, customer domain.CustomerDetails, items []domain.CartItem, total float64) (*domain.Order, error) {
	if err := sleep(ctx, r.Delays.OrderSave); err != nil {
		return nil, err
	}
	now := r.now()
	o := domain.Order{
		ID:       domain.NewOrderID(now),
		Items:    items,
		Total:    total,
		Customer: customer,
		Date:     now.Format(time.RFC3339),
		Status:   domain.OrderStatusPending,
	}
	var list []domain.Order
	if _, err := readList(ctx, r.store, domain.KeyOrders, &list); err != nil {
		return nil, err
	}
	list = append([]domain.Order{o}, list...)
	if err := writeList(ctx, r.store, domain.KeyOrders, list); err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns all orders, most-recent-first.
func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	if err := sleep(ctx, r.Delays.OrderList); err != nil {
		return nil, err
	}
	list := []domain.Order{}
	if _, err := readList(ctx, r.store, domain.KeyOrders, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateStatus rewrites the stored list with the matching order's status replaced.
// Unknown ids are a silent no-op, and no forward-transition rule is enforced:
// any status may follow any other.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if err := sleep(ctx, r.Delays.OrderStatus); err != nil {
		return err
	}
	var list []domain.Order
	ok, err := readList(ctx, r.store, domain.KeyOrders, &list)
	if err != nil || !ok {
		return err
	}
	for i := range list {
		if list[i].ID == id {
			list[i].Status = status
		}
	}
	return writeList(ctx, r.store, domain.KeyOrders, list)
}
