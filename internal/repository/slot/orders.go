package slot

import (
	"encoding/json"
	"errors"
	"log"

	"kesha-shop/internal/domain"
	"kesha-shop/internal/repository"
	"kesha-shop/internal/storage"
)

type orderRepo struct {
	store storage.Store
}

func NewOrderRepository(store storage.Store) repository.OrderRepository {
	return &orderRepo{store: store}
}

// All returns the orders in canonical most-recent-first order.
func (r *orderRepo) All() []domain.Order {
	return r.load()
}

func (r *orderRepo) FindByID(id string) (*domain.Order, error) {
	for _, o := range r.load() {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, nil
}

func (r *orderRepo) Prepend(order domain.Order) error {
	orders := append([]domain.Order{order}, r.load()...)
	return r.save(orders)
}

func (r *orderRepo) Update(order domain.Order) error {
	orders := r.load()
	for i, o := range orders {
		if o.ID == order.ID {
			orders[i] = order
			return r.save(orders)
		}
	}
	return errors.New("order not found")
}

func (r *orderRepo) load() []domain.Order {
	raw, err := r.store.Get(storage.SlotOrders)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("orders: read slot: %v", err)
		}
		return nil
	}

	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		log.Printf("orders: malformed slot, serving empty collection: %v", err)
		return nil
	}
	return orders
}

func (r *orderRepo) save(orders []domain.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return r.store.Set(storage.SlotOrders, raw)
}
