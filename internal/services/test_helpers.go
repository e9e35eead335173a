package services

import (
	"time"

	"kesha-shop/internal/domain"
)

func CreateMockProduct(id, title string, price int64, sizes ...string) domain.Product {
	return domain.Product{
		ID:           id,
		Title:        title,
		Price:        price,
		Description:  "test product",
		Images:       []string{"data:image/png;base64,x"},
		Category:     "test",
		DeliveryTime: "7",
		Sizes:        sizes,
	}
}

func CreateMockOrder(id, customerID string, total int64, status domain.OrderStatus) domain.Order {
	now := time.Now()
	return domain.Order{
		ID:         id,
		CustomerID: customerID,
		Total:      total,
		Date:       now,
		Status:     status,
		Timeline: []domain.TimelineEntry{
			{Status: status, Date: now},
		},
	}
}

const (
	TestFiveDigitID = "48213"
	TestPassword    = "correct-horse"
)

// In-memory repositories for tests that exercise call sequences; the
// expectation-style mocks in internal/mocks cover single interactions.

type fakeCartRepo struct {
	items []domain.CartItem
}

func (f *fakeCartRepo) Items() []domain.CartItem {
	return append([]domain.CartItem(nil), f.items...)
}

func (f *fakeCartRepo) Replace(items []domain.CartItem) error {
	f.items = items
	return nil
}

func (f *fakeCartRepo) Clear() error {
	f.items = nil
	return nil
}

type fakeOrderRepo struct {
	orders []domain.Order
}

func (f *fakeOrderRepo) All() []domain.Order {
	return append([]domain.Order(nil), f.orders...)
}

func (f *fakeOrderRepo) FindByID(id string) (*domain.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) Prepend(order domain.Order) error {
	f.orders = append([]domain.Order{order}, f.orders...)
	return nil
}

func (f *fakeOrderRepo) Update(order domain.Order) error {
	for i, o := range f.orders {
		if o.ID == order.ID {
			f.orders[i] = order
			return nil
		}
	}
	return ErrOrderNotFound
}

type fakeProductRepo struct {
	products []domain.Product
}

func (f *fakeProductRepo) All() []domain.Product {
	return append([]domain.Product(nil), f.products...)
}

func (f *fakeProductRepo) FindByID(id string) (*domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Add(product domain.Product) error {
	f.products = append([]domain.Product{product}, f.products...)
	return nil
}

func (f *fakeProductRepo) Update(product domain.Product) error {
	for i, p := range f.products {
		if p.ID == product.ID {
			f.products[i] = product
			return nil
		}
	}
	return ErrProductNotFound
}

func (f *fakeProductRepo) Delete(id string) error {
	kept := f.products[:0]
	for _, p := range f.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	f.products = kept
	return nil
}
