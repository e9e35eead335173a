package services

import (
	"context"
	"errors"
	"log"
	"time"

	"kesha-shop/internal/domain"
	rabbit "kesha-shop/internal/infra/rabbitmq"
	"kesha-shop/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")
)

type OrderService struct {
	repo      repository.OrderRepository
	cart      repository.CartRepository
	publisher rabbit.PublisherInterface
}

func NewOrderService(r repository.OrderRepository, cart repository.CartRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		repo:      r,
		cart:      cart,
		publisher: pub,
	}
}

// CreateOrder builds a pending order with its first timeline entry and
// prepends it to the collection, newest first.
func (u *OrderService) CreateOrder(ctx context.Context, customerID, customerContact string, items []domain.CartItem, total int64) (*domain.Order, error) {
	if customerID == "" {
		customerID = domain.GuestCustomerID
	}

	now := time.Now()
	order := &domain.Order{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		CustomerContact: customerContact,
		Items:           items,
		Total:           total,
		Date:            now,
		Status:          domain.StatusPending,
		Timeline: []domain.TimelineEntry{
			{Status: domain.StatusPending, Date: now},
		},
	}

	if err := u.repo.Prepend(*order); err != nil {
		return nil, err
	}

	go u.publishOrderCreatedEvent(context.Background(), order)

	return order, nil
}

// Checkout snapshots the cart into a new order and clears the cart.
func (u *OrderService) Checkout(ctx context.Context, customer *domain.User) (*domain.Order, error) {
	items := u.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	customerID := domain.GuestCustomerID
	contact := ""
	if customer != nil {
		if customer.FiveDigitID != "" {
			customerID = customer.FiveDigitID
		}
		contact = customer.Identifier
	}

	order, err := u.CreateOrder(ctx, customerID, contact, items, domain.CartTotal(items))
	if err != nil {
		return nil, err
	}

	// The order is already persisted; a failed clear only leaves stale
	// cart lines behind.
	if err := u.cart.Clear(); err != nil {
		log.Printf("checkout: clear cart: %v", err)
	}

	return order, nil
}

// SetStatus moves the order to the given status. A repeated status leaves
// the timeline untouched; a supplied patch is applied either way, in the
// same update.
func (u *OrderService) SetStatus(ctx context.Context, orderID string, status domain.OrderStatus, patch *domain.OrderPatch) (*domain.Order, error) {
	order, err := u.repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if patch != nil {
		applyOrderPatch(order, *patch)
	}

	oldStatus := order.Status
	changed := status != oldStatus
	if changed {
		order.Status = status
		order.Timeline = append(order.Timeline, domain.TimelineEntry{
			Status: status,
			Date:   time.Now(),
		})
	}

	if err := u.repo.Update(*order); err != nil {
		return nil, err
	}

	if changed {
		go u.publishStatusChangedEvent(context.Background(), order, oldStatus)
	}

	return order, nil
}

// PatchDetails merges the supplied shipping details without touching the
// status or the timeline.
func (u *OrderService) PatchDetails(orderID string, patch domain.OrderPatch) (*domain.Order, error) {
	order, err := u.repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	applyOrderPatch(order, patch)

	if err := u.repo.Update(*order); err != nil {
		return nil, err
	}
	return order, nil
}

func (u *OrderService) Orders() []domain.Order {
	return u.repo.All()
}

func (u *OrderService) OrdersForCustomer(customerID string) []domain.Order {
	var out []domain.Order
	for _, o := range u.repo.All() {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}

func (u *OrderService) GetOrderById(id string) (*domain.Order, error) {
	o, err := u.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func applyOrderPatch(order *domain.Order, patch domain.OrderPatch) {
	if patch.Weight != nil {
		order.Weight = patch.Weight
	}
	if patch.ShippingPrice != nil {
		order.ShippingPrice = patch.ShippingPrice
	}
}

func (u *OrderService) publishOrderCreatedEvent(ctx context.Context, order *domain.Order) {
	if u.publisher == nil {
		return
	}

	evt := domain.OrderCreatedEvent{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Total:      order.Total,
		CreatedAt:  order.Date,
	}

	if err := u.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Printf("Failed to publish order.created event: %v", err)
	}
}

func (u *OrderService) publishStatusChangedEvent(ctx context.Context, order *domain.Order, oldStatus domain.OrderStatus) {
	if u.publisher == nil {
		return
	}

	evt := domain.OrderStatusChangedEvent{
		OrderID:   order.ID,
		OldStatus: oldStatus,
		NewStatus: order.Status,
		ChangedAt: time.Now(),
	}

	if err := u.publisher.Publish(ctx, "order.status_changed", evt); err != nil {
		log.Printf("Failed to publish order.status_changed event: %v", err)
	}
}
