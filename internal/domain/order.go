package domain

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusArrived    OrderStatus = "arrived"
	StatusDelivered  OrderStatus = "delivered"
)

// OrderStatuses lists the statuses in progression order. Display code uses
// the ordering; the engine itself allows any transition.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusArrived,
	StatusDelivered,
}

func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type TimelineEntry struct {
	Status OrderStatus `json:"status"`
	Date   time.Time   `json:"date"`
}

// GuestCustomerID marks orders checked out without a registered customer.
const GuestCustomerID = "GUEST"

type Order struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId"`
	CustomerContact string          `json:"customerContact"`
	Items           []CartItem      `json:"items"`
	Total           int64           `json:"total"`
	ShippingPrice   *int64          `json:"shippingPrice,omitempty"`
	Weight          *float64        `json:"weight,omitempty"`
	Date            time.Time       `json:"date"`
	Status          OrderStatus     `json:"status"`
	Timeline        []TimelineEntry `json:"timeline"`
}

// OrderPatch carries the assessable shipping details. A nil field means
// "leave as is", not "set to zero".
type OrderPatch struct {
	Weight        *float64 `json:"weight,omitempty"`
	ShippingPrice *int64   `json:"shippingPrice,omitempty"`
}

func (p OrderPatch) Empty() bool {
	return p.Weight == nil && p.ShippingPrice == nil
}

// GrandTotal is the product total plus shipping when assessed. An
// unassessed shipping price counts as zero here, but callers deciding
// whether shipping was quoted must check ShippingPrice for presence.
func (o Order) GrandTotal() int64 {
	if o.ShippingPrice != nil {
		return o.Total + *o.ShippingPrice
	}
	return o.Total
}
