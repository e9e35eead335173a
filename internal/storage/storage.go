package storage

import "errors"

// ErrNotFound indicates a requested slot has never been written.
var ErrNotFound = errors.New("slot not found")

// Slot names owned by the repositories. Each slot holds one JSON value,
// replaced wholesale on every mutation.
const (
	SlotUsers       = "users"
	SlotProducts    = "products"
	SlotCart        = "cart"
	SlotOrders      = "orders"
	SlotCurrentUser = "currentUser"
	SlotLanguage    = "language"
)

// Store is the durable key-value surface the repositories persist through.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}
