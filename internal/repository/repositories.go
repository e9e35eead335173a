package repository

import (
	"kesha-shop/internal/domain"
)

// Repositories are typed CRUD views over the durable slot store. Reads never
// fail: a missing or malformed slot is served as the empty collection. Finds
// report absence as a nil record with a nil error.

type UserRepository interface {
	All() []domain.User
	FindByFiveDigitID(id string) (*domain.User, error)
	Append(user domain.User) error
}

type ProductRepository interface {
	All() []domain.Product
	FindByID(id string) (*domain.Product, error)
	Add(product domain.Product) error
	Update(product domain.Product) error
	Delete(id string) error
}

type CartRepository interface {
	Items() []domain.CartItem
	Replace(items []domain.CartItem) error
	Clear() error
}

type OrderRepository interface {
	All() []domain.Order
	FindByID(id string) (*domain.Order, error)
	Prepend(order domain.Order) error
	Update(order domain.Order) error
}

// SessionRepository holds the single process-wide current user. SetCurrent
// with nil clears the session.
type SessionRepository interface {
	Current() *domain.User
	SetCurrent(user *domain.User) error
}

type SettingsRepository interface {
	Language() domain.Language
	SetLanguage(lang domain.Language) error
}
