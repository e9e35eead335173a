package services

import (
	"kesha-shop/internal/domain"
	"kesha-shop/internal/repository"
)

// CartService owns the cart merge rules. Lines are keyed by
// (productID, selectedSize); whether a size is required for a sized product
// is the caller's validation, not enforced here.
type CartService struct {
	cart repository.CartRepository
}

func NewCartService(cart repository.CartRepository) *CartService {
	return &CartService{cart: cart}
}

func (s *CartService) Items() []domain.CartItem {
	return s.cart.Items()
}

// Add merges into an existing line with the same (productID, selectedSize)
// key, else appends a quantity-1 copy of the product.
func (s *CartService) Add(product domain.Product, selectedSize string) ([]domain.CartItem, error) {
	items := s.cart.Items()
	for i := range items {
		if items[i].Matches(product.ID, selectedSize) {
			items[i].Quantity++
			return items, s.cart.Replace(items)
		}
	}

	items = append(items, domain.CartItem{
		Product:      product,
		Quantity:     1,
		SelectedSize: selectedSize,
	})
	return items, s.cart.Replace(items)
}

// Remove drops every line matching the key exactly. Removing an unmatched
// key is a no-op.
func (s *CartService) Remove(productID, selectedSize string) ([]domain.CartItem, error) {
	items := s.cart.Items()
	kept := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		if !item.Matches(productID, selectedSize) {
			kept = append(kept, item)
		}
	}
	return kept, s.cart.Replace(kept)
}

func (s *CartService) Clear() error {
	return s.cart.Clear()
}

func (s *CartService) Total() int64 {
	return domain.CartTotal(s.cart.Items())
}
