package slot

import (
	"encoding/json"
	"errors"
	"log"

	"kesha-shop/internal/domain"
	"kesha-shop/internal/repository"
	"kesha-shop/internal/storage"
)

type cartRepo struct {
	store storage.Store
}

func NewCartRepository(store storage.Store) repository.CartRepository {
	return &cartRepo{store: store}
}

func (r *cartRepo) Items() []domain.CartItem {
	raw, err := r.store.Get(storage.SlotCart)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("cart: read slot: %v", err)
		}
		return nil
	}

	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("cart: malformed slot, serving empty cart: %v", err)
		return nil
	}
	return items
}

func (r *cartRepo) Replace(items []domain.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.store.Set(storage.SlotCart, raw)
}

func (r *cartRepo) Clear() error {
	return r.Replace([]domain.CartItem{})
}
