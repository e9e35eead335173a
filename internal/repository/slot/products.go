package slot

import (
	"encoding/json"
	"errors"
	"log"

	"kesha-shop/internal/domain"
	"kesha-shop/internal/repository"
	"kesha-shop/internal/storage"
)

type productRepo struct {
	store storage.Store
}

func NewProductRepository(store storage.Store) repository.ProductRepository {
	return &productRepo{store: store}
}

func (r *productRepo) All() []domain.Product {
	return r.load()
}

func (r *productRepo) FindByID(id string) (*domain.Product, error) {
	for _, p := range r.load() {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

// Add prepends so the newest product lists first.
func (r *productRepo) Add(product domain.Product) error {
	products := append([]domain.Product{product}, r.load()...)
	return r.save(products)
}

func (r *productRepo) Update(product domain.Product) error {
	products := r.load()
	for i, p := range products {
		if p.ID == product.ID {
			products[i] = product
			return r.save(products)
		}
	}
	return errors.New("product not found")
}

func (r *productRepo) Delete(id string) error {
	products := r.load()
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.save(kept)
}

func (r *productRepo) load() []domain.Product {
	raw, err := r.store.Get(storage.SlotProducts)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("products: read slot: %v", err)
		}
		return nil
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		log.Printf("products: malformed slot, serving empty collection: %v", err)
		return nil
	}
	return products
}

func (r *productRepo) save(products []domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.store.Set(storage.SlotProducts, raw)
}
