package services

import (
	"errors"

	"kesha-shop/internal/domain"
	"kesha-shop/internal/repository"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Products() []domain.Product {
	return s.repo.All()
}

func (s *ProductService) Product(id string) (*domain.Product, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *ProductService) AddProduct(product domain.Product) (*domain.Product, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if err := s.repo.Add(product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) UpdateProduct(product domain.Product) (*domain.Product, error) {
	existing, err := s.repo.FindByID(product.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes the catalog entry. Cart and order lines copied from
// the product stay exactly as they were.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
