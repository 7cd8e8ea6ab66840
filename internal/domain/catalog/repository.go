// internal/domain/catalog/repository.go
package catalog

import (
	"context"
	"fmt"
)

// Repository is the read-only source of catalog data
type Repository interface {
	Products(ctx context.Context) ([]Product, error)
	Product(ctx context.Context, id string) (*Product, error)
	Reviews(ctx context.Context, productID string) ([]Review, error)
}

// MemoryRepository serves a fixed catalog held in memory
type MemoryRepository struct {
	products []Product
	index    map[string]int
	reviews  map[string][]Review
}

// NewMemoryRepository validates the products and builds an in-memory catalog
func NewMemoryRepository(products []Product, reviews []Review) (*MemoryRepository, error) {
	repo := &MemoryRepository{
		products: make([]Product, len(products)),
		index:    make(map[string]int, len(products)),
		reviews:  make(map[string][]Review),
	}

	for i, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := repo.index[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidProduct, p.ID)
		}
		repo.products[i] = p
		repo.index[p.ID] = i
	}

	for _, r := range reviews {
		repo.reviews[r.ProductID] = append(repo.reviews[r.ProductID], r)
	}

	return repo, nil
}

// NewSampleRepository returns the built-in sample catalog
func NewSampleRepository() *MemoryRepository {
	repo, err := NewMemoryRepository(SampleProducts(), SampleReviews())
	if err != nil {
		panic(fmt.Sprintf("sample catalog is invalid: %v", err))
	}
	return repo
}

func (r *MemoryRepository) Products(_ context.Context) ([]Product, error) {
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *MemoryRepository) Product(_ context.Context, id string) (*Product, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}

func (r *MemoryRepository) Reviews(_ context.Context, productID string) ([]Review, error) {
	out := make([]Review, len(r.reviews[productID]))
	copy(out, r.reviews[productID])
	return out, nil
}
