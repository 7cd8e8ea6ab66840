// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"fmt"
	"strings"
)

const (
	// RelatedLimit caps the related products shown on a detail page
	RelatedLimit = 4
	// HighlightLimit caps the home page new arrivals and best sellers rails
	HighlightLimit = 4
)

// Service handles catalog queries
type Service struct {
	repo Repository
}

// NewService creates a new catalog service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListProducts returns the catalog filtered and sorted
func (s *Service) ListProducts(ctx context.Context, f Filter) ([]Product, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return Apply(products, f), nil
}

// GetProduct returns a single product by id
func (s *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.Product(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product %q: %w", id, err)
	}
	return p, nil
}

// Search runs a free-text query over the catalog
func (s *Service) Search(ctx context.Context, query string) ([]Product, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return Search(products, query), nil
}

// Reviews returns the reviews for a product
func (s *Service) Reviews(ctx context.Context, productID string) ([]Review, error) {
	reviews, err := s.repo.Reviews(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}
	return reviews, nil
}

// Related returns other products in the same category
func (s *Service) Related(ctx context.Context, p *Product) ([]Product, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	related := make([]Product, 0, RelatedLimit)
	for _, candidate := range products {
		if len(related) == RelatedLimit {
			break
		}
		if candidate.Category == p.Category && candidate.ID != p.ID {
			related = append(related, candidate)
		}
	}
	return related, nil
}

// Tagged returns up to limit products carrying the tag, in catalog order
func (s *Service) Tagged(ctx context.Context, tag string, limit int) ([]Product, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	tagged := make([]Product, 0, limit)
	for _, p := range products {
		if len(tagged) == limit {
			break
		}
		if p.HasTag(tag) {
			tagged = append(tagged, p)
		}
	}
	return tagged, nil
}

// Categories lists categories in order of first appearance with product counts
func (s *Service) Categories(ctx context.Context) ([]CategorySummary, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	var summaries []CategorySummary
	positions := make(map[string]int)
	for _, p := range products {
		i, ok := positions[p.Category]
		if !ok {
			positions[p.Category] = len(summaries)
			summaries = append(summaries, CategorySummary{Name: p.Category, Slug: Slugify(p.Category)})
			i = len(summaries) - 1
		}
		summaries[i].Count++
	}
	return summaries, nil
}

// Inventory summarizes stock levels for the admin view
func (s *Service) Inventory(ctx context.Context) (*InventorySummary, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	summary := &InventorySummary{
		TotalProducts: len(products),
		LowStock:      []Product{},
		OutOfStock:    []Product{},
	}
	for _, p := range products {
		summary.TotalUnits += p.Stock
		switch {
		case !p.InStock():
			summary.OutOfStock = append(summary.OutOfStock, p)
		case p.LowStock():
			summary.LowStock = append(summary.LowStock, p)
		}
	}
	return summary, nil
}

// Slugify lowercases a name and joins its words with dashes
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
