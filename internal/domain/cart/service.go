// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/verve-shop/storefront/internal/domain/catalog"
)

var (
	ErrOutOfStock    = errors.New("this item is out of stock")
	ErrExceedsStock  = errors.New("requested quantity exceeds available stock")
	ErrInvalidOption = errors.New("invalid product option")
	ErrNoQuantity    = errors.New("quantity is required")
)

// ProductFinder looks up catalog products
type ProductFinder interface {
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
}

// Service applies the storefront's add-to-cart rules before mutating a cart
type Service struct {
	products ProductFinder
}

// NewService creates a new cart service
func NewService(products ProductFinder) *Service {
	return &Service{products: products}
}

// AddItemRequest represents add to cart request
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

// UpdateQuantityRequest represents update cart item request. An explicit
// zero removes the line.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// AddItem validates the request against the catalog and adds it to the cart
func (s *Service) AddItem(ctx context.Context, c *Cart, req *AddItemRequest) (*catalog.Product, error) {
	product, err := s.products.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	if !product.InStock() {
		return nil, ErrOutOfStock
	}

	if req.Color != "" && !product.HasColor(req.Color) {
		return nil, fmt.Errorf("%w: color %q is not offered for %s", ErrInvalidOption, req.Color, product.Name)
	}
	if req.Size != "" && !product.HasSize(req.Size) {
		return nil, fmt.Errorf("%w: size %q is not offered for %s", ErrInvalidOption, req.Size, product.Name)
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	if quantity > product.Stock {
		return nil, fmt.Errorf("%w: only %d available", ErrExceedsStock, product.Stock)
	}

	c.AddItem(*product, quantity, req.Color, req.Size)
	return product, nil
}

// UpdateQuantity changes the first line for the product. Increases past the
// product's stock are refused; decreases and removals always apply.
func (s *Service) UpdateQuantity(_ context.Context, c *Cart, productID string, req *UpdateQuantityRequest) error {
	if req.Quantity == nil {
		return ErrNoQuantity
	}
	quantity := *req.Quantity

	line, ok := c.Line(productID)
	if !ok {
		return nil
	}

	if quantity > line.Quantity && quantity > line.Product.Stock {
		return fmt.Errorf("%w: only %d available", ErrExceedsStock, line.Product.Stock)
	}

	c.UpdateQuantity(productID, quantity)
	return nil
}
