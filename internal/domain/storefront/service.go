// internal/domain/storefront/service.go
package storefront

import (
	"context"
	"errors"
	"fmt"

	"github.com/verve-shop/storefront/internal/domain/catalog"
	"github.com/verve-shop/storefront/internal/domain/navigation"
	"github.com/verve-shop/storefront/internal/domain/order"
	"github.com/verve-shop/storefront/internal/domain/session"
)

// RenderOptions carries request-scoped inputs that are not part of the
// session
type RenderOptions struct {
	// Listing holds the product page filters. An empty category falls back
	// to the session's selected category.
	Listing catalog.Filter
	// Admin is true when the caller holds a valid admin token
	Admin bool
}

// Service renders session views
type Service struct {
	catalog *catalog.Service
	orders  *order.Service
}

// NewService creates a new storefront service
func NewService(catalogService *catalog.Service, orderService *order.Service) *Service {
	return &Service{catalog: catalogService, orders: orderService}
}

// Render builds the view for the session's current page
func (s *Service) Render(ctx context.Context, sess *session.Session, opts RenderOptions) (*View, error) {
	nav := sess.Nav
	view := &View{
		Page:      nav.Page().Name(),
		Theme:     nav.Theme(),
		CartCount: sess.Cart.TotalItems(),
		Nav:       nav,
	}
	if nav.CartOpen() {
		view.Drawer = NewCartView(sess.Cart)
	}

	var (
		content Content
		err     error
	)
	switch page := nav.Page().(type) {
	case navigation.Home:
		content, err = s.home(ctx)
	case navigation.Products:
		content, err = s.products(ctx, nav, opts.Listing)
	case navigation.ProductDetail:
		content, err = s.productDetail(ctx, page.ProductID)
	case navigation.Cart:
		content = NewCartView(sess.Cart)
	case navigation.Checkout:
		content = NewCheckoutView(sess.Checkout, sess.Cart)
	case navigation.Account:
		content, err = s.account(ctx)
	case navigation.Admin:
		content, err = s.admin(ctx, opts.Admin)
	case navigation.Search:
		content, err = s.search(ctx, page.Query)
	default:
		return nil, fmt.Errorf("%w: %T", navigation.ErrUnknownPage, page)
	}
	if err != nil {
		return nil, err
	}

	view.Content = content
	return view, nil
}

func (s *Service) home(ctx context.Context) (*HomeView, error) {
	arrivals, err := s.catalog.Tagged(ctx, catalog.TagNew, catalog.HighlightLimit)
	if err != nil {
		return nil, err
	}
	sellers, err := s.catalog.Tagged(ctx, catalog.TagBestseller, catalog.HighlightLimit)
	if err != nil {
		return nil, err
	}
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return &HomeView{NewArrivals: arrivals, BestSellers: sellers, Categories: categories}, nil
}

func (s *Service) products(ctx context.Context, nav *navigation.State, f catalog.Filter) (*ProductsView, error) {
	if f.Category == "" {
		f.Category = nav.SelectedCategory()
	}
	if f.Sort == "" {
		f.Sort = catalog.SortPopularity
	}

	products, err := s.catalog.ListProducts(ctx, f)
	if err != nil {
		return nil, err
	}
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return &ProductsView{
		Category:   f.Category,
		Sort:       f.Sort,
		Filtered:   f.IsActive(),
		Count:      len(products),
		Products:   products,
		Categories: categories,
	}, nil
}

func (s *Service) productDetail(ctx context.Context, id string) (Content, error) {
	product, err := s.catalog.GetProduct(ctx, id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		return &NotFoundView{ProductID: id, Message: "Product not found"}, nil
	}
	if err != nil {
		return nil, err
	}

	reviews, err := s.catalog.Reviews(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	related, err := s.catalog.Related(ctx, product)
	if err != nil {
		return nil, err
	}

	return &ProductDetailView{
		Product:         *product,
		DiscountPercent: product.DiscountPercent(),
		Stock:           NewStockNotice(product),
		DefaultColor:    product.DefaultColor(),
		DefaultSize:     product.DefaultSize(),
		Reviews:         reviews,
		Related:         related,
	}, nil
}

func (s *Service) account(ctx context.Context) (*AccountView, error) {
	dashboard, err := s.orders.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	addresses, err := s.orders.ListAddresses(ctx)
	if err != nil {
		return nil, err
	}

	return &AccountView{Dashboard: dashboard, Orders: orders, Addresses: addresses}, nil
}

func (s *Service) admin(ctx context.Context, authorized bool) (*AdminView, error) {
	if !authorized {
		return &AdminView{Authorized: false}, nil
	}

	inventory, err := s.catalog.Inventory(ctx)
	if err != nil {
		return nil, err
	}
	return &AdminView{Authorized: true, Inventory: inventory}, nil
}

func (s *Service) search(ctx context.Context, query string) (*SearchView, error) {
	results, err := s.catalog.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return &SearchView{Query: query, Count: len(results), Results: results}, nil
}
