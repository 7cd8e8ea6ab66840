// internal/domain/storefront/view.go
package storefront

import (
	"github.com/verve-shop/storefront/internal/domain/cart"
	"github.com/verve-shop/storefront/internal/domain/catalog"
	"github.com/verve-shop/storefront/internal/domain/checkout"
	"github.com/verve-shop/storefront/internal/domain/navigation"
	"github.com/verve-shop/storefront/internal/domain/order"
	"github.com/verve-shop/storefront/internal/domain/pricing"
)

// View is the rendered state of a session
type View struct {
	Page      navigation.PageName `json:"page"`
	Theme     string              `json:"theme"`
	CartCount int                 `json:"cart_count"`
	Nav       *navigation.State   `json:"nav"`
	Drawer    *CartView           `json:"drawer,omitempty"`
	Content   Content             `json:"content"`
}

// Content is the page-specific part of a view. The set of implementations
// is closed.
type Content interface {
	content()
}

type HomeView struct {
	NewArrivals []catalog.Product         `json:"new_arrivals"`
	BestSellers []catalog.Product         `json:"best_sellers"`
	Categories  []catalog.CategorySummary `json:"categories"`
}

type ProductsView struct {
	Category   string                    `json:"category"`
	Sort       catalog.SortKey           `json:"sort"`
	Filtered   bool                      `json:"filtered"`
	Count      int                       `json:"count"`
	Products   []catalog.Product         `json:"products"`
	Categories []catalog.CategorySummary `json:"categories"`
}

// StockNotice describes availability on the detail page
type StockNotice struct {
	Status    string `json:"status"`
	Available int    `json:"available"`
}

const (
	StockStatusInStock    = "in_stock"
	StockStatusLowStock   = "low_stock"
	StockStatusOutOfStock = "out_of_stock"
)

// NewStockNotice derives the notice for a product
func NewStockNotice(p *catalog.Product) StockNotice {
	switch {
	case !p.InStock():
		return StockNotice{Status: StockStatusOutOfStock}
	case p.LowStock():
		return StockNotice{Status: StockStatusLowStock, Available: p.Stock}
	default:
		return StockNotice{Status: StockStatusInStock, Available: p.Stock}
	}
}

type ProductDetailView struct {
	Product         catalog.Product   `json:"product"`
	DiscountPercent int               `json:"discount_percent"`
	Stock           StockNotice       `json:"stock"`
	DefaultColor    string            `json:"default_color,omitempty"`
	DefaultSize     string            `json:"default_size,omitempty"`
	Reviews         []catalog.Review  `json:"reviews"`
	Related         []catalog.Product `json:"related"`
}

type NotFoundView struct {
	ProductID string `json:"product_id"`
	Message   string `json:"message"`
}

// CartLineView is a cart line with its derived values
type CartLineView struct {
	cart.Line
	LineTotal    string `json:"line_total"`
	CanIncrement bool   `json:"can_increment"`
}

type CartView struct {
	Lines     []CartLineView `json:"lines"`
	ItemCount int            `json:"item_count"`
	Quote     pricing.Quote  `json:"quote"`
	Empty     bool           `json:"empty"`
}

// NewCartView derives the cart page and drawer contents
func NewCartView(c *cart.Cart) *CartView {
	lines := c.Lines()
	views := make([]CartLineView, len(lines))
	for i, l := range lines {
		views[i] = CartLineView{
			Line:         l,
			LineTotal:    l.Total().StringFixed(2),
			CanIncrement: l.Quantity < l.Product.Stock,
		}
	}
	return &CartView{
		Lines:     views,
		ItemCount: c.TotalItems(),
		Quote:     pricing.Calculate(c.Subtotal()),
		Empty:     c.IsEmpty(),
	}
}

type CheckoutView struct {
	Step     checkout.Step     `json:"step"`
	StepName string            `json:"step_name"`
	Progress checkout.Progress `json:"progress"`
	Cart     *CartView         `json:"cart"`
}

// NewCheckoutView shows the active step alongside the order being placed
func NewCheckoutView(p checkout.Progress, c *cart.Cart) *CheckoutView {
	return &CheckoutView{
		Step:     p.Current(),
		StepName: p.Current().String(),
		Progress: p,
		Cart:     NewCartView(c),
	}
}

type AccountView struct {
	Dashboard *order.Dashboard  `json:"dashboard"`
	Orders    []order.OrderView `json:"orders"`
	Addresses []order.Address   `json:"addresses"`
}

type AdminView struct {
	Authorized bool                      `json:"authorized"`
	Inventory  *catalog.InventorySummary `json:"inventory,omitempty"`
}

type SearchView struct {
	Query   string            `json:"query"`
	Count   int               `json:"count"`
	Results []catalog.Product `json:"results"`
}

func (HomeView) content()          {}
func (ProductsView) content()      {}
func (ProductDetailView) content() {}
func (NotFoundView) content()      {}
func (CartView) content()          {}
func (CheckoutView) content()      {}
func (AccountView) content()       {}
func (AdminView) content()         {}
func (SearchView) content()        {}
