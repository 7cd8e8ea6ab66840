// internal/domain/navigation/page.go
package navigation

import (
	"errors"
	"fmt"
)

var ErrUnknownPage = errors.New("unknown page")

// PageName is the wire identifier of a page
type PageName string

const (
	PageHome          PageName = "home"
	PageProducts      PageName = "products"
	PageProductDetail PageName = "product-detail"
	PageCart          PageName = "cart"
	PageCheckout      PageName = "checkout"
	PageAccount       PageName = "account"
	PageAdmin         PageName = "admin"
	PageSearch        PageName = "search"
)

// Page is one of the storefront views. The set of implementations is closed.
type Page interface {
	Name() PageName
	page()
}

type Home struct{}

type Products struct{}

type ProductDetail struct {
	ProductID string
}

type Cart struct{}

type Checkout struct{}

type Account struct{}

type Admin struct{}

type Search struct {
	Query string
}

func (Home) Name() PageName          { return PageHome }
func (Products) Name() PageName      { return PageProducts }
func (ProductDetail) Name() PageName { return PageProductDetail }
func (Cart) Name() PageName          { return PageCart }
func (Checkout) Name() PageName      { return PageCheckout }
func (Account) Name() PageName       { return PageAccount }
func (Admin) Name() PageName         { return PageAdmin }
func (Search) Name() PageName        { return PageSearch }

func (Home) page()          {}
func (Products) page()      {}
func (ProductDetail) page() {}
func (Cart) page()          {}
func (Checkout) page()      {}
func (Account) page()       {}
func (Admin) page()         {}
func (Search) page()        {}

// ParsePage builds a page from its wire name and parameters
func ParsePage(name, productID, query string) (Page, error) {
	switch PageName(name) {
	case PageHome:
		return Home{}, nil
	case PageProducts:
		return Products{}, nil
	case PageProductDetail:
		return ProductDetail{ProductID: productID}, nil
	case PageCart:
		return Cart{}, nil
	case PageCheckout:
		return Checkout{}, nil
	case PageAccount:
		return Account{}, nil
	case PageAdmin:
		return Admin{}, nil
	case PageSearch:
		return Search{Query: query}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
}
